// Package pipeline turns a raw section list into the normalized, filtered and
// ordered list a template renderer consumes.
package pipeline

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/mohae/deepcopy"
	"github.com/nikogura/portfolio-render/pkg/logger"
	"github.com/nikogura/portfolio-render/pkg/section"
	"github.com/nikogura/portfolio-render/pkg/template"
	"github.com/pkg/errors"
)

// Pipeline dispatches sections through normalization and the visibility
// filter. It holds no mutable state and may be shared between goroutines once
// built.
type Pipeline struct {
	normalizer *section.Normalizer
	templates  *template.Registry
	log        logger.Logger
}

// New assembles a Pipeline. A nil logger discards.
func New(normalizer *section.Normalizer, templates *template.Registry, log logger.Logger) (p *Pipeline) {
	p = &Pipeline{
		normalizer: normalizer,
		templates:  templates,
		log:        logger.OrDiscard(log).With("component", "pipeline"),
	}
	return p
}

// Prepare normalizes every section, drops hidden and empty ones and sorts the
// rest by order, keeping input order on ties. The input slice and its content
// records are not modified.
func (p *Pipeline) Prepare(sections []section.Section) (prepared []section.Section) {
	prepared = make([]section.Section, 0, len(sections))

	for _, s := range sections {
		if !s.IsVisible {
			p.log.Debug("dropping hidden section", "type", s.Type, "id", s.ID)
			continue
		}

		out := s
		out.Content = p.normalize(s)

		if !Meaningful(out.Content) {
			p.log.Debug("dropping empty section", "type", s.Type, "id", s.ID)
			continue
		}
		prepared = append(prepared, out)
	}

	sort.SliceStable(prepared, func(i, j int) bool { return prepared[i].Order < prepared[j].Order })
	return prepared
}

// Page prepares sections and resolves the template family, falling back to
// the default family for unknown identifiers.
func (p *Pipeline) Page(sections []section.Section, family string) (page template.Page, renderer template.Renderer, err error) {
	resolved, renderer, ok := p.templates.Select(family)
	if !ok {
		err = errors.Errorf("no renderer registered for template %q (registered: %v)", resolved, p.templates.Registered())
		return page, renderer, err
	}

	page = template.Page{
		Template: resolved,
		Sections: p.Prepare(sections),
	}
	return page, renderer, err
}

// Render prepares sections and hands them to the renderer of family. Only
// renderer failures are returned; section problems degrade silently.
func (p *Pipeline) Render(sections []section.Section, family string) (out []byte, err error) {
	page, renderer, err := p.Page(sections, family)
	if err != nil {
		return out, err
	}

	out, err = renderer.Render(page)
	if err != nil {
		err = errors.Wrapf(err, "failed to render %s template", page.Template)
		return out, err
	}

	return out, err
}

// normalize runs the section's rule. Any failure, panics included, yields a
// copy of the original content instead.
func (p *Pipeline) normalize(s section.Section) (content map[string]any) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Warn("normalization failed, using original content", "type", s.Type, "id", s.ID, "error", fmt.Sprint(r))
			content = fallback(s.Content)
		}
	}()

	content, err := p.normalizer.Normalize(s.Type, s.Content)
	if err != nil {
		p.log.Warn("normalization failed, using original content", "type", s.Type, "id", s.ID, "error", err)
		content = fallback(s.Content)
	}

	return content
}

func fallback(raw map[string]any) (content map[string]any) {
	if raw == nil {
		return content
	}
	content, _ = deepcopy.Copy(raw).(map[string]any)
	return content
}

// Meaningful reports whether any field of content carries a value. nil,
// blank strings and empty lists or records carry nothing. Numbers and
// booleans always count, zero and false included.
func Meaningful(content map[string]any) (meaningful bool) {
	for _, v := range content {
		if !empty(v) {
			meaningful = true
			return meaningful
		}
	}
	return meaningful
}

func empty(v any) (isEmpty bool) {
	if v == nil {
		isEmpty = true
		return isEmpty
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		isEmpty = strings.TrimSpace(rv.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		isEmpty = rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		isEmpty = rv.IsNil()
	}

	return isEmpty
}
