// Package template selects the visual renderer for a template family.
package template

import (
	"sort"
	"strings"

	"github.com/nikogura/portfolio-render/pkg/logger"
	"github.com/nikogura/portfolio-render/pkg/section"
)

// Family names a visual rendering variant.
type Family string

const (
	Classic    Family = "classic"
	Modern     Family = "modern"
	Minimalist Family = "minimalist"
	Developer  Family = "developer"
	Designer   Family = "designer"

	// Default is used for unrecognized family identifiers.
	Default = Modern
)

// Families lists every known family.
func Families() (families []Family) {
	families = []Family{Classic, Modern, Minimalist, Developer, Designer}
	return families
}

// Parse resolves id to a known family, ignoring case and surrounding space.
func Parse(id string) (family Family, ok bool) {
	candidate := Family(strings.ToLower(strings.TrimSpace(id)))
	for _, f := range Families() {
		if f == candidate {
			family = f
			ok = true
			return family, ok
		}
	}
	return family, ok
}

// Page is what a renderer receives: the filtered, ordered sections for one
// family. Sections may be empty.
type Page struct {
	Template Family            `json:"template"`
	Sections []section.Section `json:"sections"`
}

// Renderer turns a Page into its output representation.
type Renderer interface {
	Render(page Page) (out []byte, err error)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(page Page) (out []byte, err error)

// Render calls f.
func (f RendererFunc) Render(page Page) (out []byte, err error) {
	out, err = f(page)
	return out, err
}

// Registry maps families to renderers.
type Registry struct {
	renderers map[Family]Renderer
	log       logger.Logger
}

// NewRegistry returns an empty registry. A nil logger discards.
func NewRegistry(log logger.Logger) (r *Registry) {
	r = &Registry{
		renderers: make(map[Family]Renderer),
		log:       logger.OrDiscard(log).With("component", "templates"),
	}
	return r
}

// Register binds renderer to family.
func (r *Registry) Register(family Family, renderer Renderer) {
	r.renderers[family] = renderer
}

// RegisterAll binds renderer to every known family.
func (r *Registry) RegisterAll(renderer Renderer) {
	for _, f := range Families() {
		r.renderers[f] = renderer
	}
}

// Registered lists the families that have a renderer, sorted.
func (r *Registry) Registered() (families []Family) {
	families = make([]Family, 0, len(r.renderers))
	for f := range r.renderers {
		families = append(families, f)
	}
	sort.Slice(families, func(i, j int) bool { return families[i] < families[j] })
	return families
}

// Select resolves id to a family and its renderer. Unknown identifiers, and
// known families without a renderer, fall back to Default. ok is false only
// when Default has no renderer either.
func (r *Registry) Select(id string) (family Family, renderer Renderer, ok bool) {
	family, known := Parse(id)
	if known {
		renderer, ok = r.renderers[family]
		if ok {
			return family, renderer, ok
		}
	}

	r.log.Debug("falling back to default template", "requested", id, "template", Default)
	family = Default
	renderer, ok = r.renderers[family]
	return family, renderer, ok
}
