// Package mapping projects resume data onto section content through dotted
// field paths.
package mapping

import (
	"maps"
	"strings"

	"github.com/nikogura/portfolio-render/pkg/logger"
	"github.com/nikogura/portfolio-render/pkg/resume"
	"github.com/pkg/errors"
)

var (
	// ErrEmptyPath is returned for a mapping without a component field.
	ErrEmptyPath = errors.New("component field is empty")

	// ErrEmptySegment is returned for a component field such as "a..b" or
	// "social." that names an empty key.
	ErrEmptySegment = errors.New("component field has an empty segment")
)

// FieldMapping projects one resume-derived value onto one, possibly nested,
// location of a section's content.
type FieldMapping struct {
	ResumeField    string `json:"resumeField" yaml:"resumeField"`
	ComponentField string `json:"componentField" yaml:"componentField"`
	Value          any    `json:"value" yaml:"value"`
	Enabled        bool   `json:"enabled" yaml:"enabled"`
}

// Mapper applies field mappings. The zero value is not usable; see NewMapper.
type Mapper struct {
	log logger.Logger
}

// NewMapper returns a Mapper logging to log. A nil logger discards.
func NewMapper(log logger.Logger) (m *Mapper) {
	m = &Mapper{log: logger.OrDiscard(log).With("component", "mapper")}
	return m
}

// Apply returns content with every enabled, non-nil mapping written at its
// component field. A mapping whose path is malformed is logged and skipped;
// the others still apply. content and its nested records are never modified.
func (m *Mapper) Apply(content map[string]any, rec *resume.Record, mappings []FieldMapping) (out map[string]any) {
	out = make(map[string]any, len(content)+len(mappings))
	maps.Copy(out, content)

	if rec == nil || len(mappings) == 0 {
		return out
	}

	for i, mapping := range mappings {
		if !mapping.Enabled || mapping.Value == nil {
			continue
		}

		segments, err := ParsePath(mapping.ComponentField)
		if err != nil {
			m.log.Warn("skipping field mapping",
				"index", i,
				"resume_field", mapping.ResumeField,
				"component_field", mapping.ComponentField,
				"error", err,
			)
			continue
		}

		assign(out, segments, mapping.Value)
	}

	return out
}

// ParsePath splits a dotted component field into its keys.
func ParsePath(field string) (segments []string, err error) {
	if field == "" {
		err = ErrEmptyPath
		return segments, err
	}

	segments = strings.Split(field, ".")
	for i, s := range segments {
		if s == "" {
			err = errors.Wrapf(ErrEmptySegment, "%q segment %d", field, i)
			segments = nil
			return segments, err
		}
	}

	return segments, err
}

// assign writes value at segments below root. Every nested record on the way
// is replaced by a fresh copy so that records shared with the caller stay
// untouched.
func assign(root map[string]any, segments []string, value any) {
	node := root
	last := len(segments) - 1

	for _, key := range segments[:last] {
		existing := container(node[key])
		next := make(map[string]any, len(existing)+1)
		maps.Copy(next, existing)
		node[key] = next
		node = next
	}

	node[segments[last]] = value
}

// container returns v when it can hold nested keys. Lists are indexable but
// never treated as containers; they are replaced like any other value.
func container(v any) (record map[string]any) {
	if _, isList := v.([]any); isList {
		return record
	}
	record, _ = v.(map[string]any)
	return record
}
