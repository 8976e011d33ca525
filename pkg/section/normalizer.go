package section

import (
	"encoding/json"
	"sort"

	"github.com/mohae/deepcopy"
	"github.com/nikogura/portfolio-render/pkg/coerce"
	"github.com/nikogura/portfolio-render/pkg/logger"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// ErrEncodeContent is returned when a rule produced content that could not be
// turned back into a generic record.
var ErrEncodeContent = errors.New("failed to encode normalized content")

// Rule coerces raw section content into the normalized value for one type.
// Rules must be total: any input yields a fully populated value.
type Rule func(n *Normalizer, raw gjson.Result) (content any)

// Normalizer maps section types to their coercion rules.
type Normalizer struct {
	schema Schema
	rules  map[Type]Rule
	log    logger.Logger
}

// NewNormalizer builds a Normalizer with the stock rules over a copy of
// schema. A nil logger discards.
func NewNormalizer(schema Schema, log logger.Logger) (n *Normalizer) {
	n = &Normalizer{
		schema: schema.Clone(),
		rules:  make(map[Type]Rule),
		log:    logger.OrDiscard(log).With("component", "normalizer"),
	}

	for t, rule := range defaultRules() {
		n.rules[t] = rule
	}

	return n
}

// Register adds or replaces the rule for t. Register before sharing the
// Normalizer between goroutines.
func (n *Normalizer) Register(t Type, rule Rule) {
	n.rules[t] = rule
}

// Schema returns a copy of the tables in use.
func (n *Normalizer) Schema() (schema Schema) {
	schema = n.schema.Clone()
	return schema
}

// Known reports whether t has a rule.
func (n *Normalizer) Known(t Type) (known bool) {
	_, known = n.rules[t]
	return known
}

// Types lists every registered type in lexical order.
func (n *Normalizer) Types() (types []Type) {
	types = make([]Type, 0, len(n.rules))
	for t := range n.rules {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Typed runs the rule for t and returns its typed result. ok is false for
// unregistered types.
func (n *Normalizer) Typed(t Type, raw map[string]any) (content any, ok bool) {
	rule, ok := n.rules[t]
	if !ok {
		return content, ok
	}

	record, lossy := coerce.Read(raw)
	if lossy {
		n.log.Warn("dropped unencodable values from section content", "type", t)
	}

	content = rule(n, record)
	return content, ok
}

// Normalize returns a fresh record conforming to t's schema. Unregistered
// types pass through as a copy of raw. raw is never modified.
func (n *Normalizer) Normalize(t Type, raw map[string]any) (content map[string]any, err error) {
	if !n.Known(t) {
		n.log.Debug("passing through unrecognized section type", "type", t)
		content = passthrough(raw)
		return content, err
	}

	typed, _ := n.Typed(t, raw)

	content, err = toRecord(typed)
	if err != nil {
		err = errors.Wrapf(err, "section type %s", t)
		return content, err
	}

	return content, err
}

func (n *Normalizer) dropped(t Type, field string, index int, reason string) {
	n.log.Debug("dropped malformed entry", "type", t, "field", field, "index", index, "reason", reason)
}

func passthrough(raw map[string]any) (content map[string]any) {
	if raw == nil {
		return content
	}
	content, _ = deepcopy.Copy(raw).(map[string]any)
	return content
}

func toRecord(typed any) (record map[string]any, err error) {
	var data []byte
	data, err = json.Marshal(typed)
	if err != nil {
		err = errors.Wrap(ErrEncodeContent, err.Error())
		return record, err
	}

	err = json.Unmarshal(data, &record)
	if err != nil {
		err = errors.Wrap(ErrEncodeContent, err.Error())
		return record, err
	}

	return record, err
}
