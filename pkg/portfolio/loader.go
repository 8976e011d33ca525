// Package portfolio loads portfolio documents: an optional template family
// and the raw section list.
package portfolio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/nikogura/portfolio-render/pkg/section"
	"github.com/nikogura/portfolio-render/pkg/source"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for documents that are neither JSON nor
// YAML.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Format is a document encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// Document is a portfolio as stored by the editor.
type Document struct {
	Template string            `json:"template,omitempty" yaml:"template,omitempty"`
	Sections []section.Section `json:"sections" yaml:"sections"`
}

// FormatOf picks the encoding from a file extension, then from the response
// content type, sniffing data when neither decides.
func FormatOf(ext, contentType string, data []byte) (format Format, err error) {
	switch ext {
	case ".json":
		format = JSON
	case ".yaml", ".yml":
		format = YAML
	case "":
		format = mediaFormat(contentType)
		if format != "" {
			return format, err
		}
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
			format = JSON
		} else {
			format = YAML
		}
	default:
		err = errors.Wrapf(ErrUnsupportedFormat, "extension %q", ext)
	}
	return format, err
}

func mediaFormat(contentType string) (format Format) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return format
	}

	switch {
	case mediaType == "application/json", strings.HasSuffix(mediaType, "+json"):
		format = JSON
	case strings.HasSuffix(mediaType, "/yaml"), strings.HasSuffix(mediaType, "/x-yaml"), strings.HasSuffix(mediaType, "+yaml"):
		format = YAML
	}
	return format
}

// Load reads a portfolio from a fetched document.
func Load(doc source.Document) (portfolio Document, err error) {
	var format Format
	format, err = FormatOf(doc.Ext, doc.ContentType, doc.Data)
	if err != nil {
		return portfolio, err
	}

	portfolio, err = Parse(doc.Data, format)
	if err != nil {
		err = errors.Wrapf(err, "failed to load portfolio: %s", doc.Name)
		return portfolio, err
	}

	return portfolio, err
}

// Parse decodes a portfolio. The top level is either an object with a
// "sections" list or the section list itself.
func Parse(data []byte, format Format) (portfolio Document, err error) {
	var raw any
	switch format {
	case JSON:
		err = json.Unmarshal(data, &raw)
	case YAML:
		err = yaml.Unmarshal(data, &raw)
		raw = stringKeys(raw)
	default:
		err = errors.Wrapf(ErrUnsupportedFormat, "format %q", format)
		return portfolio, err
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to parse portfolio %s", format)
		return portfolio, err
	}

	var items []any
	switch top := raw.(type) {
	case []any:
		items = top
	case map[string]any:
		if tmpl, ok := top["template"].(string); ok {
			portfolio.Template = tmpl
		}
		list, ok := top["sections"].([]any)
		if !ok && top["sections"] != nil {
			err = errors.New("portfolio sections must be a list")
			return portfolio, err
		}
		items = list
	default:
		err = errors.New("portfolio must be an object or a list of sections")
		return portfolio, err
	}

	portfolio.Sections = make([]section.Section, 0, len(items))
	for i, item := range items {
		var s section.Section
		s, err = decodeSection(item)
		if err != nil {
			err = errors.Wrapf(err, "section at index %d", i)
			return portfolio, err
		}
		portfolio.Sections = append(portfolio.Sections, s)
	}

	err = portfolio.Validate()
	if err != nil {
		err = errors.Wrap(err, "portfolio validation failed")
		return portfolio, err
	}

	return portfolio, err
}

// Validate checks that every section names its type.
func (d *Document) Validate() (err error) {
	for i, s := range d.Sections {
		if s.Type == "" {
			err = errors.Errorf("section at index %d missing type", i)
			return err
		}
	}
	return err
}

// decodeSection reads one section record. Scalars are converted loosely, a
// missing is_visible means visible, and content that is not a record is
// left for the normalizer to default.
func decodeSection(item any) (s section.Section, err error) {
	record, ok := item.(map[string]any)
	if !ok {
		err = errors.New("section is not an object")
		return s, err
	}

	fields := make(map[string]any, len(record))
	for k, v := range record {
		fields[k] = v
	}
	if _, hasType := fields["type"]; !hasType {
		fields["type"] = fields["component_type"]
	}
	if fields["type"] == nil {
		delete(fields, "type")
	}
	delete(fields, "component_type")

	content, _ := fields["content"].(map[string]any)
	delete(fields, "content")

	s.IsVisible = true

	var decoder *mapstructure.Decoder
	decoder, err = mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &s,
		TagName:          "mapstructure",
	})
	if err != nil {
		err = errors.Wrap(err, "failed to create decoder")
		return s, err
	}

	err = decoder.Decode(fields)
	if err != nil {
		err = errors.Wrap(err, "failed to decode section")
		return s, err
	}

	s.Content = content
	return s, err
}

// stringKeys rewrites YAML mappings with non-string keys, such as
// `2024: launched`, into records keyed by the formatted key, all the way down.
func stringKeys(value any) (out any) {
	switch v := value.(type) {
	case map[any]any:
		record := make(map[string]any, len(v))
		for key, item := range v {
			record[fmt.Sprint(key)] = stringKeys(item)
		}
		out = record
	case map[string]any:
		for key, item := range v {
			v[key] = stringKeys(item)
		}
		out = v
	case []any:
		for i, item := range v {
			v[i] = stringKeys(item)
		}
		out = v
	default:
		out = value
	}
	return out
}
