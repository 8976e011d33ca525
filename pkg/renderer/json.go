// Package renderer produces output documents from prepared portfolio pages.
package renderer

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/nikogura/portfolio-render/pkg/section"
	"github.com/nikogura/portfolio-render/pkg/template"
	"github.com/pkg/errors"
	"github.com/tidwall/pretty"
)

const defaultIndent = "  "

// JSON renders a page as an indented JSON document. It serves every template
// family; the family is recorded in the output.
type JSON struct {
	// Color adds terminal colour codes. Leave it off for files.
	Color bool

	// SortKeys orders object keys for stable diffs.
	SortKeys bool
}

// Render implements template.Renderer.
func (j *JSON) Render(page template.Page) (out []byte, err error) {
	if page.Sections == nil {
		page.Sections = make([]section.Section, 0)
	}

	out, err = j.Encode(page)
	return out, err
}

// Encode writes any JSON-encodable value with the renderer's formatting.
func (j *JSON) Encode(v any) (out []byte, err error) {
	var raw []byte
	raw, err = json.Marshal(v)
	if err != nil {
		err = errors.Wrap(err, "failed to encode JSON")
		return out, err
	}

	out = pretty.PrettyOptions(raw, &pretty.Options{
		Width:    80,
		Indent:   defaultIndent,
		SortKeys: j.SortKeys,
	})

	if j.Color {
		out = pretty.Color(out, pretty.TerminalStyle)
	}

	return out, err
}

// Terminal reports whether f is an interactive terminal.
func Terminal(f *os.File) (tty bool) {
	tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	return tty
}

// WriteFile writes content to outputPath, creating parent directories.
func WriteFile(content []byte, outputPath string) (err error) {
	// Ensure output directory exists
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	err = os.WriteFile(outputPath, content, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write output file: %s", outputPath)
		return err
	}

	return err
}
