package cmd

import (
	"os"
	"path/filepath"

	"github.com/nikogura/portfolio-render/pkg/mapping"
	"github.com/nikogura/portfolio-render/pkg/pipeline"
	"github.com/nikogura/portfolio-render/pkg/portfolio"
	"github.com/nikogura/portfolio-render/pkg/renderer"
	"github.com/nikogura/portfolio-render/pkg/resume"
	"github.com/nikogura/portfolio-render/pkg/section"
	"github.com/nikogura/portfolio-render/pkg/source"
	"github.com/nikogura/portfolio-render/pkg/template"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var renderTemplate string

//nolint:gochecknoglobals // Cobra boilerplate
var renderOutput string

//nolint:gochecknoglobals // Cobra boilerplate
var renderResume string

//nolint:gochecknoglobals // Cobra boilerplate
var renderSectionType string

//nolint:gochecknoglobals // Cobra boilerplate
var renderSortKeys bool

//nolint:gochecknoglobals // Cobra boilerplate
var renderCmd = &cobra.Command{
	Use:   "render <portfolio-file-or-url>",
	Short: "Normalize, filter and order a portfolio's sections",
	Long: `Render loads a portfolio document (JSON or YAML), normalizes every section,
drops hidden and empty sections, orders the rest and writes the page for the
selected template family as JSON.

The template family comes from --template, then the document's "template"
key, then the configured default. Unknown families fall back to modern.

With --resume, resume data is merged into every section that has default
field mappings, or only into sections of --section-type.

Example:
  portfolio-render render portfolio.yaml
  portfolio-render render https://example.com/portfolio.json --template developer
  portfolio-render render portfolio.json --resume resume.json --section-type contact_form --output page.json`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Template family: classic, modern, minimalist, developer or designer")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file, relative to the configured output dir (default stdout)")
	renderCmd.Flags().StringVar(&renderResume, "resume", "", "Resume JSON file or URL to import into sections")
	renderCmd.Flags().StringVar(&renderSectionType, "section-type", "", "Only import the resume into sections of this type")
	renderCmd.Flags().BoolVar(&renderSortKeys, "sort-keys", false, "Sort object keys in the output")
}

func runRender(cmd *cobra.Command, args []string) (err error) {
	var rt session
	rt, err = loadSession()
	if err != nil {
		return err
	}

	var doc source.Document
	doc, err = source.Fetch(args[0])
	if err != nil {
		return err
	}

	var page portfolio.Document
	page, err = portfolio.Load(doc)
	if err != nil {
		return err
	}

	if getVerbose() {
		printf("Loaded %d sections from %s\n", len(page.Sections), args[0])
	}

	sections := page.Sections
	if renderResume != "" {
		var rec resume.Record
		rec, err = loadResume(renderResume)
		if err != nil {
			return err
		}
		sections = importResume(mapping.NewMapper(rt.log), sections, &rec, section.Type(renderSectionType))
	}

	family := firstNonEmpty(renderTemplate, page.Template, rt.cfg.DefaultTemplate)

	registry := template.NewRegistry(rt.log)
	registry.RegisterAll(&renderer.JSON{
		Color:    renderOutput == "" && renderer.Terminal(os.Stdout),
		SortKeys: renderSortKeys,
	})

	p := pipeline.New(rt.normalizer, registry, rt.log)

	var out []byte
	out, err = p.Render(sections, family)
	if err != nil {
		return err
	}

	if renderOutput == "" {
		_, err = cmd.OutOrStdout().Write(out)
		if err != nil {
			err = errors.Wrap(err, "failed to write output")
		}
		return err
	}

	outputPath := renderOutput
	if !filepath.IsAbs(outputPath) {
		outputPath = filepath.Join(rt.cfg.Defaults.OutputDir, outputPath)
	}

	err = renderer.WriteFile(out, outputPath)
	if err != nil {
		return err
	}

	if getVerbose() {
		printf("Page written to: %s\n", outputPath)
	}

	return err
}

// importResume merges resume data into matching sections. Sections are
// copied; the loaded document is left as read.
func importResume(mapper *mapping.Mapper, sections []section.Section, rec *resume.Record, only section.Type) (out []section.Section) {
	out = make([]section.Section, 0, len(sections))
	for _, s := range sections {
		if only != "" && s.Type != only {
			out = append(out, s)
			continue
		}
		if len(mapping.DefaultFieldMappings(s.Type, rec)) == 0 {
			out = append(out, s)
			continue
		}

		s.Content = mapper.MapResumeToComponent(s.Type, rec, mapping.Options{
			MergeWithExisting: true,
			Existing:          s.Content,
		})
		out = append(out, s)

		if getVerbose() {
			printf("Imported resume into %s section\n", s.Type)
		}
	}
	return out
}

func firstNonEmpty(values ...string) (value string) {
	for _, v := range values {
		if v != "" {
			value = v
			return value
		}
	}
	return value
}
