package cmd

import (
	"os"

	"github.com/nikogura/portfolio-render/pkg/mapping"
	"github.com/nikogura/portfolio-render/pkg/renderer"
	"github.com/nikogura/portfolio-render/pkg/resume"
	"github.com/nikogura/portfolio-render/pkg/section"
	"github.com/nikogura/portfolio-render/pkg/source"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

//nolint:gochecknoglobals // Cobra boilerplate
var importSectionType string

//nolint:gochecknoglobals // Cobra boilerplate
var importDeselect []string

//nolint:gochecknoglobals // Cobra boilerplate
var importMappings string

//nolint:gochecknoglobals // Cobra boilerplate
var importExisting string

//nolint:gochecknoglobals // Cobra boilerplate
var importMerge bool

//nolint:gochecknoglobals // Cobra boilerplate
var importNormalize bool

//nolint:gochecknoglobals // Cobra boilerplate
var importListMappings bool

//nolint:gochecknoglobals // Cobra boilerplate
var importCmd = &cobra.Command{
	Use:   "import <resume-file-or-url>",
	Short: "Preview resume data mapped onto a section",
	Long: `Import maps resume data onto the content of one section type and prints
the resulting content.

By default the section type's default field mappings are used. Individual
resume fields can be left out with --deselect. With --mappings, an explicit
list of field mappings (JSON or YAML) is applied to the existing content
instead; a mapping with a malformed path is skipped with a warning.

Example:
  portfolio-render import resume.json --section-type contact
  portfolio-render import resume.json --section-type hero_banner --deselect title
  portfolio-render import resume.json --section-type about_me_card --existing about.json --merge
  portfolio-render import resume.json --section-type footer --mappings mappings.yaml --existing footer.json
  portfolio-render import resume.json --section-type contact_form --list-mappings`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importSectionType, "section-type", "", "Section type to map onto (required)")
	importCmd.Flags().StringSliceVar(&importDeselect, "deselect", nil, "Resume fields to leave out, e.g. phone,github")
	importCmd.Flags().StringVar(&importMappings, "mappings", "", "File with explicit field mappings")
	importCmd.Flags().StringVar(&importExisting, "existing", "", "File with the section's current content")
	importCmd.Flags().BoolVar(&importMerge, "merge", false, "Lay the mapped fields over the existing content")
	importCmd.Flags().BoolVar(&importNormalize, "normalize", false, "Normalize the result for the section type")
	importCmd.Flags().BoolVar(&importListMappings, "list-mappings", false, "Print the default field mappings instead of applying them")
	_ = importCmd.MarkFlagRequired("section-type")
}

func runImport(cmd *cobra.Command, args []string) (err error) {
	var rt session
	rt, err = loadSession()
	if err != nil {
		return err
	}

	var rec resume.Record
	rec, err = loadResume(args[0])
	if err != nil {
		return err
	}

	sectionType := section.Type(importSectionType)
	mapper := mapping.NewMapper(rt.log)
	encoder := &renderer.JSON{Color: renderer.Terminal(os.Stdout)}

	if importListMappings {
		err = writeJSON(cmd, encoder, mapping.DefaultFieldMappings(sectionType, &rec))
		return err
	}

	var existing map[string]any
	if importExisting != "" {
		existing, err = loadContent(importExisting)
		if err != nil {
			return err
		}
	}

	var content map[string]any
	if importMappings != "" {
		var mappings []mapping.FieldMapping
		mappings, err = loadMappings(importMappings)
		if err != nil {
			return err
		}
		content = mapper.Apply(existing, &rec, mappings)
	} else {
		selected := make(map[string]bool, len(importDeselect))
		for _, field := range importDeselect {
			selected[field] = false
		}
		content = mapper.MapResumeToComponent(sectionType, &rec, mapping.Options{
			Selected:          selected,
			MergeWithExisting: importMerge,
			Existing:          existing,
		})
	}

	if importNormalize {
		content, err = rt.normalizer.Normalize(sectionType, content)
		if err != nil {
			return err
		}
	}

	err = writeJSON(cmd, encoder, content)
	return err
}

func loadContent(input string) (content map[string]any, err error) {
	var doc source.Document
	doc, err = source.Fetch(input)
	if err != nil {
		return content, err
	}

	err = yaml.Unmarshal(doc.Data, &content)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse section content: %s", input)
		return content, err
	}

	return content, err
}

func loadMappings(input string) (mappings []mapping.FieldMapping, err error) {
	var doc source.Document
	doc, err = source.Fetch(input)
	if err != nil {
		return mappings, err
	}

	mappings, err = mapping.ParseMappings(doc.Data)
	if err != nil {
		err = errors.Wrapf(err, "failed to load mappings: %s", input)
		return mappings, err
	}

	if getVerbose() {
		printf("Loaded %d field mappings from %s\n", len(mappings), input)
	}

	return mappings, err
}

func writeJSON(cmd *cobra.Command, encoder *renderer.JSON, v any) (err error) {
	var out []byte
	out, err = encoder.Encode(v)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(out)
	if err != nil {
		err = errors.Wrap(err, "failed to write output")
		return err
	}

	return err
}
