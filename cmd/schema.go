package cmd

import (
	"os"

	"github.com/invopop/jsonschema"
	"github.com/nikogura/portfolio-render/pkg/renderer"
	"github.com/nikogura/portfolio-render/pkg/section"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var schemaCmd = &cobra.Command{
	Use:   "schema [section-type]",
	Short: "Print the JSON Schema of normalized section content",
	Long: `Schema prints the JSON Schema every normalized section of the given type
conforms to. Without a type, the schemas of all known types are printed,
keyed by type.

Example:
  portfolio-render schema hero_banner
  portfolio-render schema`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSchema,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) (err error) {
	var rt session
	rt, err = loadSession()
	if err != nil {
		return err
	}

	encoder := &renderer.JSON{Color: renderer.Terminal(os.Stdout), SortKeys: true}

	if len(args) == 1 {
		var schema *jsonschema.Schema
		schema, err = contentSchema(rt.normalizer, section.Type(args[0]))
		if err != nil {
			return err
		}
		err = writeJSON(cmd, encoder, schema)
		return err
	}

	schemas := make(map[section.Type]*jsonschema.Schema)
	for _, t := range rt.normalizer.Types() {
		schemas[t], err = contentSchema(rt.normalizer, t)
		if err != nil {
			return err
		}
	}

	err = writeJSON(cmd, encoder, schemas)
	return err
}

// contentSchema reflects the typed content the rule for t produces.
func contentSchema(normalizer *section.Normalizer, t section.Type) (schema *jsonschema.Schema, err error) {
	typed, ok := normalizer.Typed(t, nil)
	if !ok {
		err = errors.Errorf("unknown section type: %s", t)
		return schema, err
	}

	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		ExpandedStruct:            true,
	}

	schema = reflector.Reflect(typed)
	schema.Title = string(t)
	return schema, err
}
