package cmd

import (
	"fmt"
	"os"

	"github.com/nikogura/portfolio-render/pkg/renderer"
	"github.com/nikogura/portfolio-render/pkg/resume"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var fieldsJSON bool

//nolint:gochecknoglobals // Cobra boilerplate
var fieldsCmd = &cobra.Command{
	Use:   "fields <resume-file-or-url>",
	Short: "List the resume fields available for import",
	Long: `Fields lists, per category, every resume attribute that carries data.
Missing and empty attributes are not listed.

Example:
  portfolio-render fields resume.json
  portfolio-render fields resume.json --json`,
	Args: cobra.ExactArgs(1),
	RunE: runFields,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(fieldsCmd)
	fieldsCmd.Flags().BoolVar(&fieldsJSON, "json", false, "Print the catalog as JSON")
}

func runFields(cmd *cobra.Command, args []string) (err error) {
	var rec resume.Record
	rec, err = loadResume(args[0])
	if err != nil {
		return err
	}

	catalog := resume.ListAvailableFields(&rec)

	if fieldsJSON {
		err = writeJSON(cmd, &renderer.JSON{Color: renderer.Terminal(os.Stdout)}, catalog)
		return err
	}

	out := cmd.OutOrStdout()
	for _, group := range catalog.Groups() {
		if len(group.Fields) == 0 {
			continue
		}
		fmt.Fprintf(out, "%s\n", group.Label)
		for _, field := range group.Fields {
			fmt.Fprintf(out, "  %-14s %s\n", field.Name, describe(field))
		}
	}

	if catalog.Len() == 0 {
		fmt.Fprintln(out, "No importable fields found")
	}

	return err
}

func describe(field resume.Field) (text string) {
	switch v := field.Value.(type) {
	case string:
		text = v
	case []string:
		text = fmt.Sprintf("%d items", len(v))
	case []resume.Experience:
		text = fmt.Sprintf("%d entries", len(v))
	case []resume.Education:
		text = fmt.Sprintf("%d entries", len(v))
	case []resume.Certification:
		text = fmt.Sprintf("%d entries", len(v))
	default:
		text = fmt.Sprintf("%v", v)
	}
	return text
}
