package cmd

import (
	"fmt"

	"github.com/nikogura/portfolio-render/pkg/config"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	Long: `Init writes a configuration file with the stock normalization tables so
they can be edited. An existing file is never overwritten.

Example:
  portfolio-render init
  portfolio-render init --config ./portfolio-render.json`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	var path string
	path, err = config.InitConfig(getConfigFile())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config written to: %s\n", path)
	return err
}
