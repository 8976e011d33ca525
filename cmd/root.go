package cmd

import (
	"fmt"
	"os"

	"github.com/nikogura/portfolio-render/pkg/config"
	"github.com/nikogura/portfolio-render/pkg/logger"
	"github.com/nikogura/portfolio-render/pkg/resume"
	"github.com/nikogura/portfolio-render/pkg/section"
	"github.com/nikogura/portfolio-render/pkg/source"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var logLevel string

//nolint:gochecknoglobals // Cobra boilerplate
var logJSON bool

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "portfolio-render",
	Short: "Normalize and render portfolio documents",
	Long: `portfolio-render turns loosely structured portfolio documents into clean,
ordered section lists ready for a visual template.

Every section is coerced to its type's schema, hidden and empty sections are
dropped, and resume data can be imported into sections along the way.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.portfolio-render/config.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error or disabled (default from config)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log as JSON")
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}

// printf writes progress output to stderr so stdout stays parseable.
func printf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

// session is what every command needs: configuration, a logger and a
// normalizer built from the configured schema.
type session struct {
	cfg        config.Config
	log        logger.Logger
	normalizer *section.Normalizer
}

func loadSession() (rt session, err error) {
	rt.cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return rt, err
	}

	level := rt.cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = logger.Level(level)
	logCfg.JSON = rt.cfg.Log.JSON || logJSON
	rt.log = logger.New(logCfg)

	var schema section.Schema
	schema, err = rt.cfg.NormalizerSchema()
	if err != nil {
		err = errors.Wrap(err, "invalid schema configuration")
		return rt, err
	}

	rt.normalizer = section.NewNormalizer(schema, rt.log)
	return rt, err
}

func loadResume(input string) (rec resume.Record, err error) {
	var doc source.Document
	doc, err = source.Fetch(input)
	if err != nil {
		return rec, err
	}

	switch doc.Ext {
	case ".yaml", ".yml":
		var fields map[string]any
		err = yaml.Unmarshal(doc.Data, &fields)
		if err == nil && fields == nil {
			err = errors.New("resume must be a mapping")
		}
		rec = resume.FromMap(fields)
	default:
		rec, err = resume.Parse(doc.Data)
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to parse resume: %s", input)
		return rec, err
	}

	if getVerbose() {
		catalog := resume.ListAvailableFields(&rec)
		printf("Loaded resume from %s (%d fields)\n", input, catalog.Len())
	}

	return rec, err
}
