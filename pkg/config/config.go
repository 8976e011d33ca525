package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/nikogura/portfolio-render/pkg/section"
	"github.com/pkg/errors"
)

const (
	appDir         = ".portfolio-render"
	configFileName = "config.json"

	// EnvTemplate overrides default_template.
	EnvTemplate = "PORTFOLIO_TEMPLATE"

	// EnvLogLevel overrides log.level.
	EnvLogLevel = "PORTFOLIO_LOG_LEVEL"
)

// Config represents the application configuration.
type Config struct {
	DefaultTemplate string        `json:"default_template" validate:"omitempty,oneof=classic modern minimalist developer designer"`
	Log             LogConfig     `json:"log"`
	Defaults        DefaultConfig `json:"defaults"`

	// Schema overrides the stock normalization tables. Set in code, only
	// non-zero fields take effect. Loaded from a file, every key present in
	// the "schema" object applies, zero values such as
	// "default_overlay_opacity": 0 included.
	Schema section.Schema `json:"schema"`

	schemaJSON json.RawMessage
}

// LogConfig selects log verbosity and format.
type LogConfig struct {
	Level string `json:"level" validate:"omitempty,oneof=debug info warn error disabled"`
	JSON  bool   `json:"json"`
}

// DefaultConfig holds default values for commands.
type DefaultConfig struct {
	OutputDir string `json:"output_dir"`
}

// Default returns the configuration used when no file is present. Schema is
// left empty: only the tables a user overrides are stored.
func Default() (cfg Config) {
	cfg = Config{
		DefaultTemplate: "modern",
		Log: LogConfig{
			Level: "info",
		},
		Defaults: DefaultConfig{
			OutputDir: ".",
		},
	}
	return cfg
}

// DefaultPath is ~/.portfolio-render/config.json.
func DefaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, appDir, configFileName)
	return path, err
}

// Load reads configuration from file with environment variable overrides.
// A missing file at the default location means defaults; a missing file at
// an explicit path is an error.
func Load(configPath string) (cfg Config, err error) {
	cfg = Default()

	// Determine config file location
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	// Read config file
	var data []byte
	data, err = os.ReadFile(path)
	switch {
	case err == nil:
		var user Config
		err = json.Unmarshal(data, &user)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}

		err = mergo.Merge(&cfg, user, mergo.WithOverride)
		if err != nil {
			err = errors.Wrapf(err, "failed to merge config file: %s", path)
			return cfg, err
		}

		var raw struct {
			Schema json.RawMessage `json:"schema"`
		}
		err = json.Unmarshal(data, &raw)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
		cfg.schemaJSON = raw.Schema
	case os.IsNotExist(err) && configPath == "":
		err = nil
	case os.IsNotExist(err):
		err = errors.Errorf("config file not found: %s (run 'portfolio-render init' to create)", path)
		return cfg, err
	default:
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	// Override with environment variables if set
	if tmpl := os.Getenv(EnvTemplate); tmpl != "" {
		cfg.DefaultTemplate = tmpl
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Log.Level = level
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Validate checks field values and that the schema overrides combine with
// the stock tables into a consistent schema.
func (c *Config) Validate() (err error) {
	err = validator.New().Struct(c)
	if err != nil {
		err = errors.Wrap(err, "invalid config values")
		return err
	}

	_, err = c.NormalizerSchema()
	if err != nil {
		return err
	}

	return err
}

// NormalizerSchema lays the configured overrides over the stock tables.
func (c *Config) NormalizerSchema() (schema section.Schema, err error) {
	schema, err = section.DefaultSchema().WithOverrides(c.Schema)
	if err != nil || len(c.schemaJSON) == 0 {
		return schema, err
	}

	err = json.Unmarshal(c.schemaJSON, &schema)
	if err != nil {
		err = errors.Wrap(err, "failed to apply schema overrides")
		return schema, err
	}

	err = schema.Validate()
	if err != nil {
		err = errors.Wrap(err, "schema overrides are inconsistent")
		return schema, err
	}

	return schema, err
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (path string, err error) {
	// Determine config file location
	path = configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return path, err
		}
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return path, err
	}

	// Check if file already exists
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return path, err
	}

	// Write the stock tables out so they can be edited in place
	defaultConfig := Default()
	defaultConfig.Schema = section.DefaultSchema()

	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return path, err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return path, err
	}

	return path, err
}
