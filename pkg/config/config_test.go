package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/nikogura/portfolio-render/pkg/section"
)

func TestLoad(t *testing.T) {
	// Create a temporary config file.
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	testConfig := Config{
		DefaultTemplate: "developer",
		Schema: section.Schema{
			DisplayModes:       []string{"cloud", "bars", "list"},
			DefaultDisplayMode: "list",
		},
		Defaults: DefaultConfig{
			OutputDir: "./test-output",
		},
	}

	data, err := json.MarshalIndent(testConfig, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal test config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	// Test loading the config.
	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.DefaultTemplate != "developer" {
		t.Errorf("Expected template developer, got %s", cfg.DefaultTemplate)
	}

	// Unset values keep their defaults.
	if cfg.Log.Level != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.Log.Level)
	}

	schema, err := cfg.NormalizerSchema()
	if err != nil {
		t.Fatalf("Failed to build schema: %v", err)
	}

	if schema.DefaultDisplayMode != "list" {
		t.Errorf("Expected display mode list, got %s", schema.DefaultDisplayMode)
	}

	if schema.DefaultCTAVariant != "primary" {
		t.Errorf("Expected stock cta variant to survive, got %s", schema.DefaultCTAVariant)
	}
}

func TestLoadZeroSchemaOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	data := []byte(`{"schema": {"default_overlay_opacity": 0, "default_cta_url": "", "about_social_networks": []}}`)
	err := os.WriteFile(configPath, data, 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	schema, err := cfg.NormalizerSchema()
	if err != nil {
		t.Fatalf("Failed to build schema: %v", err)
	}

	if schema.DefaultOverlayOpacity != 0 {
		t.Errorf("Expected overlay opacity 0, got %g", schema.DefaultOverlayOpacity)
	}

	if schema.DefaultCTAURL != "" {
		t.Errorf("Expected empty cta url, got %q", schema.DefaultCTAURL)
	}

	if len(schema.AboutSocialNetworks) != 0 {
		t.Errorf("Expected no about social networks, got %v", schema.AboutSocialNetworks)
	}

	// keys absent from the file keep their stock values
	if schema.DefaultPostsPerRow != 3 {
		t.Errorf("Expected stock posts per row 3, got %d", schema.DefaultPostsPerRow)
	}

	err = os.WriteFile(configPath, []byte(`{"schema": {"default_overlay_opacity": 2}}`), 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err = Load(configPath)
	if err == nil {
		t.Error("Expected validation error for out of range opacity, got nil")
	}
}

func TestLoadNonexistent(t *testing.T) {
	_, err := Load("/nonexistent/path/config.json")
	if err == nil {
		t.Error("Expected error loading nonexistent config, got nil")
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvTemplate, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected defaults without a config file, got %v", err)
	}

	if cfg.DefaultTemplate != "modern" {
		t.Errorf("Expected default template modern, got %s", cfg.DefaultTemplate)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvTemplate, "classic")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.DefaultTemplate != "classic" {
		t.Errorf("Expected template classic, got %s", cfg.DefaultTemplate)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.Log.Level)
	}

	t.Setenv(EnvTemplate, "vaporwave")
	_, err = Load("")
	if err == nil {
		t.Error("Expected validation error for unknown template, got nil")
	}
}

func TestLoadMalformed(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	err := os.WriteFile(configPath, []byte("{not json"), 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err = Load(configPath)
	if err == nil {
		t.Error("Expected error loading malformed config, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		wantError bool
	}{
		{
			name:      "defaults",
			config:    Default(),
			wantError: false,
		},
		{
			name:      "zero value",
			config:    Config{},
			wantError: false,
		},
		{
			name: "unknown template",
			config: Config{
				DefaultTemplate: "brutalist",
			},
			wantError: true,
		},
		{
			name: "unknown log level",
			config: Config{
				Log: LogConfig{Level: "trace"},
			},
			wantError: true,
		},
		{
			name: "display mode default outside table",
			config: Config{
				Schema: section.Schema{DefaultDisplayMode: "grid"},
			},
			wantError: true,
		},
		{
			name: "posts per row range inverted",
			config: Config{
				Schema: section.Schema{PostsPerRowMin: 4, PostsPerRowMax: 2},
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestInitConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.json")

	path, err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to init config: %v", err)
	}

	if path != configPath {
		t.Errorf("Expected path %s, got %s", configPath, path)
	}

	// The written file must load back cleanly.
	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load written config: %v", err)
	}

	if cfg.Defaults.OutputDir == "" {
		t.Error("Default output dir was not set")
	}

	if len(cfg.Schema.ContactFields) == 0 {
		t.Error("Stock schema tables were not written")
	}
}

func TestInitConfigAlreadyExists(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	// Create file first.
	err := os.WriteFile(configPath, []byte("{}"), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	// Try to init - should fail.
	_, err = InitConfig(configPath)
	if err == nil {
		t.Error("Expected error when config already exists, got nil")
	}
}
