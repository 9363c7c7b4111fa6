package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetViper(t)

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.Equal(t, 10, cfg.App.ShutdownTimeoutSeconds)
	assert.Equal(t, FormModeInline, cfg.Shell.FormMode)
	assert.Equal(t, EditModeAtomic, cfg.Shell.EditMode)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "stdout", cfg.Logger.OutputPath)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	resetViper(t)
	t.Setenv("FORM_MODE", FormModeModal)
	t.Setenv("EDIT_MODE", EditModeReinsert)
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, FormModeModal, cfg.Shell.FormMode)
	assert.Equal(t, EditModeReinsert, cfg.Shell.EditMode)
	assert.Equal(t, ":9090", cfg.App.HTTPAddress())
}

func TestLoadConfig_ProductionLogging(t *testing.T) {
	resetViper(t)
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.True(t, cfg.Logger.EnableSampling)
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	resetViper(t)
	dir := t.TempDir()
	content := "FORM_MODE=modal\nLOG_OUTPUT_PATH=personas.log\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, FormModeModal, cfg.Shell.FormMode)
	assert.Equal(t, "personas.log", cfg.Logger.OutputPath)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App:   AppConfig{HTTPPort: "8080", ShutdownTimeoutSeconds: 5},
			Shell: ShellConfig{FormMode: FormModeInline, EditMode: EditModeAtomic},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "bad form mode", mutate: func(c *Config) { c.Shell.FormMode = "popup" }, wantErr: "FORM_MODE"},
		{name: "bad edit mode", mutate: func(c *Config) { c.Shell.EditMode = "merge" }, wantErr: "EDIT_MODE"},
		{name: "port not numeric", mutate: func(c *Config) { c.App.HTTPPort = "http" }, wantErr: "HTTP_PORT"},
		{name: "any free port", mutate: func(c *Config) { c.App.HTTPPort = "0" }},
		{name: "negative port", mutate: func(c *Config) { c.App.HTTPPort = "-1" }, wantErr: "HTTP_PORT"},
		{name: "port out of range", mutate: func(c *Config) { c.App.HTTPPort = "70000" }, wantErr: "HTTP_PORT"},
		{name: "zero shutdown timeout", mutate: func(c *Config) { c.App.ShutdownTimeoutSeconds = 0 }, wantErr: "SHUTDOWN_TIMEOUT_SECONDS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
