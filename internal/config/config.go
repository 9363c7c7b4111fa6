package config

import (
	"fmt"
	"strconv"

	"github.com/spf13/viper"
)

// Form modes for the terminal shell
const (
	FormModeInline = "inline" // form and table share one view
	FormModeModal  = "modal"  // table view with a pop-up form dialog
)

// Edit modes
const (
	EditModeAtomic   = "atomic"   // replace the record in place on submit
	EditModeReinsert = "reinsert" // remove on selection, re-add on submit
)

// Config holds all configuration for the application
type Config struct {
	App    AppConfig
	Shell  ShellConfig
	Logger LoggerConfig
}

// AppConfig holds configuration for the HTTP shell
type AppConfig struct {
	Env                    string `mapstructure:"APP_ENV"`
	HTTPPort               string `mapstructure:"HTTP_PORT"`
	ShutdownTimeoutSeconds int    `mapstructure:"SHUTDOWN_TIMEOUT_SECONDS"`
}

// ShellConfig holds presentation options shared by the shells
type ShellConfig struct {
	FormMode string `mapstructure:"FORM_MODE"`
	EditMode string `mapstructure:"EDIT_MODE"`
}

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level          string `mapstructure:"LOG_LEVEL"`
	Format         string `mapstructure:"LOG_FORMAT"`
	OutputPath     string `mapstructure:"LOG_OUTPUT_PATH"`
	EnableSampling bool   `mapstructure:"LOG_ENABLE_SAMPLING"`
	ServiceName    string `mapstructure:"SERVICE_NAME"`
	ServiceVersion string `mapstructure:"SERVICE_VERSION"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (*Config, error) {
	viper.AutomaticEnv() // Read from environment variables

	// Defaults depend on APP_ENV, so env must be visible first
	setDefaults()

	viper.AddConfigPath(path)
	viper.SetConfigName("app") // Look for app.env
	viper.SetConfigType("env")

	// Try to read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is okay if we have env vars
	}

	var config Config

	config.App.Env = viper.GetString("APP_ENV")
	config.App.HTTPPort = viper.GetString("HTTP_PORT")
	config.App.ShutdownTimeoutSeconds = viper.GetInt("SHUTDOWN_TIMEOUT_SECONDS")

	config.Shell.FormMode = viper.GetString("FORM_MODE")
	config.Shell.EditMode = viper.GetString("EDIT_MODE")

	config.Logger.Level = viper.GetString("LOG_LEVEL")
	config.Logger.Format = viper.GetString("LOG_FORMAT")
	config.Logger.OutputPath = viper.GetString("LOG_OUTPUT_PATH")
	config.Logger.EnableSampling = viper.GetBool("LOG_ENABLE_SAMPLING")
	config.Logger.ServiceName = viper.GetString("SERVICE_NAME")
	config.Logger.ServiceVersion = viper.GetString("SERVICE_VERSION")

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("HTTP_PORT", "8080")
	viper.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)

	viper.SetDefault("FORM_MODE", FormModeInline)
	viper.SetDefault("EDIT_MODE", EditModeAtomic)

	// Logger defaults
	env := viper.GetString("APP_ENV")
	if env == "production" {
		viper.SetDefault("LOG_LEVEL", "info")
		viper.SetDefault("LOG_FORMAT", "json")
		viper.SetDefault("LOG_ENABLE_SAMPLING", true)
	} else {
		viper.SetDefault("LOG_LEVEL", "debug")
		viper.SetDefault("LOG_FORMAT", "console")
		viper.SetDefault("LOG_ENABLE_SAMPLING", false)
	}
	viper.SetDefault("LOG_OUTPUT_PATH", "stdout")
	viper.SetDefault("SERVICE_NAME", "persona-registry")
	viper.SetDefault("SERVICE_VERSION", "1.0.0")
}

// Validate checks that the loaded configuration is usable
func (c *Config) Validate() error {
	switch c.Shell.FormMode {
	case FormModeInline, FormModeModal:
	default:
		return fmt.Errorf("invalid FORM_MODE %q: want %q or %q", c.Shell.FormMode, FormModeInline, FormModeModal)
	}

	switch c.Shell.EditMode {
	case EditModeAtomic, EditModeReinsert:
	default:
		return fmt.Errorf("invalid EDIT_MODE %q: want %q or %q", c.Shell.EditMode, EditModeAtomic, EditModeReinsert)
	}

	// 0 asks the kernel for any free port
	port, err := strconv.Atoi(c.App.HTTPPort)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("invalid HTTP_PORT %q", c.App.HTTPPort)
	}

	if c.App.ShutdownTimeoutSeconds <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be positive, got %d", c.App.ShutdownTimeoutSeconds)
	}

	return nil
}

// HTTPAddress returns the listen address of the HTTP shell
func (c *AppConfig) HTTPAddress() string {
	return ":" + c.HTTPPort
}
