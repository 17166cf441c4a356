// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bijalsangnaach/academy-backend/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Port           string      `mapstructure:"PORT" yaml:"port"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS" yaml:"allowed_origins"`
	Version        string      `mapstructure:"VERSION" yaml:"version"`
	FrontendURL    string      `mapstructure:"FRONTEND_URL" yaml:"frontend_url"`
}

// EmailConfig holds configuration for relaying inquiry emails.
// FromAddress is the sending account identity, ResendAPIKey its credential,
// and ReceiverAddress the fixed destination inbox for all submissions.
type EmailConfig struct {
	FromAddress     string `mapstructure:"FROM_ADDRESS" yaml:"from_address"`
	FromName        string `mapstructure:"FROM_NAME" yaml:"from_name"`
	ReceiverAddress string `mapstructure:"RECEIVER_ADDRESS" yaml:"receiver_address"`
	ResendAPIKey    string `mapstructure:"RESEND_API_KEY" yaml:"resend_api_key"`
}

// IsComplete reports whether all settings required to deliver an email are
// present. An incomplete configuration is a per-request ConfigurationMissing
// fault, not a boot failure, so a misdeployed instance still serves health
// checks and static traffic.
func (c *EmailConfig) IsComplete() bool {
	return c.FromAddress != "" && c.ResendAPIKey != "" && c.ReceiverAddress != ""
}

// Config aggregates all application configuration sections.
type Config struct {
	Server ServerConfig `mapstructure:"SERVER" yaml:"server"`
	Email  EmailConfig  `mapstructure:"EMAIL" yaml:"email"`
}

// IsDevelopment returns true if the application is running in development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction returns true if the application is running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// LoadConfig loads configuration from environment variables using Viper,
// sets default values, binds environment variables to config struct fields,
// unmarshals the configuration, and validates it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("EMAIL.FROM_NAME", "Bijalsangnaach Website")
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envBindings := [][2]string{
		// Server config
		{"SERVER.ENVIRONMENT", "ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.VERSION", "VERSION"},
		{"SERVER.FRONTEND_URL", "FRONTEND_URL"},
		// Email config
		{"EMAIL.FROM_ADDRESS", "EMAIL_FROM_ADDRESS"},
		{"EMAIL.FROM_NAME", "EMAIL_FROM_NAME"},
		{"EMAIL.RECEIVER_ADDRESS", "INQUIRY_RECEIVER_EMAIL"},
		{"EMAIL.RESEND_API_KEY", "RESEND_API_KEY"},
	}

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"server_port", cfg.Server.Port,
		"allowed_origins", cfg.Server.AllowedOrigins,
		"email_from", logger.MaskEmail(cfg.Email.FromAddress),
		"email_receiver", logger.MaskEmail(cfg.Email.ReceiverAddress),
		"resend_key", logger.MaskSensitiveString(cfg.Email.ResendAPIKey, 4, 2),
		"email_configured", cfg.Email.IsComplete(),
	)

	return &cfg, nil
}

// validateConfig checks if the loaded configuration values are valid.
// The email section is intentionally not required here; its absence is
// reported per request by the submission endpoints.
func validateConfig(cfg *Config) error {
	log := logger.GetLogger()

	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if !containsWildcard(cfg.Server.AllowedOrigins) {
		for _, origin := range cfg.Server.AllowedOrigins {
			if _, err := url.ParseRequestURI(origin); err != nil {
				return fmt.Errorf("invalid allowed origin '%s': %w", origin, err)
			}
		}
	}

	if !cfg.Email.IsComplete() {
		log.Warnw("Email configuration incomplete; inquiry submissions will fail until it is set",
			"from_set", cfg.Email.FromAddress != "",
			"receiver_set", cfg.Email.ReceiverAddress != "",
			"api_key_set", cfg.Email.ResendAPIKey != "")
	}

	return nil
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
