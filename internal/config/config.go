// Package config loads and validates application configuration.
package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// SMTPConfig contains the outbound mail transport settings.
// Mail is best-effort; an unconfigured host disables sending entirely.
type SMTPConfig struct {
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"        validate:"omitempty,gt=0,lt=65536"`
	Username   string `mapstructure:"username"`
	Password   string `mapstructure:"password"`
	Sender     string `mapstructure:"sender"      validate:"omitempty,email"`
	AdminEmail string `mapstructure:"admin_email" validate:"omitempty,email"`
}

// Enabled reports whether the mail transport is configured.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.Sender != "" && c.AdminEmail != ""
}

// CORSConfig restricts which web origins may call the HTTP surface.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}
