package config

import "fmt"

// ConfigError represents a configuration error.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s", e.Message)
}

// Config is the root configuration for roster.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Gateway GatewayConfig `yaml:"gateway,omitempty"`
	Server  ServerConfig  `yaml:"server,omitempty"`
}

// CatalogConfig locates the catalog tree and names the default agent.
type CatalogConfig struct {
	// Root is the directory holding _cfg/ manifests. All file paths in the
	// manifests resolve relative to it, and no read may escape it.
	Root         string `yaml:"root,omitempty"`
	DefaultAgent string `yaml:"defaultAgent,omitempty"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level        string `yaml:"level,omitempty"` // "silent" | "fatal" | "error" | "warn" | "info" | "debug" | "trace"
	File         string `yaml:"file,omitempty"`
	ConsoleStyle string `yaml:"consoleStyle,omitempty"` // "pretty" | "json"
}

// GatewayConfig controls the WebSocket debug gateway.
type GatewayConfig struct {
	Port int         `yaml:"port,omitempty"`
	Bind string      `yaml:"bind,omitempty"` // "loopback" | "lan"
	Auth GatewayAuth `yaml:"auth,omitempty"`
}

// GatewayAuth configures gateway authentication.
type GatewayAuth struct {
	Token string `yaml:"token,omitempty"`
}

// ServerConfig identifies the MCP server to clients.
type ServerConfig struct {
	Name string `yaml:"name,omitempty"`
}

// Defaults returns a Config with sensible defaults applied.
func Defaults() Config {
	return Config{
		Catalog: CatalogConfig{
			DefaultAgent: "roster-master",
		},
		Logging: LoggingConfig{
			Level:        "info",
			ConsoleStyle: "pretty",
		},
		Gateway: GatewayConfig{
			Port: 18799,
			Bind: "loopback",
		},
		Server: ServerConfig{
			Name: "roster",
		},
	}
}
