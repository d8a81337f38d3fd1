package config

import "github.com/spf13/viper"

// Config holds all server configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`

	// v is kept so the Gemini credential can be resolved on every request.
	v *viper.Viper
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// GeminiAPIKey is the value seen at startup. It is informational only;
	// handlers resolve the key per request through Credentials.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`

	ModelName          string `mapstructure:"model_name"           validate:"required"`
	BaseURL            string `mapstructure:"base_url"             validate:"omitempty,url"`
	PromptTemplatePath string `mapstructure:"prompt_template_path" validate:"omitempty,file"`
	MinCards           int    `mapstructure:"min_cards"            validate:"gt=0"`
	MaxCards           int    `mapstructure:"max_cards"            validate:"gtefield=MinCards"`

	// StrictCards enables field-level validation of every generated card.
	StrictCards bool `mapstructure:"strict_cards"`
}

// ClientConfig holds the study client's settings.
type ClientConfig struct {
	ServerURL string `mapstructure:"server_url" validate:"required,url"`
	LogFile   string `mapstructure:"log_file"   validate:"required"`
	LogLevel  string `mapstructure:"log_level"  validate:"required,oneof=debug info warn error"`
}

// Credentials resolves secrets at the moment they are needed instead of
// freezing them at startup.
func (c *Config) Credentials() *Credentials {
	return &Credentials{v: c.v}
}
