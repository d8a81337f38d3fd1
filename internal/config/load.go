package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	envPrefix = "FLASHDECK"

	keyGeminiAPIKey = "llm.gemini_api_key"

	// DefaultModelName is the Gemini model used when none is configured.
	DefaultModelName = "gemini-2.0-flash"
)

// Load reads server configuration from environment variables and an optional
// config file. Environment variables take precedence over values from the file.
// An empty configPath searches for flashdeck.yaml in the working directory.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(configPath string) (*Config, error) {
	v := newViper(configPath)

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("llm.model_name", DefaultModelName)
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.prompt_template_path", "")
	v.SetDefault("llm.min_cards", 15)
	v.SetDefault("llm.max_cards", 30)
	v.SetDefault("llm.strict_cards", false)

	// The original deployment reads GEMINI_API_KEY, keep it working alongside
	// the prefixed name.
	if err := v.BindEnv(keyGeminiAPIKey, envPrefix+"_LLM_GEMINI_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind gemini api key: %w", err)
	}

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.v = v
	return &cfg, nil
}

// LoadClient reads the study client's configuration. Keys live under the
// "client" section of the config file and the FLASHDECK_CLIENT_ env namespace.
func LoadClient(configPath string) (*ClientConfig, error) {
	v := newViper(configPath)

	v.SetDefault("client.server_url", "http://localhost:8080")
	v.SetDefault("client.log_file", "flashdeck-study.log")
	v.SetDefault("client.log_level", "info")

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	// Unmarshal through a wrapper rather than UnmarshalKey so environment
	// overrides of nested keys are honoured.
	var wrapper struct {
		Client ClientConfig `mapstructure:"client"`
	}
	if err := v.Unmarshal(&wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal client config: %w", err)
	}

	if err := validator.New().Struct(wrapper.Client); err != nil {
		return nil, fmt.Errorf("client config validation failed: %w", err)
	}

	return &wrapper.Client, nil
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("flashdeck")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	return v
}

// readConfigFile treats a missing config file as "environment only".
func readConfigFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}
