package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test.
// Empty values count as unset for viper.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

// clearedEnv returns the variables every test starts from so a developer's
// shell does not leak into assertions.
func clearedEnv() map[string]string {
	return map[string]string{
		"GEMINI_API_KEY":                            "",
		"FLASHDECK_LLM_GEMINI_API_KEY":              "",
		"FLASHDECK_SERVER_PORT":                     "",
		"FLASHDECK_SERVER_LOG_LEVEL":                "",
		"FLASHDECK_LLM_MODEL_NAME":                  "",
		"FLASHDECK_LLM_MIN_CARDS":                   "",
		"FLASHDECK_LLM_MAX_CARDS":                   "",
		"FLASHDECK_LLM_BASE_URL":                    "",
		"FLASHDECK_LLM_STRICT_CARDS":                "",
		"FLASHDECK_LLM_PROMPT_TEMPLATE_PATH":        "",
		"FLASHDECK_CLIENT_SERVER_URL":               "",
		"FLASHDECK_CLIENT_LOG_FILE":                 "",
		"FLASHDECK_CLIENT_LOG_LEVEL":                "",
		"FLASHDECK_SERVER_SHUTDOWN_TIMEOUT_SECONDS": "",
	}
}

// TestLoadDefaults verifies that Load sets the expected default values when
// no environment variables are set, and that a missing API key is not a
// startup error.
func TestLoadDefaults(t *testing.T) {
	setupEnv(t, clearedEnv())

	cfg, err := Load("")

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, DefaultModelName, cfg.LLM.ModelName)
	assert.Equal(t, 15, cfg.LLM.MinCards)
	assert.Equal(t, 30, cfg.LLM.MaxCards)
	assert.False(t, cfg.LLM.StrictCards)
	assert.Empty(t, cfg.LLM.GeminiAPIKey)
	assert.Empty(t, cfg.Credentials().GeminiAPIKey())
}

// TestLoadFromEnv verifies that Load correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	env := clearedEnv()
	env["FLASHDECK_SERVER_PORT"] = "9090"
	env["FLASHDECK_SERVER_LOG_LEVEL"] = "debug"
	env["FLASHDECK_LLM_MODEL_NAME"] = "gemini-2.5-flash"
	env["FLASHDECK_LLM_MIN_CARDS"] = "5"
	env["FLASHDECK_LLM_MAX_CARDS"] = "10"
	env["FLASHDECK_LLM_STRICT_CARDS"] = "true"
	env["FLASHDECK_LLM_BASE_URL"] = "http://localhost:9999"
	env["GEMINI_API_KEY"] = "test-api-key"
	setupEnv(t, env)

	cfg, err := Load("")

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.ModelName)
	assert.Equal(t, 5, cfg.LLM.MinCards)
	assert.Equal(t, 10, cfg.LLM.MaxCards)
	assert.True(t, cfg.LLM.StrictCards)
	assert.Equal(t, "http://localhost:9999", cfg.LLM.BaseURL)
	assert.Equal(t, "test-api-key", cfg.LLM.GeminiAPIKey)
}

// TestCredentialsResolvePerCall verifies the key is looked up when asked for,
// not when the config was loaded.
func TestCredentialsResolvePerCall(t *testing.T) {
	setupEnv(t, clearedEnv())

	cfg, err := Load("")
	require.NoError(t, err)
	creds := cfg.Credentials()

	assert.Empty(t, creds.GeminiAPIKey())

	t.Setenv("GEMINI_API_KEY", "rotated-key")
	assert.Equal(t, "rotated-key", creds.GeminiAPIKey())

	t.Setenv("FLASHDECK_LLM_GEMINI_API_KEY", "prefixed-key")
	assert.Equal(t, "prefixed-key", creds.GeminiAPIKey(), "prefixed name wins over GEMINI_API_KEY")
}

func TestCredentialsNilSafe(t *testing.T) {
	var creds *Credentials
	assert.Empty(t, creds.GeminiAPIKey())
	assert.Empty(t, (&Credentials{}).GeminiAPIKey())
}

// TestLoadFromFile verifies values are read from an explicit YAML file and
// that the environment still takes precedence.
func TestLoadFromFile(t *testing.T) {
	env := clearedEnv()
	env["FLASHDECK_SERVER_PORT"] = "7070"
	setupEnv(t, env)

	path := filepath.Join(t.TempDir(), "flashdeck.yaml")
	content := []byte(`
server:
  port: 6060
  log_level: warn
llm:
  gemini_api_key: from-file
  min_cards: 3
  max_cards: 4
client:
  server_url: http://cards.internal:8080
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port, "environment should override the file")
	assert.Equal(t, "warn", cfg.Server.LogLevel)
	assert.Equal(t, 3, cfg.LLM.MinCards)
	assert.Equal(t, 4, cfg.LLM.MaxCards)
	assert.Equal(t, "from-file", cfg.Credentials().GeminiAPIKey())

	clientCfg, err := LoadClient(path)
	require.NoError(t, err)
	assert.Equal(t, "http://cards.internal:8080", clientCfg.ServerURL)
}

// TestLoadValidationErrors verifies that Load correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "Invalid port number",
			envVars: map[string]string{"FLASHDECK_SERVER_PORT": "999999"},
		},
		{
			name:    "Invalid log level",
			envVars: map[string]string{"FLASHDECK_SERVER_LOG_LEVEL": "invalid-level"},
		},
		{
			name:    "Max cards below min cards",
			envVars: map[string]string{"FLASHDECK_LLM_MIN_CARDS": "20", "FLASHDECK_LLM_MAX_CARDS": "10"},
		},
		{
			name:    "Zero min cards",
			envVars: map[string]string{"FLASHDECK_LLM_MIN_CARDS": "0"},
		},
		{
			name:    "Invalid base URL",
			envVars: map[string]string{"FLASHDECK_LLM_BASE_URL": "not a url"},
		},
		{
			name:    "Missing prompt template file",
			envVars: map[string]string{"FLASHDECK_LLM_PROMPT_TEMPLATE_PATH": "/definitely/not/here.tmpl"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := clearedEnv()
			for k, v := range tc.envVars {
				env[k] = v
			}
			setupEnv(t, env)

			cfg, err := Load("")

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}

func TestLoadClientDefaults(t *testing.T) {
	setupEnv(t, clearedEnv())

	cfg, err := LoadClient("")

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, "flashdeck-study.log", cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadClientFromEnv(t *testing.T) {
	env := clearedEnv()
	env["FLASHDECK_CLIENT_SERVER_URL"] = "https://cards.example.com"
	env["FLASHDECK_CLIENT_LOG_LEVEL"] = "debug"
	setupEnv(t, env)

	cfg, err := LoadClient("")

	require.NoError(t, err)
	assert.Equal(t, "https://cards.example.com", cfg.ServerURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadClientValidationError(t *testing.T) {
	env := clearedEnv()
	env["FLASHDECK_CLIENT_SERVER_URL"] = "::not-a-url"
	setupEnv(t, env)

	cfg, err := LoadClient("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Nil(t, cfg)
}
