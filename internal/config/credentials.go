package config

import "github.com/spf13/viper"

// Credentials looks up provider secrets on demand. Environment variables are
// consulted on every call, so rotating GEMINI_API_KEY takes effect without a
// restart and an absent key surfaces per request.
type Credentials struct {
	v *viper.Viper
}

// GeminiAPIKey returns the current Gemini API key or "" when none is set.
func (c *Credentials) GeminiAPIKey() string {
	if c == nil || c.v == nil {
		return ""
	}
	return c.v.GetString(keyGeminiAPIKey)
}
