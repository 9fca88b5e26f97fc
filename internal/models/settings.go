package models

import "strings"

// SettingsNamespace is the fixed key the settings object is persisted under.
const SettingsNamespace = "aitranslate"

const (
	DefaultModel     = "gpt-4o"
	DefaultReasoning = ReasoningMedium
)

const (
	ReasoningLow    = "low"
	ReasoningMedium = "medium"
	ReasoningHigh   = "high"
)

// Settings is the user's preference set. The JSON shape is the persisted shape.
type Settings struct {
	APIKey    string `json:"apiKey"`
	Model     string `json:"model"`
	Reasoning string `json:"reasoning"`
	Rhyme     bool   `json:"rhyme"`
}

// SettingsPatch carries a partial update; nil fields are left untouched.
type SettingsPatch struct {
	APIKey    *string `json:"apiKey,omitempty"`
	Model     *string `json:"model,omitempty"`
	Reasoning *string `json:"reasoning,omitempty"`
	Rhyme     *bool   `json:"rhyme,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{
		APIKey:    "",
		Model:     DefaultModel,
		Reasoning: DefaultReasoning,
		Rhyme:     false,
	}
}

// IsReasoningLevel reports whether level is one of low, medium or high.
func IsReasoningLevel(level string) bool {
	switch level {
	case ReasoningLow, ReasoningMedium, ReasoningHigh:
		return true
	}
	return false
}

// Redacted returns a copy safe to log or emit: the API key keeps only its last 4 characters.
func (s Settings) Redacted() Settings {
	s.APIKey = MaskAPIKey(s.APIKey)
	return s
}

func MaskAPIKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return "****" + key[len(key)-4:]
}
