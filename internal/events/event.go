package events

import (
	"time"

	"github.com/google/uuid"

	"aitranslate/internal/models"
)

type EventType string

const (
	EventInfo  EventType = "info"
	EventWarn  EventType = "warn"
	EventError EventType = "error"
)

const (
	SettingsChanged = "settings:changed"
)

// SettingsEvent is the payload sent to the frontend after the settings change.
// Settings always carries a redacted API key.
type SettingsEvent struct {
	ID        string          `json:"id"`
	Type      EventType       `json:"type"`
	Message   string          `json:"message"`
	Timestamp time.Time       `json:"timestamp"`
	Settings  models.Settings `json:"settings"`
}

func NewSettingsEvent(eventType EventType, message string, settings models.Settings) SettingsEvent {
	return SettingsEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
		Settings:  settings.Redacted(),
	}
}
