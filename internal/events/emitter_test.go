package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aitranslate/internal/models"
)

func TestEmitter_ZeroValueDrops(t *testing.T) {
	var e *Emitter
	assert.NotPanics(t, func() {
		e.Emit(context.Background(), SettingsChanged, SettingsEvent{})
	})
	assert.NotPanics(t, func() {
		NewEmitter().Emit(context.Background(), SettingsChanged, SettingsEvent{})
	})
}

func TestEmitter_CustomReceivesEvent(t *testing.T) {
	e := NewEmitter()
	var names []string
	var got []SettingsEvent
	e.SetCustom(func(ctx context.Context, name string, evt SettingsEvent) {
		names = append(names, name)
		got = append(got, evt)
	})

	evt := NewSettingsEvent(EventInfo, "api key updated", models.Settings{APIKey: "sk-1234567", Model: "gpt-4o"})
	e.Emit(context.Background(), SettingsChanged, evt)

	require.Len(t, got, 1)
	assert.Equal(t, []string{SettingsChanged}, names)
	assert.Equal(t, "****4567", got[0].Settings.APIKey)
	assert.Equal(t, "gpt-4o", got[0].Settings.Model)
	assert.NotEmpty(t, got[0].ID)

	e.SetCustom(nil)
	e.Emit(context.Background(), SettingsChanged, evt)
	assert.Len(t, got, 1)
}

func TestNewSettingsEvent_UniqueIDs(t *testing.T) {
	a := NewSettingsEvent(EventInfo, "a", models.DefaultSettings())
	b := NewSettingsEvent(EventInfo, "b", models.DefaultSettings())
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.Timestamp.IsZero())
}
