package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aitranslate/internal/events"
	"aitranslate/internal/models"
	"aitranslate/internal/services"
	"aitranslate/internal/tests/mocks"
)

func newTestApp(t *testing.T, repo *mocks.SettingsRepositoryMock) (*App, *services.Services) {
	t.Helper()
	emitter := events.NewEmitter()
	svc := services.NewServices(repo, mocks.NewLoggerMock(), emitter)
	app := NewApp(svc, emitter, nil)

	ctx := context.Background()
	svc.Settings.Startup(ctx)
	require.NoError(t, svc.Models.Startup(ctx))
	return app, svc
}

func TestApp_SharesSettingsStoreWithServices(t *testing.T) {
	repo := &mocks.SettingsRepositoryMock{}
	app, svc := newTestApp(t, repo)

	_, err := app.SetApiKey("sk-123")
	require.NoError(t, err)

	assert.Same(t, svc.Settings, app.settings)
	assert.Equal(t, "sk-123", svc.Settings.Settings().APIKey)
	assert.Equal(t, svc.Settings.Settings(), app.GetSettings())

	_, err = svc.Settings.SetRhyme(true)
	require.NoError(t, err)
	assert.True(t, app.GetSettings().Rhyme)
}

func TestApp_SetModel_RejectsUnknownModel(t *testing.T) {
	repo := &mocks.SettingsRepositoryMock{}
	app, _ := newTestApp(t, repo)

	current, err := app.SetModel("not-a-model")
	assert.EqualError(t, err, "model not-a-model not found")
	assert.Equal(t, models.DefaultSettings(), current)
	assert.Equal(t, 0, repo.Saves)

	updated, err := app.SetModel(" gemini-1.5-flash ")
	require.NoError(t, err)
	assert.Equal(t, "gemini-1.5-flash", updated.Model)
}

func TestApp_UpdateSettings(t *testing.T) {
	repo := &mocks.SettingsRepositoryMock{}
	app, _ := newTestApp(t, repo)

	key, model, reasoning, rhyme := "sk-patch", "o1", "high", true
	updated, err := app.UpdateSettings(models.SettingsPatch{
		APIKey:    &key,
		Model:     &model,
		Reasoning: &reasoning,
		Rhyme:     &rhyme,
	})
	require.NoError(t, err)
	assert.Equal(t, models.Settings{APIKey: "sk-patch", Model: "o1", Reasoning: "high", Rhyme: true}, updated)
	assert.Equal(t, 1, repo.Saves)

	unknown := "gpt-99"
	current, err := app.UpdateSettings(models.SettingsPatch{Model: &unknown})
	assert.EqualError(t, err, "model gpt-99 not found")
	assert.Equal(t, updated, current)
	assert.Equal(t, 1, repo.Saves)
}
