package main

import (
	"context"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"aitranslate/internal/events"
	"aitranslate/internal/models"
	"aitranslate/internal/services"
)

// App is the object bound to the frontend.
type App struct {
	ctx          context.Context
	settings     *services.SettingsStore
	models       services.ModelCatalogService
	emitter      *events.Emitter
	closeStorage func() error
}

// NewApp creates a new App application struct
func NewApp(svc *services.Services, emitter *events.Emitter, closeStorage func() error) *App {
	return &App{
		settings:     svc.Settings,
		models:       svc.Models,
		emitter:      emitter,
		closeStorage: closeStorage,
	}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	a.emitter.EnableRuntime()

	a.settings.Startup(ctx)
	if err := a.models.Startup(ctx); err != nil {
		runtime.LogError(ctx, fmt.Sprintf("failed to load model catalog: %v", err))
	}
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	if a.closeStorage == nil {
		return
	}
	if err := a.closeStorage(); err != nil {
		runtime.LogError(ctx, fmt.Sprintf("failed to close settings storage: %v", err))
	} else {
		runtime.LogInfo(ctx, "settings storage closed")
	}
	a.closeStorage = nil
}

// GetSettings returns the current settings
func (a *App) GetSettings() models.Settings {
	return a.settings.Settings()
}

// SetApiKey stores a new API key; an empty key clears it
func (a *App) SetApiKey(apiKey string) (models.Settings, error) {
	updated, err := a.settings.SetAPIKey(apiKey)
	if err != nil {
		a.logError(fmt.Sprintf("failed to set api key: %v", err))
	}
	return updated, err
}

// SetModel selects a model from the catalog
func (a *App) SetModel(model string) (models.Settings, error) {
	mdl, err := a.models.GetModel(model)
	if err != nil {
		a.logError(fmt.Sprintf("failed to set model: %v", err))
		return a.settings.Settings(), err
	}
	updated, err := a.settings.SetModel(mdl.APIName)
	if err != nil {
		a.logError(fmt.Sprintf("failed to set model: %v", err))
	}
	return updated, err
}

func (a *App) SetReasoning(level string) (models.Settings, error) {
	updated, err := a.settings.SetReasoning(level)
	if err != nil {
		a.logError(fmt.Sprintf("failed to set reasoning: %v", err))
	}
	return updated, err
}

func (a *App) SetRhyme(enabled bool) (models.Settings, error) {
	updated, err := a.settings.SetRhyme(enabled)
	if err != nil {
		a.logError(fmt.Sprintf("failed to set rhyme: %v", err))
	}
	return updated, err
}

// UpdateSettings applies several fields in one save. A model in the patch
// must be in the catalog.
func (a *App) UpdateSettings(patch models.SettingsPatch) (models.Settings, error) {
	if patch.Model != nil {
		mdl, err := a.models.GetModel(*patch.Model)
		if err != nil {
			a.logError(fmt.Sprintf("failed to update settings: %v", err))
			return a.settings.Settings(), err
		}
		patch.Model = &mdl.APIName
	}
	updated, err := a.settings.Update(patch)
	if err != nil {
		a.logError(fmt.Sprintf("failed to update settings: %v", err))
	}
	return updated, err
}

// ResetSettings restores the default settings, clearing the API key
func (a *App) ResetSettings() (models.Settings, error) {
	updated, err := a.settings.Reset()
	if err != nil {
		a.logError(fmt.Sprintf("failed to reset settings: %v", err))
	}
	return updated, err
}

// ListModelGroups returns the selectable models grouped by provider
func (a *App) ListModelGroups() ([]models.LLMModelGroup, error) {
	return a.models.ListModelGroups()
}

// ModelSupportsReasoning tells the frontend whether to show the reasoning selector
func (a *App) ModelSupportsReasoning(model string) bool {
	return a.models.SupportsReasoning(model)
}

// logError is a no-op before startup, when there is no runtime context yet.
func (a *App) logError(message string) {
	if a.ctx == nil {
		return
	}
	runtime.LogError(a.ctx, message)
}
