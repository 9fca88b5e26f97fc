package main

import (
	"embed"
	"fmt"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"

	"aitranslate/internal/config"
	"aitranslate/internal/events"
	"aitranslate/internal/services"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading configuration:", err)
		os.Exit(1)
	}
	log := cfg.Logger()

	repo, closeStorage, err := services.OpenSettingsRepository(cfg)
	if err != nil {
		fmt.Println("Error opening settings storage:", err)
		os.Exit(1)
	}

	emitter := events.NewEmitter()
	svc := services.NewServices(repo, log, emitter)
	app := NewApp(svc, emitter, closeStorage)

	err = wails.Run(&options.App{
		Title:  "AI Translate",
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "AI Translate",
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		Logger:           log,
		LogLevel:         cfg.LogLevel,
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		Bind: []interface{}{
			app,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
