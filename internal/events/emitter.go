package events

import (
	"context"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// EmitFunc delivers a named event to whoever listens for it.
type EmitFunc func(ctx context.Context, name string, evt SettingsEvent)

// Emitter is handed to the services at construction. The zero value drops events.
type Emitter struct {
	mu   sync.RWMutex
	emit EmitFunc
}

func NewEmitter() *Emitter {
	return &Emitter{}
}

// EnableRuntime routes events through the Wails runtime. ctx must be the
// context Wails passed to OnStartup.
func (e *Emitter) EnableRuntime() {
	e.SetCustom(func(ctx context.Context, name string, evt SettingsEvent) {
		runtime.EventsEmit(ctx, name, evt)
		logRuntimeEvent(ctx, name, evt)
	})
}

func (e *Emitter) SetCustom(f EmitFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.emit = f
}

func (e *Emitter) Emit(ctx context.Context, name string, evt SettingsEvent) {
	if e == nil || ctx == nil {
		return
	}
	e.mu.RLock()
	f := e.emit
	e.mu.RUnlock()
	if f != nil {
		f(ctx, name, evt)
	}
}
