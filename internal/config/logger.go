package config

import "github.com/wailsapp/wails/v2/pkg/logger"

// LevelLogger forwards to next only the messages at or above level.
// Print and Fatal always pass.
type LevelLogger struct {
	next  logger.Logger
	level logger.LogLevel
}

func NewLevelLogger(next logger.Logger, level logger.LogLevel) *LevelLogger {
	return &LevelLogger{next: next, level: level}
}

func (l *LevelLogger) enabled(level logger.LogLevel) bool {
	return level >= l.level
}

func (l *LevelLogger) Print(message string) { l.next.Print(message) }

func (l *LevelLogger) Trace(message string) {
	if l.enabled(logger.TRACE) {
		l.next.Trace(message)
	}
}

func (l *LevelLogger) Debug(message string) {
	if l.enabled(logger.DEBUG) {
		l.next.Debug(message)
	}
}

func (l *LevelLogger) Info(message string) {
	if l.enabled(logger.INFO) {
		l.next.Info(message)
	}
}

func (l *LevelLogger) Warning(message string) {
	if l.enabled(logger.WARNING) {
		l.next.Warning(message)
	}
}

func (l *LevelLogger) Error(message string) {
	if l.enabled(logger.ERROR) {
		l.next.Error(message)
	}
}

func (l *LevelLogger) Fatal(message string) { l.next.Fatal(message) }
