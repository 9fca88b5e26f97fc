package mocks

import "sync"

// LoggerMock records messages per level and satisfies the Wails logger.Logger interface.
type LoggerMock struct {
	mu       sync.Mutex
	Messages map[string][]string
}

func NewLoggerMock() *LoggerMock {
	return &LoggerMock{Messages: make(map[string][]string)}
}

func (l *LoggerMock) record(level, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages[level] = append(l.Messages[level], message)
}

func (l *LoggerMock) Lines(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.Messages[level]...)
}

func (l *LoggerMock) Print(message string)   { l.record("print", message) }
func (l *LoggerMock) Trace(message string)   { l.record("trace", message) }
func (l *LoggerMock) Debug(message string)   { l.record("debug", message) }
func (l *LoggerMock) Info(message string)    { l.record("info", message) }
func (l *LoggerMock) Warning(message string) { l.record("warning", message) }
func (l *LoggerMock) Error(message string)   { l.record("error", message) }
func (l *LoggerMock) Fatal(message string)   { l.record("fatal", message) }
