package server

import (
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "debug", "info", "warning", "error"
}

// WebLogger implements core.Logger by forwarding to the server logger and
// copying each message to a console channel
type WebLogger struct {
	renderID    string
	base        core.Logger
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, base core.Logger, consoleChan chan<- ConsoleMessage) *WebLogger {
	if base == nil {
		base = core.NewNopLogger()
	}
	return &WebLogger{
		renderID:    renderID,
		base:        base,
		consoleChan: consoleChan,
	}
}

// Debugf implements core.Logger
func (wl *WebLogger) Debugf(format string, args ...interface{}) {
	wl.base.Debugf("[%s] "+format, wl.prefixed(args)...)
	wl.send("debug", format, args)
}

// Infof implements core.Logger
func (wl *WebLogger) Infof(format string, args ...interface{}) {
	wl.base.Infof("[%s] "+format, wl.prefixed(args)...)
	wl.send("info", format, args)
}

// Warnf implements core.Logger
func (wl *WebLogger) Warnf(format string, args ...interface{}) {
	wl.base.Warnf("[%s] "+format, wl.prefixed(args)...)
	wl.send("warning", format, args)
}

// Errorf implements core.Logger
func (wl *WebLogger) Errorf(format string, args ...interface{}) {
	wl.base.Errorf("[%s] "+format, wl.prefixed(args)...)
	wl.send("error", format, args)
}

func (wl *WebLogger) prefixed(args []interface{}) []interface{} {
	return append([]interface{}{wl.renderID}, args...)
}

// send copies a message to the console channel without blocking
func (wl *WebLogger) send(level, format string, args []interface{}) {
	if wl.consoleChan == nil {
		return
	}
	select {
	case wl.consoleChan <- ConsoleMessage{
		Message:   fmt.Sprintf(format, args...),
		Timestamp: time.Now(),
		Level:     level,
	}:
	default:
		// Channel full, skip (don't block)
	}
}
