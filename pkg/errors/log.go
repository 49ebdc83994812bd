package errors

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// LogHandler is an ErrorHandler that writes reported errors as zerolog events.
type LogHandler struct {
	// Logger receives one event per reported error.
	Logger zerolog.Logger
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

// NewLogHandler returns a LogHandler writing human-readable lines to w.
func NewLogHandler(w io.Writer, cfg LogConfig) *LogHandler {
	output := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}
	ctx := zerolog.New(output).Level(cfg.Level).With().Str("lib", "component")
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return &LogHandler{
		Logger:  ctx.Logger(),
		Verbose: cfg.Verbose,
	}
}

// HandleError logs a ComponentError at error level.
func (h *LogHandler) HandleError(err *ComponentError) {
	if err == nil {
		return
	}
	ev := h.Logger.Error().
		Str("op", err.Op).
		Stringer("kind", err.Kind)
	if err.Key != "" {
		ev = ev.Str("key", err.Key)
	}
	if err.Component != "" {
		ev = ev.Str("component", err.Component)
	}
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Err(err.Err).Msg("component error")
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	ev := h.Logger.Error().Interface("value", err.Value)
	if err.Op != "" {
		ev = ev.Str("op", err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("component panic")
}
