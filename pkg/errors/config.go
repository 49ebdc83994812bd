package errors

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Environment variables read by LogConfigFromEnv.
const (
	EnvLogLevel     = "COMPONENT_LOG_LEVEL"
	EnvLogVerbose   = "COMPONENT_LOG_VERBOSE"
	EnvLogNoColor   = "COMPONENT_LOG_NOCOLOR"
	EnvLogTimestamp = "COMPONENT_LOG_TIMESTAMP"
)

// LogConfig configures a LogHandler.
type LogConfig struct {
	Level     zerolog.Level
	Verbose   bool
	NoColor   bool
	Timestamp bool
}

// DefaultLogConfig returns the configuration used by the default handler.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:     zerolog.InfoLevel,
		Timestamp: true,
	}
}

// LogConfigFromEnv returns DefaultLogConfig with environment overrides applied.
// Unset or malformed variables leave the default in place.
func LogConfigFromEnv() LogConfig {
	cfg := DefaultLogConfig()
	if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogVerbose)); ok {
		cfg.Verbose = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogTimestamp)); ok {
		cfg.Timestamp = v
	}
	return cfg
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
