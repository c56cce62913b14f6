package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Bootstrap installs a plain JSON logger at Info so that config loading
// itself can log. Once the configuration is available, main swaps in the
// configured handler chain via Tee.
func Bootstrap() {
	slog.SetDefault(slog.New(NewJSONHandler(slog.LevelInfo)))
}

// NewJSONHandler returns the stdout JSON handler used as the primary sink.
func NewJSONHandler(level slog.Level) slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
}

// ParseLevel maps a LOG_LEVEL config value onto an slog level. Unknown
// values fall back to Info rather than failing startup.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
