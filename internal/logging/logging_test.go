package logging

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	level    slog.Level
	messages []string
	err      error
}

func (r *recordingSink) Enabled(_ context.Context, level slog.Level) bool {
	return level >= r.level
}

func (r *recordingSink) Handle(_ context.Context, record slog.Record) error {
	r.messages = append(r.messages, record.Message)
	return r.err
}

func (r *recordingSink) WithAttrs([]slog.Attr) slog.Handler { return r }
func (r *recordingSink) WithGroup(string) slog.Handler      { return r }

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{" Info ", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestTeeRoutesByLevel(t *testing.T) {
	stdout := &recordingSink{level: slog.LevelInfo}
	db := &recordingSink{level: slog.LevelError}
	logger := slog.New(Tee(stdout, db))

	logger.Info("routine")
	logger.Error("broken")

	assert.Equal(t, []string{"routine", "broken"}, stdout.messages)
	assert.Equal(t, []string{"broken"}, db.messages)
}

func TestTeeSinkFailureDoesNotDropOtherSinks(t *testing.T) {
	failing := &recordingSink{level: slog.LevelInfo, err: errors.New("sink down")}
	healthy := &recordingSink{level: slog.LevelInfo}
	tee := Tee(failing, healthy)

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "still delivered", 0)
	err := tee.Handle(context.Background(), record)

	require.Error(t, err)
	assert.Equal(t, []string{"still delivered"}, healthy.messages)
}
