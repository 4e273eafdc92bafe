package logger

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogHandler_Basic(t *testing.T) {
	spy := &spySink{}
	log := slog.New(NewSlogHandler(newTestLogger(spy).Build()))

	log.Info("request handled", "status", 200, "path", "/users")
	assert.Equal(t, []string{"T INF request handled status=200 path=/users\n"}, spy.writes)
}

func TestSlogHandler_Levels(t *testing.T) {
	tests := []struct {
		level slog.Level
		tag   string
	}{
		{slog.LevelDebug - 4, "TRC"},
		{slog.LevelDebug, "DBG"},
		{slog.LevelInfo, "INF"},
		{slog.LevelWarn, "WRN"},
		{slog.LevelError, "ERR"},
		{slog.LevelError + 4, "ERR"},
	}
	for _, tt := range tests {
		spy := &spySink{}
		log := slog.New(NewSlogHandler(newTestLogger(spy).Build()))
		log.Log(context.Background(), tt.level, "m")
		assert.Equal(t, []string{"T " + tt.tag + " m\n"}, spy.writes, "level %v", tt.level)
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	h := NewSlogHandler(newTestLogger(&spySink{}).WithLevel(WarnLevel).Build())
	ctx := context.Background()

	assert.False(t, h.Enabled(ctx, slog.LevelInfo))
	assert.True(t, h.Enabled(ctx, slog.LevelWarn))
	assert.True(t, h.Enabled(ctx, slog.LevelError))
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	spy := &spySink{}
	base := slog.New(NewSlogHandler(newTestLogger(spy).Build()))

	reqLog := base.With("request_id", "abc").WithGroup("http").With("method", "GET")
	reqLog.Warn("slow", "took", 1500*time.Millisecond)

	assert.Equal(t, []string{"T WRN slow request_id=abc http.method=GET http.took=1.5s\n"}, spy.writes)

	// the parent is not affected
	spy.writes = nil
	base.Info("plain")
	assert.Equal(t, []string{"T INF plain\n"}, spy.writes)
}

func TestSlogHandler_GroupAttr(t *testing.T) {
	spy := &spySink{}
	log := slog.New(NewSlogHandler(newTestLogger(spy).Build()))

	log.Info("db", slog.Group("pool", slog.Int("open", 3), slog.Int("idle", 1)), slog.Group("empty"))
	assert.Equal(t, []string{"T INF db pool.open=3 pool.idle=1\n"}, spy.writes)
}

func TestSlogHandler_WithGroupEmpty(t *testing.T) {
	h := NewSlogHandler(newTestLogger(&spySink{}).Build())
	assert.Same(t, h, h.WithGroup(""))
}

func TestSlogHandler_WriteError(t *testing.T) {
	boom := assert.AnError
	h := NewSlogHandler(newTestLogger(&spySink{failErr: boom}).Build())

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "x", 0)
	require.ErrorIs(t, h.Handle(context.Background(), r), boom)
}
