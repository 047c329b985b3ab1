package logger

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info().Msg("dropped") })
}

func TestGetChildLogger_Independent(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()
	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_NoLoggerAttached(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
	// без WithContext достаётся выключенный логгер zerolog: всё молча теряется
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
	assert.NotPanics(t, func() { l.Debug().Msg("silently dropped") })
}

func TestFromContext_RoundTrip(t *testing.T) {
	parent := Nop()
	ctx := parent.WithContext(context.Background())

	got := FromContext(ctx)
	require.NotNil(t, got)
}

func TestFromContext_AttachedLoggerEmits(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf)}
	ctx := parent.WithContext(context.Background())

	FromContext(ctx).Warn().Msg("background cycle notice")

	assert.Contains(t, buf.String(), "background cycle notice")
}

func TestFromRequest_RoundTrip(t *testing.T) {
	parent := Nop()
	r := httptest.NewRequest("GET", "/api/health", nil)
	r = r.WithContext(parent.WithContext(r.Context()))

	got := FromRequest(r)
	require.NotNil(t, got)
}
