package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)

	level, err = ParseLevel(" DEBUG ")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestJSONFormatWritesOneObjectPerEvent(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Out = &buf

	logger, closer, err := New(cfg)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info().Str("component", "drag").Msg("drag started")

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "drag started", event["message"])
	assert.Equal(t, "drag", event["component"])
	assert.Equal(t, "info", event["level"])
}

func TestLevelFiltersEvents(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Level = zerolog.WarnLevel
	cfg.Out = &buf

	logger, _, err := New(cfg)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestConsoleFormatIsPlainText(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Out = &buf

	logger, _, err := New(cfg)
	require.NoError(t, err)
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), "\x1b[")
	assert.False(t, json.Valid(buf.Bytes()))
}

func TestUnknownFormatIsAnError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = "xml"
	_, _, err := New(cfg)
	assert.Error(t, err)
}

func TestFileReceivesEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.log")
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Out = &buf
	cfg.File = path

	logger, closer, err := New(cfg)
	require.NoError(t, err)
	logger.Info().Msg("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Contains(t, buf.String(), "to file")
}
