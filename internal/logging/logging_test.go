package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"debug":   zerolog.DebugLevel,
		"WARN":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		" info ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
	} {
		got, err := ParseLevel(name)
		require.NoError(t, err, "level %q", name)
		assert.Equal(t, want, got)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, FormatJSON, "info", false)
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Str("language", "Python").Msg("analyzed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "analyzed", entry["message"])
	assert.Equal(t, "Python", entry["language"])
	assert.Equal(t, "codecommenter", entry["app"])
}

func TestNew_VerboseForcesDebug(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, FormatConsole, "error", true)
	require.NoError(t, err)

	log.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, FormatJSON, "loud", false)
	assert.Error(t, err)
}
