package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/codecommenter/internal/lang"
	"github.com/blackwell-systems/codecommenter/internal/suggest"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.Analysis.Latency)
	assert.Equal(t, suggest.NumberingFixed, cfg.Numbering())
	assert.Equal(t, lang.Label(""), cfg.Language())
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, 4, cfg.Scan.Workers)
	assert.Contains(t, cfg.Scan.Extensions, ".py")
	assert.Equal(t, 2*time.Second, cfg.Watch.Interval)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Output.Color)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
analysis:
  latency: 1500ms
  numbering: sequential
  language: py
server:
  addr: 127.0.0.1:9000
scan:
  workers: 2
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, cfg.Analysis.Latency)
	assert.Equal(t, suggest.NumberingSequential, cfg.Numbering())
	assert.Equal(t, lang.Python, cfg.Language())
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 2, cfg.Scan.Workers)
	// Untouched sections keep defaults.
	assert.Equal(t, "dracula", cfg.Output.Style)
}

func TestLoad_DefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".config", "codecommenter")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("analysis:\n  numbering: sequential\n"), 0o644))

	assert.Equal(t, dir, ConfigDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, suggest.NumberingSequential, cfg.Numbering())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CODECOMMENTER_ANALYSIS_NUMBERING", "sequential")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, suggest.NumberingSequential, cfg.Numbering())
}

func TestLoad_InvalidNumbering(t *testing.T) {
	path := writeConfig(t, "analysis:\n  numbering: roman\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.True(t, errors.Is(err, suggest.ErrUnknownNumbering))
}

func TestLoad_InvalidLanguage(t *testing.T) {
	path := writeConfig(t, "analysis:\n  language: cobol\n")
	_, err := Load(path)
	assert.True(t, errors.Is(err, lang.ErrUnknownLabel))
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "analysis: [unterminated\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{
		Analysis: DefaultAnalysis,
		Scan:     DefaultScan,
		Watch:    DefaultWatch,
	}
	require.NoError(t, base.Validate())

	negative := base
	negative.Analysis.Latency = -time.Second
	assert.True(t, errors.Is(negative.Validate(), ErrInvalid))

	noWorkers := base
	noWorkers.Scan.Workers = 0
	assert.True(t, errors.Is(noWorkers.Validate(), ErrInvalid))

	noInterval := base
	noInterval.Watch.Interval = 0
	assert.True(t, errors.Is(noInterval.Validate(), ErrInvalid))
}
