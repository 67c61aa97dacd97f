package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user and local search paths at empty directories.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestLoadTetrisFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg)
	assert.Equal(t, 500*time.Millisecond, cfg.FallInterval())
}

func TestLoadTetrisCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "board:\n  width: 12\ngravity:\n  fall_interval_ms: 250\n")

	cfg, err := LoadTetris(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Board.Width)
	assert.Equal(t, 20, cfg.Board.Height, "missing keys keep defaults")
	assert.Equal(t, 250*time.Millisecond, cfg.FallInterval())
	assert.Equal(t, 60, cfg.Runtime.TickRate)
}

func TestLoadTetrisCustomPathErrors(t *testing.T) {
	isolate(t)

	_, err := LoadTetris(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "config: failed to read")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "board: [not a map\n")
	_, err = LoadTetris(bad)
	assert.ErrorContains(t, err, "config: failed to parse")
}

func TestLoadTetrisSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", configFile), "board:\n  height: 16\n")
	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Board.Height, "local configs directory")

	writeFile(t, filepath.Join(home, ".tetris", "configs", configFile), "board:\n  height: 18\n")
	cfg, err = LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 18, cfg.Board.Height, "user config wins over local")
}

func TestLoadTetrisSkipsBrokenUserConfig(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".tetris", "configs", configFile), "board: [unclosed\n")

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TetrisConfig)
		wantErr string
	}{
		{"defaults", func(*TetrisConfig) {}, ""},
		{"narrow board", func(c *TetrisConfig) { c.Board.Width = 3 }, "board width"},
		{"short board", func(c *TetrisConfig) { c.Board.Height = 2 }, "board height"},
		{"zero interval", func(c *TetrisConfig) { c.Gravity.FallIntervalMS = 0 }, "fall interval"},
		{"negative tick rate", func(c *TetrisConfig) { c.Runtime.TickRate = -1 }, "tick rate"},
		{"unknown level", func(c *TetrisConfig) { c.Log.Level = "verbose" }, "log level"},
		{"smallest board", func(c *TetrisConfig) { c.Board.Width, c.Board.Height = 4, 4 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config: ")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLogLevel(t *testing.T) {
	cfg := DefaultTetrisConfig()
	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, lvl)

	cfg.Log.Level = "debug"
	lvl, err = cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, lvl)
}

func TestRuntimeFor(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Runtime.Seed = 99

	rc := cfg.RuntimeFor(100, 30)
	assert.Equal(t, 100, rc.ScreenW)
	assert.Equal(t, 30, rc.ScreenH)
	assert.Equal(t, 10, rc.BoardW)
	assert.Equal(t, 20, rc.BoardH)
	assert.Equal(t, int64(99), rc.Seed)
	assert.Equal(t, 60, rc.TickRate)
	assert.Equal(t, 500*time.Millisecond, rc.FallInterval)
}

func TestMarshalRoundTripsThroughLoader(t *testing.T) {
	isolate(t)
	cfg := DefaultTetrisConfig()
	cfg.Board.Width = 14
	cfg.Log.File = "/tmp/tetris.log"

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fall_interval_ms: 500")

	path := filepath.Join(t.TempDir(), "out.yaml")
	writeFile(t, path, string(data))
	loaded, err := LoadTetris(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
