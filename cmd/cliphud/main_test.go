package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "cliphud dev\n", out)
}

func TestTruncateArgs(t *testing.T) {
	out, err := execute(t, "", "truncate", "--max-width", "10", "abcdefghijklmnopqrstuvwxyz")
	require.NoError(t, err)
	assert.Equal(t, "abcdefg...\n", out)
}

func TestTruncateStdin(t *testing.T) {
	out, err := execute(t, "line1\nline2\nline3\nline4\nline5\nline6\n", "truncate")
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\nline3\nline4\nline5...\n", out)
}

func TestTruncateRejectsZeroLines(t *testing.T) {
	_, err := execute(t, "", "truncate", "--max-lines", "0", "x")
	require.ErrorIs(t, err, errInvalidConfig)
}

func TestTruncateEnvOverride(t *testing.T) {
	t.Setenv("CLIPHUD_MAX_WIDTH", "6")
	out, err := execute(t, "", "truncate", "あいうえおかきくけこ")
	require.NoError(t, err)
	assert.Equal(t, "あいう...\n", out)
}

func TestTruncateEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cliphud.env")
	require.NoError(t, os.WriteFile(path, []byte("CLIPHUD_MAX_LINES=2\n"), 0o600))
	t.Setenv("CLIPHUD_MAX_LINES", "") // restored after the test
	require.NoError(t, os.Unsetenv("CLIPHUD_MAX_LINES"))

	out, err := execute(t, "a\nb\nc", "truncate", "--env-file", path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb...\n", out)
}

func TestTruncateConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cliphud.toml")
	require.NoError(t, os.WriteFile(path, []byte("max-width = 5\n"), 0o600))

	out, err := execute(t, "", "truncate", "--config", path, "hello world")
	require.NoError(t, err)
	assert.Equal(t, "he...\n", out)
}

func newTestViper(t *testing.T, args ...string) *viper.Viper {
	t.Helper()
	cmd := newRunCmd()
	require.NoError(t, cmd.ParseFlags(args))
	v := viper.New()
	require.NoError(t, v.BindPFlags(cmd.Flags()))
	return v
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(newTestViper(t))
	require.NoError(t, err)

	assert.Equal(t, 300*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, time.Second, cfg.HUDDuration)
	assert.Equal(t, "📋 ", cfg.Prefix)
	assert.Equal(t, 100, cfg.Policy.MaxWidth)
	assert.Equal(t, 5, cfg.Policy.MaxLines)
	assert.Equal(t, float32(700), cfg.Style.Width)
	assert.Equal(t, float32(160), cfg.Style.Height)
	assert.InDelta(t, 0.8, cfg.Style.Opacity, 1e-9)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero poll interval", []string{"--poll-interval", "0s"}},
		{"negative duration", []string{"--hud-duration", "-1s"}},
		{"zero lines", []string{"--max-lines", "0"}},
		{"negative width", []string{"--max-width", "-1"}},
		{"zero window", []string{"--width", "0"}},
		{"opacity above one", []string{"--opacity", "1.5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(newTestViper(t, tt.args...))
			assert.ErrorIs(t, err, errInvalidConfig)
		})
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := loadConfig(newTestViper(t,
		"--poll-interval", "100ms",
		"--hud-duration", "2s",
		"--prefix", "",
		"--max-width", "40",
		"--font-size", "12.5",
	))
	require.NoError(t, err)

	assert.Equal(t, 100*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, 2*time.Second, cfg.HUDDuration)
	assert.Equal(t, "", cfg.Prefix)
	assert.Equal(t, 40, cfg.Policy.MaxWidth)
	assert.Equal(t, float32(12.5), cfg.Style.FontSize)
}
