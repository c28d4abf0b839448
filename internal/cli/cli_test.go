package cli

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/extpoly/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
		want *app.Config
	}{
		{
			name: "no arguments selects the demo",
			args: nil,
			want: &app.Config{LogFormat: "text", LogLevel: "warn", WorkerCount: 1},
		},
		{
			name: "positional path",
			args: []string{"scenes/"},
			want: &app.Config{ScenePath: "scenes/", LogFormat: "text", LogLevel: "warn", WorkerCount: 1},
		},
		{
			name: "scene flag wins over shorthand",
			args: []string{"-scene", "a.hcl", "-s", "b.hcl"},
			want: &app.Config{ScenePath: "a.hcl", LogFormat: "text", LogLevel: "warn", WorkerCount: 1},
		},
		{
			name: "log and worker options",
			args: []string{"-log-format", "JSON", "-log-level", "Debug", "-workers", "3", "-s", "x.hcl"},
			want: &app.Config{ScenePath: "x.hcl", LogFormat: "json", LogLevel: "debug", WorkerCount: 3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			cfg, shouldExit, err := Parse(tc.args, &out)
			require.NoError(t, err)
			assert.False(t, shouldExit)
			assert.Equal(t, tc.want, cfg)
		})
	}
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg, shouldExit, err := Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"unknown flag", []string{"--nope"}, "flag provided but not defined: -nope"},
		{"bad log format", []string{"-log-format", "xml"}, "invalid log-format"},
		{"bad log level", []string{"-log-level", "loud"}, "invalid log-level"},
		{"bad workers", []string{"-workers", "0"}, "invalid workers"},
		{"too many paths", []string{"a.hcl", "b.hcl"}, "expected at most one scene path"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			_, _, err := Parse(tc.args, &out)
			require.Error(t, err)

			exitErr, ok := err.(*ExitError)
			require.True(t, ok, "expected *ExitError, got %T", err)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
