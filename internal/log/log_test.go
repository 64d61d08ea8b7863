package log

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryAndLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(&buf, "info"))
	t.Cleanup(func() { _ = Init(os.Stderr, "warn") })

	Debug(CatParse, "hidden")
	Info(CatConfig, "Loaded config file", "path", "/tmp/config.yaml")
	ErrorErr(CatCLI, "Command failed", errors.New("boom"), "command", "parse")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "cat=config")
	require.Contains(t, out, `msg="Loaded config file"`)
	require.Contains(t, out, "path=/tmp/config.yaml")
	require.Contains(t, out, "cat=cli")
	require.Contains(t, out, "error=boom")
	require.Contains(t, out, "command=parse")
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	require.Error(t, Init(&bytes.Buffer{}, "chatty"))
}
