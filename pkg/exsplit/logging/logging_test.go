package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewWritesBothSinks(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	var stdout bytes.Buffer

	l, err := New(Config{
		Dir:         dir,
		StdoutLevel: zerolog.InfoLevel,
		FileLevel:   zerolog.DebugLevel,
		Stdout:      &stdout,
		Now:         func() time.Time { return time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC) },
	})
	require.NoError(t, err)

	l.Debug().Msg("debug only in file")
	l.Info().Msg("info everywhere")
	require.NoError(t, l.Close())

	require.Equal(t, filepath.Join(dir, "202403051407.log"), l.Path)
	data, err := os.ReadFile(l.Path)
	require.NoError(t, err)

	require.Contains(t, string(data), "debug only in file")
	require.Contains(t, string(data), "info everywhere")
	require.NotContains(t, stdout.String(), "debug only in file")
	require.Contains(t, stdout.String(), "info everywhere")
}

func TestNewDisableFile(t *testing.T) {
	var stdout bytes.Buffer
	l, err := New(Config{
		StdoutLevel: zerolog.WarnLevel,
		DisableFile: true,
		Stdout:      &stdout,
	})
	require.NoError(t, err)
	defer l.Close()

	l.Info().Msg("quiet")
	l.Warn().Msg("loud")

	require.Empty(t, l.Path)
	require.NotContains(t, stdout.String(), "quiet")
	require.Contains(t, stdout.String(), "loud")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"CRITICAL", zerolog.FatalLevel},
		{"error", zerolog.ErrorLevel},
		{"Warning", zerolog.WarnLevel},
		{"info", zerolog.InfoLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"notset", zerolog.TraceLevel},
		{"warn", zerolog.WarnLevel},
	}

	for _, tt := range tests {
		lvl, err := ParseLevel(tt.input)
		require.NoError(t, err, tt.input)
		require.Equal(t, tt.expected, lvl, tt.input)
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
	_, err = ParseLevel("")
	require.Error(t, err)
}
