package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigDefaults(t *testing.T) {
	cfg, err := ReadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestReadConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "log:\n  level: debug\nwriter:\n  buffer_size: 4096\n  progress_interval: 10\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := ReadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "debug", BufferSize: 4096, ProgressInterval: 10}, cfg)
}

func TestReadConfigInvalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: "log: [level\n"},
		{name: "non positive buffer", content: "writer:\n  buffer_size: 0\n"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(tt.content), 0o644))

			_, err := ReadConfig(dir)
			assert.Error(t, err)
		})
	}
}

func TestReadConfigPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log:\n  level: info\n"), 0o644))

	cfg, err := ReadConfig(dir)
	require.NoError(t, err)

	want := DefaultConfig()
	want.LogLevel = "info"
	assert.Equal(t, want, cfg)
}
