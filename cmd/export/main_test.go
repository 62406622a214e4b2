package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interviewprep/practice-service/internal/services"
)

func TestWriteExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	result := &services.ExportResult{
		Filename: services.ExportFilename(time.Date(2026, 7, 1, 8, 0, 0, 0, time.UTC)),
		Data:     []byte("xlsx-bytes"),
	}

	path, err := writeExport(dir, result)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "practice_data_2026-07-01T08-00-00.xlsx"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx-bytes"), data)
}

func TestNewRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--dir", "/tmp/out", "--timeout", "30s"}))

	assert.Equal(t, "/tmp/out", outputDir)
	assert.Equal(t, 30*time.Second, exportTimeout)
}
