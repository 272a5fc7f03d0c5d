// Copyright 2026 Peter Edge
//
// All rights reserved.

package xos

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	t.Parallel()
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)
	for _, test := range []struct {
		path string
		want string
	}{
		{"~", homeDir},
		{"~/calendar.json", filepath.Join(homeDir, "calendar.json")},
		{"/tmp/calendar.json", "/tmp/calendar.json"},
		{"calendar.json", "calendar.json"},
		{"~other/calendar.json", "~other/calendar.json"},
	} {
		got, err := ExpandHome(test.path)
		require.NoError(t, err, test.path)
		require.Equal(t, test.want, got, test.path)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()
	dirPath := t.TempDir()
	filePath := filepath.Join(dirPath, "v1", "calendar.json")
	require.NoError(t, WriteFileAtomic(filePath, []byte("one"), 0o644))
	require.NoError(t, WriteFileAtomic(filePath, []byte("two"), 0o644))
	data, err := os.ReadFile(filePath)
	require.NoError(t, err)
	require.Equal(t, "two", string(data))
	// No temporary files are left behind.
	entries, err := os.ReadDir(filepath.Dir(filePath))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestStageFile(t *testing.T) {
	t.Parallel()
	dirPath := t.TempDir()
	filePath := filepath.Join(dirPath, "metadata.json")
	require.NoError(t, os.WriteFile(filePath, []byte("old"), 0o644))

	stagedFile, err := StageFile(filePath, []byte("new"), 0o644)
	require.NoError(t, err)
	data, err := os.ReadFile(filePath)
	require.NoError(t, err)
	require.Equal(t, "old", string(data))
	require.NoError(t, stagedFile.Abort())
	data, err = os.ReadFile(filePath)
	require.NoError(t, err)
	require.Equal(t, "old", string(data))
	entries, err := os.ReadDir(dirPath)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	stagedFile, err = StageFile(filePath, []byte("new"), 0o644)
	require.NoError(t, err)
	require.NoError(t, stagedFile.Commit())
	data, err = os.ReadFile(filePath)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))
}

func TestStageFileCommitFails(t *testing.T) {
	t.Parallel()
	dirPath := t.TempDir()
	// A non-empty directory cannot be replaced by a rename.
	filePath := filepath.Join(dirPath, "metadata.json")
	require.NoError(t, os.MkdirAll(filepath.Join(filePath, "child"), 0o755))
	stagedFile, err := StageFile(filePath, []byte("new"), 0o644)
	require.NoError(t, err)
	require.Error(t, stagedFile.Commit())
	entries, err := os.ReadDir(dirPath)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
