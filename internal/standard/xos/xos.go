// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package xos provides extensions to the standard os package.
package xos

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome expands a leading ~ in a path to the user's home directory.
//
// Only "~" and "~/..." are expanded. Paths such as "~user/..." are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get home directory: %w", err)
	}
	return filepath.Join(homeDir, path[1:]), nil
}

// WriteFileAtomic writes data to a temporary file in the same directory as
// filePath and renames it into place, creating parent directories as needed.
//
// Readers never observe a partially written file.
func WriteFileAtomic(filePath string, data []byte, perm os.FileMode) error {
	stagedFile, err := StageFile(filePath, data, perm)
	if err != nil {
		return err
	}
	return stagedFile.Commit()
}

// StagedFile is file content written next to its destination but not yet
// renamed into place.
//
// Exactly one of Commit or Abort must be called.
type StagedFile struct {
	filePath     string
	tempFilePath string
}

// StageFile writes data to a temporary file in the same directory as filePath,
// creating parent directories as needed. filePath is not modified until Commit.
func StageFile(filePath string, data []byte, perm os.FileMode) (_ *StagedFile, retErr error) {
	dirPath := filepath.Dir(filePath)
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", dirPath, err)
	}
	file, err := os.CreateTemp(dirPath, "."+filepath.Base(filePath)+".*.tmp")
	if err != nil {
		return nil, err
	}
	tempFilePath := file.Name()
	defer func() {
		if retErr != nil {
			retErr = errors.Join(retErr, removeIfExists(tempFilePath))
		}
	}()
	if _, err := file.Write(data); err != nil {
		return nil, errors.Join(err, file.Close())
	}
	if err := file.Chmod(perm); err != nil {
		return nil, errors.Join(err, file.Close())
	}
	if err := file.Close(); err != nil {
		return nil, err
	}
	return &StagedFile{
		filePath:     filePath,
		tempFilePath: tempFilePath,
	}, nil
}

// Commit renames the staged content into place.
//
// The temporary file is removed if the rename fails.
func (s *StagedFile) Commit() error {
	if err := os.Rename(s.tempFilePath, s.filePath); err != nil {
		return errors.Join(err, removeIfExists(s.tempFilePath))
	}
	return nil
}

// Abort removes the staged content, leaving the destination untouched.
func (s *StagedFile) Abort() error {
	return removeIfExists(s.tempFilePath)
}

func removeIfExists(filePath string) error {
	if err := os.Remove(filePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
