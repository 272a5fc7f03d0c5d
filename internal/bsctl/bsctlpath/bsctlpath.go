// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package bsctlpath derives file paths from the bsctl config and data directories.
// All layout is defined here so callers don't duplicate path construction logic.
//
// The config directory (~/.config/bsctl or $BSCTL_CONFIG_DIR) contains:
//
//	config.yaml                       Config file
//
// The data directory (~/.local/share/bsctl or $BSCTL_DATA_DIR) contains:
//
//	v1/calendar.json                  Downloaded reference data
//	v1/metadata.json                  Where and when the reference data was downloaded
package bsctlpath

import "path/filepath"

// ConfigFileName is the well-known config file name within the config directory.
const ConfigFileName = "config.yaml"

// ConfigFilePath returns the path to the config file within the config directory.
func ConfigFilePath(configDirPath string) string {
	return filepath.Join(configDirPath, ConfigFileName)
}

// DataDirV1Path returns the versioned data directory path within the data directory.
func DataDirV1Path(dataDirPath string) string {
	return filepath.Join(dataDirPath, "v1")
}

// CalendarFilePath returns the path to the downloaded reference data.
func CalendarFilePath(dataDirPath string) string {
	return filepath.Join(DataDirV1Path(dataDirPath), "calendar.json")
}

// MetadataFilePath returns the path to the download metadata record.
func MetadataFilePath(dataDirPath string) string {
	return filepath.Join(DataDirV1Path(dataDirPath), "metadata.json")
}
