// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package bsctlconfig provides configuration parsing and validation for bsctl.
//
// Configuration is stored at ~/.config/bsctl/config.yaml (or $BSCTL_CONFIG_DIR/config.yaml).
// The configuration file is optional. When it is absent, the embedded
// calendar data and the English locale are used.
package bsctlconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bufdev/bsctl/internal/bsctl/bsctlpath"
	"github.com/bufdev/bsctl/internal/pkg/bslocale"
	"github.com/bufdev/bsctl/internal/standard/xos"
	"gopkg.in/yaml.v3"
)

// CalendarURLEnvVar is the environment variable that overrides calendar.url.
const CalendarURLEnvVar = "BSCTL_CALENDAR_URL"

// configTemplate is the default configuration file template with comments.
// yaml.v3 does not preserve comments, so we hardcode the template string.
const configTemplate = `# The configuration file version.
#
# Required. The only current valid version is v1.
version: v1
# The locale used for month names, weekday names and digits.
#
# Optional. One of en (English, romanized month names) or ne (Nepali,
# Devanagari script and digits). Defaults to en.
locale: en
# Calendar data configuration.
#
# Optional. Bikram Sambat month lengths are not computable and come from
# reference data. By default the data compiled into bsctl is used.
calendar:
  # Where to read reference data from.
  #
  # One of:
  #   embedded: the data compiled into bsctl.
  #   file: the JSON file at calendar.file.
  #   download: the data downloaded by "bsctl data fetch".
  source: embedded
  # The reference data file, used when source is file.
  # file: ~/calendar.json
  # The URL "bsctl data fetch" downloads from. May be overridden with
  # the BSCTL_CALENDAR_URL environment variable.
  # url: https://example.com/calendar.json
`

// Source is where calendar reference data is read from.
type Source int

const (
	// SourceEmbedded uses the reference data compiled into the binary.
	SourceEmbedded Source = iota + 1
	// SourceFile uses a user-provided reference data file.
	SourceFile
	// SourceDownload uses reference data previously downloaded into the data directory.
	SourceDownload
)

// String implements fmt.Stringer.
func (s Source) String() string {
	switch s {
	case SourceEmbedded:
		return "embedded"
	case SourceFile:
		return "file"
	case SourceDownload:
		return "download"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// ParseSource parses a Source from its string form.
func ParseSource(s string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "embedded":
		return SourceEmbedded, nil
	case "file":
		return SourceFile, nil
	case "download":
		return SourceDownload, nil
	default:
		return 0, fmt.Errorf("unknown calendar source %q, must be one of: embedded, file, download", s)
	}
}

// ExternalConfig is the YAML-serializable configuration file structure.
type ExternalConfig struct {
	// Version is the configuration file version (must be "v1").
	Version string `yaml:"version"`
	// Locale is the output locale (en or ne).
	Locale string `yaml:"locale"`
	// Calendar holds the calendar data configuration.
	Calendar ExternalCalendarConfig `yaml:"calendar"`
}

// ExternalCalendarConfig holds calendar data configuration.
type ExternalCalendarConfig struct {
	// Source is one of embedded, file, download.
	Source string `yaml:"source"`
	// File is the reference data file path, used with the file source.
	File string `yaml:"file"`
	// URL is the URL to download reference data from.
	URL string `yaml:"url"`
}

// Config is the validated runtime configuration derived from the config file.
type Config struct {
	// Locale is the output locale.
	Locale bslocale.Locale
	// Source is where calendar reference data is read from.
	Source Source
	// FilePath is the reference data file path, with ~ expanded.
	//
	// Set if and only if Source is SourceFile.
	FilePath string
	// URL is the download URL, possibly empty.
	URL string
}

// DefaultConfig returns the Config used when no configuration file exists.
func DefaultConfig() *Config {
	return &Config{
		Locale: bslocale.LocaleEnglish,
		Source: SourceEmbedded,
	}
}

// NewConfig validates an ExternalConfig and returns a runtime Config.
func NewConfig(externalConfig ExternalConfig) (*Config, error) {
	if externalConfig.Version != "v1" {
		return nil, fmt.Errorf("unsupported config version %q, must be v1", externalConfig.Version)
	}
	config := DefaultConfig()
	if externalConfig.Locale != "" {
		locale, err := bslocale.ParseLocale(externalConfig.Locale)
		if err != nil {
			return nil, fmt.Errorf("locale: %w", err)
		}
		config.Locale = locale
	}
	if externalConfig.Calendar.Source != "" {
		source, err := ParseSource(externalConfig.Calendar.Source)
		if err != nil {
			return nil, fmt.Errorf("calendar.source: %w", err)
		}
		config.Source = source
	}
	switch config.Source {
	case SourceFile:
		if externalConfig.Calendar.File == "" {
			return nil, errors.New("calendar.file is required when calendar.source is file")
		}
		filePath, err := xos.ExpandHome(externalConfig.Calendar.File)
		if err != nil {
			return nil, fmt.Errorf("calendar.file: %w", err)
		}
		config.FilePath = filePath
	default:
		if externalConfig.Calendar.File != "" {
			return nil, fmt.Errorf("calendar.file is only valid when calendar.source is file, got source %v", config.Source)
		}
	}
	config.URL = externalConfig.Calendar.URL
	return config, nil
}

// ReadConfig reads and validates the configuration file from the given config directory.
// Returns a clear error message directing users to run "bsctl config init" if the file is missing.
func ReadConfig(configDirPath string) (*Config, error) {
	filePath := bsctlpath.ConfigFilePath(configDirPath)
	if _, err := os.Stat(filePath); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("configuration file not found at %s, run \"bsctl config init\" to create one", filePath)
	}
	return ReadConfigFile(filePath)
}

// ReadConfigOrDefault reads the configuration file from the given config directory,
// returning DefaultConfig if it does not exist.
func ReadConfigOrDefault(configDirPath string) (*Config, error) {
	filePath := bsctlpath.ConfigFilePath(configDirPath)
	if _, err := os.Stat(filePath); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return ReadConfigFile(filePath)
}

// ReadConfigFile reads and validates the configuration file at the given path.
func ReadConfigFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var externalConfig ExternalConfig
	if err := unmarshalYAMLStrict(data, &externalConfig); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", filePath, err)
	}
	config, err := NewConfig(externalConfig)
	if err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filePath, err)
	}
	return config, nil
}

// InitConfig creates a new configuration file with a documented template.
// Creates the config directory if it does not exist.
// Returns the path to the created file, or an error if the file already exists.
func InitConfig(configDirPath string) (string, error) {
	filePath := bsctlpath.ConfigFilePath(configDirPath)
	if _, err := os.Stat(filePath); err == nil {
		return "", fmt.Errorf("configuration file already exists: %s", filePath)
	}
	if err := os.MkdirAll(configDirPath, 0o755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(filePath, []byte(configTemplate), 0o644); err != nil {
		return "", err
	}
	return filePath, nil
}

// ValidateConfigFile reads and validates the configuration file at the given path.
func ValidateConfigFile(filePath string) error {
	_, err := ReadConfigFile(filePath)
	return err
}

// unmarshalYAMLStrict unmarshals the data as YAML with strict field checking.
// If the data length is 0, this is a no-op.
func unmarshalYAMLStrict(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	yamlDecoder := yaml.NewDecoder(bytes.NewReader(data))
	// Reject unknown fields.
	yamlDecoder.KnownFields(true)
	if err := yamlDecoder.Decode(v); err != nil {
		return fmt.Errorf("could not unmarshal as YAML: %w", err)
	}
	return nil
}
