// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package bsctlcmd provides shared wiring for bsctl commands (reading config,
// selecting the calendar data source, constructing converters and formatters).
package bsctlcmd

import (
	"context"
	"errors"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/bsctl/internal/bsctl/bsctlconfig"
	"github.com/bufdev/bsctl/internal/bsctl/bsctlsource"
	"github.com/bufdev/bsctl/internal/pkg/bsdate"
	"github.com/bufdev/bsctl/internal/pkg/bslocale"
	"github.com/bufdev/bsctl/internal/pkg/cliio"
	"github.com/spf13/pflag"
)

// FormatFlagName is the flag name for the output format.
const FormatFlagName = "format"

// BindFormatFlag binds the --format flag.
func BindFormatFlag(flagSet *pflag.FlagSet, format *string) {
	flagSet.StringVar(format, FormatFlagName, string(cliio.FormatTable), "Output format (table, csv, json)")
}

// ParseFormatFlag parses the value of the --format flag.
func ParseFormatFlag(value string) (cliio.Format, error) {
	format, err := cliio.ParseFormat(value)
	if err != nil {
		return "", appcmd.NewInvalidArgumentErrorf("--%s: %v", FormatFlagName, err)
	}
	return format, nil
}

// ReadConfig reads the configuration file, or returns the default configuration
// if there is none. The calendar URL environment variable overrides calendar.url.
func ReadConfig(container appext.Container) (*bsctlconfig.Config, error) {
	config, err := bsctlconfig.ReadConfigOrDefault(container.ConfigDirPath())
	if err != nil {
		return nil, err
	}
	if url := container.Env(bsctlconfig.CalendarURLEnvVar); url != "" {
		config.URL = url
	}
	return config, nil
}

// NewConverter reads the configuration and constructs a Converter over the
// configured calendar data source.
func NewConverter(ctx context.Context, container appext.Container) (*bsdate.Converter, *bsctlconfig.Config, error) {
	config, err := ReadConfig(container)
	if err != nil {
		return nil, nil, err
	}
	dataSource, err := bsctlsource.New(ctx, container.Logger(), config, container.DataDirPath())
	if err != nil {
		return nil, nil, err
	}
	converter, err := bsdate.NewConverter(dataSource)
	if err != nil {
		return nil, nil, err
	}
	return converter, config, nil
}

// NewFormatter constructs a Formatter in the configured locale.
func NewFormatter(converter *bsdate.Converter, config *bsctlconfig.Config) *bslocale.Formatter {
	return bslocale.NewFormatter(converter, bslocale.FormatterWithLocale(config.Locale))
}

// ParseDateArg parses a YYYY-MM-DD command argument, turning malformed input
// into an invalid argument error.
func ParseDateArg(arg string) (bsdate.Date, error) {
	date, err := bsdate.ParseDate(arg)
	if err != nil {
		return bsdate.Date{}, NewDateArgError(err)
	}
	return date, nil
}

// NewDateArgError converts conversion errors caused by the user's input into
// invalid argument errors. Other errors are returned unchanged.
func NewDateArgError(err error) error {
	if errors.Is(err, bsdate.ErrMalformedInput) ||
		errors.Is(err, bsdate.ErrInvalidDate) ||
		errors.Is(err, bsdate.ErrOutOfRange) ||
		errors.Is(err, bsdate.ErrUnknownYear) {
		return appcmd.NewInvalidArgumentError(err.Error())
	}
	return err
}
