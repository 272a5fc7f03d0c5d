// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package bsctlsource selects, downloads and verifies calendar data sources for bsctl.
package bsctlsource

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/bufdev/bsctl/internal/bsctl/bsctlconfig"
	"github.com/bufdev/bsctl/internal/bsctl/bsctlpath"
	"github.com/bufdev/bsctl/internal/pkg/bscalendar"
	"golang.org/x/sync/singleflight"
)

// readFileGroup collapses concurrent reads of the same reference data file.
var readFileGroup singleflight.Group

// New returns the DataSource selected by the config.
//
// For the download source, if no data has been downloaded yet, a warning is
// logged and the embedded data is used. A missing or inconsistent metadata
// record is also logged as a warning.
func New(
	ctx context.Context,
	logger *slog.Logger,
	config *bsctlconfig.Config,
	dataDirPath string,
) (bscalendar.DataSource, error) {
	switch config.Source {
	case bsctlconfig.SourceEmbedded:
		return bscalendar.Embedded(), nil
	case bsctlconfig.SourceFile:
		table, err := ReadFile(ctx, config.FilePath)
		if err != nil {
			return nil, err
		}
		logger.Debug(
			"using calendar file",
			"path", config.FilePath,
			"start_year", table.StartYear(),
			"end_year", table.EndYear(),
			"years", len(table.Years()),
		)
		return table, nil
	case bsctlconfig.SourceDownload:
		calendarFilePath := bsctlpath.CalendarFilePath(dataDirPath)
		table, err := ReadFile(ctx, calendarFilePath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				logger.Warn(
					"no downloaded calendar data, using embedded data, run \"bsctl data fetch\" to download",
					"path", calendarFilePath,
				)
				return bscalendar.Embedded(), nil
			}
			return nil, err
		}
		metadata, err := ReadMetadata(dataDirPath)
		if err != nil {
			logger.Warn(
				"could not read downloaded calendar metadata, run \"bsctl data fetch\" to refresh",
				"path", bsctlpath.MetadataFilePath(dataDirPath),
				"error", err,
			)
			metadata = &Metadata{}
		} else if metadata.StartYear != table.StartYear() || metadata.EndYear != table.EndYear() {
			logger.Warn(
				"downloaded calendar metadata does not match calendar data, run \"bsctl data fetch\" to refresh",
				"metadata_start_year", metadata.StartYear,
				"metadata_end_year", metadata.EndYear,
				"start_year", table.StartYear(),
				"end_year", table.EndYear(),
			)
		}
		logger.Debug(
			"using downloaded calendar data",
			"path", calendarFilePath,
			"url", metadata.URL,
			"version", metadata.Version,
			"downloaded_at", metadata.DownloadedAt,
			"start_year", table.StartYear(),
			"end_year", table.EndYear(),
			"years", len(table.Years()),
		)
		return table, nil
	default:
		return nil, fmt.Errorf("unknown calendar source %v", config.Source)
	}
}

// ReadFile reads and validates a reference data file.
//
// Concurrent calls for the same path share a single read.
func ReadFile(ctx context.Context, filePath string) (*bscalendar.Table, error) {
	resultC := readFileGroup.DoChan(filePath, func() (any, error) {
		return bscalendar.ReadFile(filePath)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-resultC:
		if result.Err != nil {
			return nil, result.Err
		}
		return result.Val.(*bscalendar.Table), nil
	}
}
