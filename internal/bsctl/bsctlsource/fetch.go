// Copyright 2026 Peter Edge
//
// All rights reserved.

package bsctlsource

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/bufdev/bsctl/internal/bsctl/bsctlpath"
	"github.com/bufdev/bsctl/internal/pkg/bsreference"
	"github.com/bufdev/bsctl/internal/pkg/protoio"
	"github.com/bufdev/bsctl/internal/standard/xos"
	"google.golang.org/protobuf/types/known/structpb"
)

// Metadata records where and when reference data was downloaded.
type Metadata struct {
	// URL is the URL the data was downloaded from.
	URL string `json:"url"`
	// Version is the version field of the reference data.
	Version string `json:"version"`
	// StartYear is the first year of the supported range.
	StartYear int `json:"start_year"`
	// EndYear is the last year of the supported range.
	EndYear int `json:"end_year"`
	// DownloadedAt is when the data was downloaded.
	DownloadedAt time.Time `json:"downloaded_at"`
}

// Fetcher downloads reference data into the data directory.
type Fetcher interface {
	// Fetch downloads the reference data at url, validates it, and replaces
	// the cached copy. The cache is left untouched if any step fails.
	Fetch(ctx context.Context, url string) (*Metadata, error)
}

// FetcherOption is a functional option for configuring the Fetcher.
type FetcherOption func(*fetcher)

// FetcherWithNow sets the clock used to stamp downloads.
func FetcherWithNow(now func() time.Time) FetcherOption {
	return func(f *fetcher) {
		f.now = now
	}
}

// NewFetcher creates a new Fetcher that caches data under dataDirPath.
func NewFetcher(
	logger *slog.Logger,
	client bsreference.Client,
	dataDirPath string,
	options ...FetcherOption,
) Fetcher {
	f := &fetcher{
		logger:      logger,
		client:      client,
		dataDirPath: dataDirPath,
		now:         time.Now,
	}
	for _, option := range options {
		option(f)
	}
	return f
}

// ReadMetadata reads the metadata record of the downloaded reference data.
func ReadMetadata(dataDirPath string) (*Metadata, error) {
	message := &structpb.Struct{}
	if err := protoio.ReadMessageJSON(bsctlpath.MetadataFilePath(dataDirPath), message); err != nil {
		return nil, err
	}
	return metadataFromProto(message)
}

type fetcher struct {
	logger      *slog.Logger
	client      bsreference.Client
	dataDirPath string
	now         func() time.Time
}

func (f *fetcher) Fetch(ctx context.Context, url string) (*Metadata, error) {
	if url == "" {
		return nil, errors.New("no calendar URL configured")
	}
	download, err := f.client.GetReferenceData(ctx, url)
	if err != nil {
		return nil, err
	}
	metadata := &Metadata{
		URL:          download.URL,
		Version:      download.ReferenceData.Version,
		StartYear:    download.Table.StartYear(),
		EndYear:      download.Table.EndYear(),
		DownloadedAt: f.now().UTC(),
	}
	metadataMessage, err := metadataToProto(metadata)
	if err != nil {
		return nil, err
	}
	metadataData, err := protoio.MarshalMessageJSON(metadataMessage)
	if err != nil {
		return nil, err
	}
	calendarFilePath := bsctlpath.CalendarFilePath(f.dataDirPath)
	metadataFilePath := bsctlpath.MetadataFilePath(f.dataDirPath)
	calendarFile, err := xos.StageFile(calendarFilePath, download.Data, 0o644)
	if err != nil {
		return nil, fmt.Errorf("writing %s: %w", calendarFilePath, err)
	}
	previousMetadataData, hadMetadata, err := readFileIfExists(metadataFilePath)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("reading %s: %w", metadataFilePath, err), calendarFile.Abort())
	}
	// The calendar is renamed into place last, so a failed metadata write
	// leaves both files as they were.
	if err := xos.WriteFileAtomic(metadataFilePath, metadataData, 0o644); err != nil {
		return nil, errors.Join(fmt.Errorf("writing %s: %w", metadataFilePath, err), calendarFile.Abort())
	}
	if err := calendarFile.Commit(); err != nil {
		return nil, errors.Join(
			fmt.Errorf("writing %s: %w", calendarFilePath, err),
			restoreFile(metadataFilePath, previousMetadataData, hadMetadata),
		)
	}
	f.logger.Info(
		"reference data downloaded",
		"url", metadata.URL,
		"version", metadata.Version,
		"start_year", metadata.StartYear,
		"end_year", metadata.EndYear,
		"path", calendarFilePath,
	)
	return metadata, nil
}

func readFileIfExists(filePath string) ([]byte, bool, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func restoreFile(filePath string, data []byte, existed bool) error {
	if !existed {
		if err := os.Remove(filePath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}
	return xos.WriteFileAtomic(filePath, data, 0o644)
}

func metadataToProto(metadata *Metadata) (*structpb.Struct, error) {
	message, err := structpb.NewStruct(
		map[string]any{
			"url":        metadata.URL,
			"version":    metadata.Version,
			"start_year": metadata.StartYear,
			"end_year":   metadata.EndYear,
		},
	)
	if err != nil {
		return nil, err
	}
	downloadedAtValue, err := protoio.NewTimestampValue(metadata.DownloadedAt)
	if err != nil {
		return nil, err
	}
	message.Fields["downloaded_at"] = downloadedAtValue
	return message, nil
}

func metadataFromProto(message *structpb.Struct) (*Metadata, error) {
	fields := message.GetFields()
	downloadedAt, err := protoio.TimestampFromValue(fields["downloaded_at"])
	if err != nil {
		return nil, fmt.Errorf("invalid downloaded_at: %w", err)
	}
	return &Metadata{
		URL:          fields["url"].GetStringValue(),
		Version:      fields["version"].GetStringValue(),
		StartYear:    int(fields["start_year"].GetNumberValue()),
		EndYear:      int(fields["end_year"].GetNumberValue()),
		DownloadedAt: downloadedAt,
	}, nil
}
