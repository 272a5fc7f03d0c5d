// Copyright 2026 Peter Edge
//
// All rights reserved.

package bsctlsource

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bufdev/bsctl/internal/bsctl/bsctlconfig"
	"github.com/bufdev/bsctl/internal/bsctl/bsctlpath"
	"github.com/bufdev/bsctl/internal/pkg/bscalendar"
	"github.com/bufdev/bsctl/internal/pkg/bsdate"
	"github.com/bufdev/bsctl/internal/pkg/bslocale"
	"github.com/bufdev/bsctl/internal/pkg/bsreference"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewEmbedded(t *testing.T) {
	t.Parallel()
	dataSource, err := New(context.Background(), testLogger(), bsctlconfig.DefaultConfig(), t.TempDir())
	require.NoError(t, err)
	require.Same(t, bscalendar.Embedded(), dataSource)
}

func TestNewFile(t *testing.T) {
	t.Parallel()
	filePath := filepath.Join(t.TempDir(), "calendar.json")
	require.NoError(t, os.WriteFile(filePath, bscalendar.EmbeddedReferenceData(), 0o600))
	config := &bsctlconfig.Config{
		Locale:   bslocale.LocaleEnglish,
		Source:   bsctlconfig.SourceFile,
		FilePath: filePath,
	}
	dataSource, err := New(context.Background(), testLogger(), config, t.TempDir())
	require.NoError(t, err)
	require.Equal(t, 2000, dataSource.StartYear())
	require.Equal(t, 2090, dataSource.EndYear())

	config.FilePath = filepath.Join(t.TempDir(), "missing.json")
	_, err = New(context.Background(), testLogger(), config, t.TempDir())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewDownloadNotFetched(t *testing.T) {
	t.Parallel()
	config := &bsctlconfig.Config{
		Locale: bslocale.LocaleEnglish,
		Source: bsctlconfig.SourceDownload,
	}
	dataSource, err := New(context.Background(), testLogger(), config, t.TempDir())
	require.NoError(t, err)
	require.Same(t, bscalendar.Embedded(), dataSource)
}

func TestReadFileConcurrent(t *testing.T) {
	t.Parallel()
	filePath := filepath.Join(t.TempDir(), "calendar.json")
	require.NoError(t, os.WriteFile(filePath, bscalendar.EmbeddedReferenceData(), 0o600))
	var wg sync.WaitGroup
	tables := make([]*bscalendar.Table, 8)
	errs := make([]error, 8)
	for i := range tables {
		wg.Go(func() {
			tables[i], errs[i] = ReadFile(context.Background(), filePath)
		})
	}
	wg.Wait()
	for i := range tables {
		require.NoError(t, errs[i])
		require.Equal(t, 2090, tables[i].EndYear())
	}
}

func TestFetch(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(bscalendar.EmbeddedReferenceData())
	}))
	t.Cleanup(server.Close)
	now := time.Date(2026, time.October, 19, 6, 0, 0, 0, time.UTC)
	dataDirPath := t.TempDir()
	fetcher := NewFetcher(
		testLogger(),
		bsreference.NewClient(testLogger(), bsreference.ClientWithHTTPClient(server.Client())),
		dataDirPath,
		FetcherWithNow(func() time.Time { return now }),
	)
	want := &Metadata{
		URL:          server.URL,
		Version:      "2025.1",
		StartYear:    2000,
		EndYear:      2090,
		DownloadedAt: now,
	}
	metadata, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	if diff := cmp.Diff(want, metadata); diff != "" {
		t.Errorf("metadata mismatch (-want +got):\n%s", diff)
	}
	readMetadata, err := ReadMetadata(dataDirPath)
	require.NoError(t, err)
	if diff := cmp.Diff(want, readMetadata); diff != "" {
		t.Errorf("read metadata mismatch (-want +got):\n%s", diff)
	}
	data, err := os.ReadFile(bsctlpath.CalendarFilePath(dataDirPath))
	require.NoError(t, err)
	require.Equal(t, bscalendar.EmbeddedReferenceData(), data)

	// The download source now reads the fetched data.
	config := &bsctlconfig.Config{
		Locale: bslocale.LocaleEnglish,
		Source: bsctlconfig.SourceDownload,
	}
	dataSource, err := New(context.Background(), testLogger(), config, dataDirPath)
	require.NoError(t, err)
	require.NotSame(t, bscalendar.Embedded(), dataSource)
	require.Equal(t, 2090, dataSource.EndYear())
}

func TestNewDownloadLogsMetadata(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(bscalendar.EmbeddedReferenceData())
	}))
	t.Cleanup(server.Close)
	dataDirPath := t.TempDir()
	fetcher := NewFetcher(
		testLogger(),
		bsreference.NewClient(testLogger(), bsreference.ClientWithHTTPClient(server.Client())),
		dataDirPath,
	)
	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	config := &bsctlconfig.Config{
		Locale: bslocale.LocaleEnglish,
		Source: bsctlconfig.SourceDownload,
	}

	var buffer bytes.Buffer
	_, err = New(context.Background(), newBufferLogger(&buffer), config, dataDirPath)
	require.NoError(t, err)
	require.Contains(t, buffer.String(), `"version":"2025.1"`)
	require.Contains(t, buffer.String(), `"url":"`+server.URL+`"`)
	require.NotContains(t, buffer.String(), `"level":"WARN"`)

	// Calendar data without its metadata record is still used, with a warning.
	require.NoError(t, os.Remove(bsctlpath.MetadataFilePath(dataDirPath)))
	buffer.Reset()
	dataSource, err := New(context.Background(), newBufferLogger(&buffer), config, dataDirPath)
	require.NoError(t, err)
	require.Equal(t, 2090, dataSource.EndYear())
	require.Contains(t, buffer.String(), `"level":"WARN"`)
	require.Contains(t, buffer.String(), "could not read downloaded calendar metadata")
}

func TestFetchInvalidKeepsCache(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"version":"broken"}`))
	}))
	t.Cleanup(server.Close)
	dataDirPath := t.TempDir()
	fetcher := NewFetcher(
		testLogger(),
		bsreference.NewClient(testLogger(), bsreference.ClientWithHTTPClient(server.Client())),
		dataDirPath,
	)
	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.Error(t, err)
	_, err = os.Stat(bsctlpath.CalendarFilePath(dataDirPath))
	require.ErrorIs(t, err, os.ErrNotExist)
	_, err = fetcher.Fetch(context.Background(), "")
	require.Error(t, err)
}

func TestFetchMetadataWriteFailsKeepsCalendar(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(bscalendar.EmbeddedReferenceData())
	}))
	t.Cleanup(server.Close)
	dataDirPath := t.TempDir()
	calendarFilePath := bsctlpath.CalendarFilePath(dataDirPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(calendarFilePath), 0o755))
	previousData := []byte(`{"version":"previous"}`)
	require.NoError(t, os.WriteFile(calendarFilePath, previousData, 0o644))
	// A non-empty directory at the metadata path cannot be replaced.
	require.NoError(t, os.MkdirAll(filepath.Join(bsctlpath.MetadataFilePath(dataDirPath), "child"), 0o755))

	fetcher := NewFetcher(
		testLogger(),
		bsreference.NewClient(testLogger(), bsreference.ClientWithHTTPClient(server.Client())),
		dataDirPath,
	)
	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.Error(t, err)
	data, err := os.ReadFile(calendarFilePath)
	require.NoError(t, err)
	require.Equal(t, previousData, data)
	entries, err := os.ReadDir(filepath.Dir(calendarFilePath))
	require.NoError(t, err)
	entryNames := make([]string, 0, len(entries))
	for _, entry := range entries {
		entryNames = append(entryNames, entry.Name())
	}
	require.ElementsMatch(t, []string{"calendar.json", "metadata.json"}, entryNames)
}

func TestVerify(t *testing.T) {
	t.Parallel()
	dataSource := bscalendar.Embedded()
	converter, err := bsdate.NewConverter(dataSource)
	require.NoError(t, err)
	var wantDays int
	for _, year := range converter.AvailableYears() {
		yearLength, err := converter.YearLength(year)
		require.NoError(t, err)
		wantDays += yearLength
	}
	result, err := Verify(context.Background(), dataSource)
	require.NoError(t, err)
	require.Equal(
		t,
		&VerifyResult{
			StartYear: 2000,
			EndYear:   2090,
			Years:     91,
			Days:      wantDays,
		},
		result,
	)
}

func TestVerifyGap(t *testing.T) {
	t.Parallel()
	years := make(map[int][bscalendar.MonthsPerYear]int)
	embedded := bscalendar.Embedded()
	for year := 2000; year <= 2005; year++ {
		if year == 2003 {
			continue
		}
		monthLengths, ok := embedded.YearData(year)
		require.True(t, ok)
		years[year] = monthLengths
	}
	table, err := bscalendar.NewTable(2000, 2005, years)
	require.NoError(t, err)
	_, err = Verify(context.Background(), table)
	require.ErrorIs(t, err, bsdate.ErrUnknownYear)
}

func newBufferLogger(buffer *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buffer, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
