// Copyright 2026 Peter Edge
//
// All rights reserved.

package bscalendar

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"
)

//go:embed data/calendar.json
var embeddedReferenceData []byte

// embeddedTable parses the embedded reference data exactly once.
var embeddedTable = sync.OnceValues(func() (*Table, error) {
	referenceData, err := ParseReferenceData(embeddedReferenceData)
	if err != nil {
		return nil, err
	}
	return referenceData.Table()
})

// referenceDataValidator validates the structure of decoded reference data.
var referenceDataValidator = validator.New()

// ReferenceData is the JSON reference data format for Bikram Sambat month lengths.
//
//	{
//	  "version": "2025.1",
//	  "supportedRange": { "start": 2000, "end": 2090 },
//	  "referencePoint": { "bsYear": 2000, "bsMonth": 1, "bsDay": 1, "adYear": 1943, "adMonth": 4, "adDay": 14 },
//	  "years": { "2000": [30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31], ... }
//	}
type ReferenceData struct {
	// Version is the version of the reference data.
	Version string `json:"version" validate:"required"`
	// SupportedRange is the inclusive range of years the data answers for.
	SupportedRange SupportedRange `json:"supportedRange"`
	// ReferencePoint is the epoch anchor the data is expressed against.
	ReferencePoint ReferencePoint `json:"referencePoint"`
	// Years maps a year to its 12 month lengths, Baisakh first.
	Years map[string][]int `json:"years" validate:"required,min=1,dive,keys,numeric,endkeys,len=12,dive,min=29,max=32"`
}

// SupportedRange is an inclusive range of years.
type SupportedRange struct {
	Start int `json:"start" validate:"required"`
	End   int `json:"end" validate:"required,gtefield=Start"`
}

// Embedded returns the reference table compiled into the binary.
func Embedded() *Table {
	table, err := embeddedTable()
	if err != nil {
		// The embedded data is covered by tests, this is a build defect.
		panic(fmt.Sprintf("bscalendar: invalid embedded reference data: %v", err))
	}
	return table
}

// EmbeddedReferenceData returns a copy of the raw embedded reference data.
func EmbeddedReferenceData() []byte {
	return bytes.Clone(embeddedReferenceData)
}

// ParseReferenceData decodes and validates reference data.
//
// Unknown fields are rejected.
func ParseReferenceData(data []byte) (*ReferenceData, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	var referenceData ReferenceData
	if err := decoder.Decode(&referenceData); err != nil {
		return nil, fmt.Errorf("could not unmarshal reference data as JSON: %w", err)
	}
	if err := referenceDataValidator.Struct(&referenceData); err != nil {
		return nil, fmt.Errorf("invalid reference data: %w", err)
	}
	return &referenceData, nil
}

// ReadFile reads, validates and converts a reference data file into a Table.
func ReadFile(filePath string) (*Table, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading reference data: %w", err)
	}
	referenceData, err := ParseReferenceData(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filePath, err)
	}
	table, err := referenceData.Table()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filePath, err)
	}
	return table, nil
}

// Table converts the reference data into a validated Table.
func (r *ReferenceData) Table() (*Table, error) {
	if r.ReferencePoint != Anchor() {
		return nil, errors.New("reference point must be BS 2000-01-01 = AD 1943-04-14")
	}
	years := make(map[int][MonthsPerYear]int, len(r.Years))
	for yearString, monthLengths := range r.Years {
		year, err := strconv.Atoi(yearString)
		if err != nil {
			return nil, fmt.Errorf("invalid year %q: %w", yearString, err)
		}
		if len(monthLengths) != MonthsPerYear {
			return nil, fmt.Errorf("year %d has %d months, must have %d", year, len(monthLengths), MonthsPerYear)
		}
		years[year] = [MonthsPerYear]int(monthLengths)
	}
	return NewTable(r.SupportedRange.Start, r.SupportedRange.End, years)
}
