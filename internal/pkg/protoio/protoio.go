// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package protoio provides functions for reading and writing proto messages as JSON files.
package protoio

import (
	"fmt"
	"os"
	"time"

	"github.com/bufdev/bsctl/internal/standard/xos"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// WriteMessageJSON atomically writes a single proto message as indented JSON to a file.
func WriteMessageJSON(filePath string, message proto.Message) error {
	data, err := MarshalMessageJSON(message)
	if err != nil {
		return err
	}
	return xos.WriteFileAtomic(filePath, data, 0o644)
}

// MarshalMessageJSON returns a single proto message as indented JSON, in the
// form WriteMessageJSON writes.
func MarshalMessageJSON(message proto.Message) ([]byte, error) {
	data, err := (protojson.MarshalOptions{UseProtoNames: true, Multiline: true}).Marshal(message)
	if err != nil {
		return nil, err
	}
	// Append a trailing newline for clean file formatting.
	return append(data, '\n'), nil
}

// ReadMessageJSON reads a single proto message from a JSON file.
//
// Unknown fields are discarded so that files written by newer versions can be read.
func ReadMessageJSON(filePath string, message proto.Message) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return (protojson.UnmarshalOptions{DiscardUnknown: true}).Unmarshal(data, message)
}

// NewTimestampValue returns a Value holding t in the canonical JSON form of
// google.protobuf.Timestamp (RFC 3339, UTC, "Z" suffix).
func NewTimestampValue(t time.Time) (*structpb.Value, error) {
	timestamp := timestamppb.New(t)
	if err := timestamp.CheckValid(); err != nil {
		return nil, err
	}
	data, err := protojson.Marshal(timestamp)
	if err != nil {
		return nil, err
	}
	value := &structpb.Value{}
	if err := protojson.Unmarshal(data, value); err != nil {
		return nil, err
	}
	return value, nil
}

// TimestampFromValue parses a Value written by NewTimestampValue.
func TimestampFromValue(value *structpb.Value) (time.Time, error) {
	if _, ok := value.GetKind().(*structpb.Value_StringValue); !ok {
		return time.Time{}, fmt.Errorf("expected a timestamp string, got %v", value)
	}
	data, err := protojson.Marshal(value)
	if err != nil {
		return time.Time{}, err
	}
	timestamp := &timestamppb.Timestamp{}
	if err := protojson.Unmarshal(data, timestamp); err != nil {
		return time.Time{}, err
	}
	return timestamp.AsTime(), nil
}
