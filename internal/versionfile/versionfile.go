// Package versionfile writes the version record the firmware reads at
// runtime from its data partition.
package versionfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aerogrow/aerobuild/internal/buildctx"
	"github.com/aerogrow/aerobuild/internal/gitinfo"
)

// RecordPath is where the record is written, relative to the project root
const RecordPath = "data/version.json"

// Record is the version document consumed by the firmware at runtime
type Record struct {
	FirmwareVersion string `json:"firmware_version"`
	BuildTime       string `json:"build_time"`
	DeviceType      string `json:"device_type"`
	BuildType       string `json:"build_type"`
	GitHash         string `json:"git_hash"`
	GitBranch       string `json:"git_branch"`
}

// NewRecord builds the version record for a build invocation
func NewRecord(ctx *buildctx.Context, rev gitinfo.RevisionInfo, now time.Time) Record {
	return Record{
		FirmwareVersion: ctx.FirmwareVersion,
		BuildTime:       now.Format(time.RFC3339),
		DeviceType:      ctx.Variant().String(),
		BuildType:       ctx.BuildType,
		GitHash:         rev.Hash,
		GitBranch:       rev.Branch,
	}
}

// Write serializes the record to data/version.json, overwriting any previous
// build's record. A write failure halts the build: the firmware depends on
// this file existing at runtime.
func Write(ctx *buildctx.Context, rev gitinfo.RevisionInfo, now time.Time) (string, error) {
	record := NewRecord(ctx, rev, now)

	path := filepath.Join(ctx.ProjectDir, RecordPath)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal version record: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write version record: %w", err)
	}

	return path, nil
}
