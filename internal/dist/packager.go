// Package dist assembles the distributable package for a successfully
// compiled firmware binary: the binary itself, the resolved partition table,
// the variant's default configuration, and install instructions.
package dist

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aerogrow/aerobuild/internal/buildctx"
	"github.com/aerogrow/aerobuild/internal/devconfig"
	"github.com/aerogrow/aerobuild/internal/validate"
)

// Canonical file names inside a package directory
const (
	FirmwareName  = "firmware.bin"
	PartitionName = "partitions.csv"
	ConfigName    = "default_config.json"
	InstallName   = "INSTALL.md"
)

// Result describes what a packaging run produced
type Result struct {
	// Package directory, e.g. dist/liquid_release
	Dir string

	// File names placed in the directory
	Files []string

	// Size of the copied firmware binary in bytes
	BinarySize int64

	// Non-fatal problems (missing partition table or config template)
	Warnings []string
}

// Package builds dist/{variant}_{buildtype}/ from a compiled binary. The
// binary copy is the only fatal operation; a missing partition table or
// config template produces a warning and an incomplete but usable package.
// Re-running for the same variant and build type overwrites prior contents.
func Package(ctx *buildctx.Context, binaryPath string) (*Result, error) {
	variant := ctx.Variant()

	dir := filepath.Join(ctx.ProjectDir, "dist", fmt.Sprintf("%s_%s", variant, ctx.BuildType))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create distribution directory: %w", err)
	}

	result := &Result{Dir: dir}

	// Firmware binary: the package is meaningless without it
	info, err := os.Stat(binaryPath)
	if err != nil {
		return nil, fmt.Errorf("firmware binary not found: %w", err)
	}

	if err := copyFile(binaryPath, filepath.Join(dir, FirmwareName)); err != nil {
		return nil, fmt.Errorf("failed to copy firmware binary: %w", err)
	}

	result.BinarySize = info.Size()
	result.Files = append(result.Files, FirmwareName)

	// Partition table: variant-specific preferred, generic fallback
	if table, _ := validate.ResolvePartitionTable(ctx.ProjectDir, variant); table != "" {
		src := filepath.Join(ctx.ProjectDir, table)

		if err := copyFile(src, filepath.Join(dir, PartitionName)); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("failed to copy partition table: %v", err))
		} else {
			result.Files = append(result.Files, PartitionName)
		}
	} else {
		result.Warnings = append(result.Warnings, "no partition table found")
	}

	// Config template, if the pre-build step produced one
	template := filepath.Join(ctx.ProjectDir, devconfig.TemplatePath(variant))
	if _, err := os.Stat(template); err == nil {
		if err := copyFile(template, filepath.Join(dir, ConfigName)); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("failed to copy config template: %v", err))
		} else {
			result.Files = append(result.Files, ConfigName)
		}
	} else {
		result.Warnings = append(result.Warnings, fmt.Sprintf("no config template for %s variant", variant))
	}

	// Install instructions are generated, not copied
	installPath := filepath.Join(dir, InstallName)
	if err := os.WriteFile(installPath, []byte(InstallDoc(variant)), 0o644); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("failed to write install instructions: %v", err))
	} else {
		result.Files = append(result.Files, InstallName)
	}

	return result, nil
}
