// Package validate checks that the firmware project has every file the
// selected variant's build needs. It is observability only: findings are
// reported, never returned as errors, and have no authority to stop a build.
package validate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aerogrow/aerobuild/internal/buildctx"
	"github.com/aerogrow/aerobuild/internal/devconfig"
	"github.com/aerogrow/aerobuild/internal/device"
)

// requiredCoreFiles must exist for every variant
var requiredCoreFiles = []string{
	"src/main.cpp",
	"src/core/EventBus.cpp",
	"src/core/Config.cpp",
	"src/core/BaseClasses.h",
	"src/core/Managers.cpp",
}

// requiredVariantFiles are checked in addition to the core set. Unknown has
// no additional requirements.
var requiredVariantFiles = map[device.Variant][]string{
	device.Environmental: {
		"src/device/EnvironmentalDevice.cpp",
		"src/device/sensors/SHT3xSensor.cpp",
		"src/device/actuators/RelayActuator.cpp",
	},
	device.Liquid: {
		"src/device/LiquidDevice.cpp",
		"src/device/sensors/PHSensor.cpp",
		"src/device/actuators/PeristalticPump.cpp",
	},
}

// Run inspects the project tree for the resolved variant and produces a
// Report. It never returns an error: missing files, unreadable configuration,
// and I/O problems are all captured as findings.
func Run(ctx *buildctx.Context) *Report {
	variant := ctx.Variant()

	report := &Report{Variant: variant}

	for _, rel := range requiredCoreFiles {
		if !fileExists(filepath.Join(ctx.ProjectDir, rel)) {
			report.MissingFiles = append(report.MissingFiles, rel)
		}
	}

	for _, rel := range requiredVariantFiles[variant] {
		if !fileExists(filepath.Join(ctx.ProjectDir, rel)) {
			report.MissingFiles = append(report.MissingFiles, rel)
		}
	}

	report.PartitionTable, report.PartitionGeneric = ResolvePartitionTable(ctx.ProjectDir, variant)

	checkDeviceConfig(ctx, report)

	return report
}

// checkDeviceConfig compares the installed configuration's declared type to
// the resolved variant
func checkDeviceConfig(ctx *buildctx.Context, report *Report) {
	path := filepath.Join(ctx.ProjectDir, devconfig.DeviceConfigPath)

	if !fileExists(path) {
		return
	}

	report.ConfigFound = true

	declared, err := devconfig.ReadDeclaredType(path)
	if err != nil {
		report.ConfigError = err.Error()
		return
	}

	report.ConfigDeclaredType = declared
	report.ConfigMatches = declared == report.Variant.String()
}

// ResolvePartitionTable finds the partition table for a variant, preferring
// the variant-qualified file over the generic one. The returned path is
// relative to the project root and empty when neither exists; the bool
// reports whether the generic fallback was the one resolved.
func ResolvePartitionTable(projectDir string, v device.Variant) (string, bool) {
	specific := fmt.Sprintf("partitions_%s.csv", v)
	if fileExists(filepath.Join(projectDir, specific)) {
		return specific, false
	}

	if fileExists(filepath.Join(projectDir, "partitions.csv")) {
		return "partitions.csv", true
	}

	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
