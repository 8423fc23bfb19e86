// Package buildinfo generates the build_info.h metadata header consumed by
// the firmware at compile time.
package buildinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aerogrow/aerobuild/internal/buildctx"
	"github.com/aerogrow/aerobuild/internal/device"
	"github.com/aerogrow/aerobuild/internal/gitinfo"
)

// HeaderPath is where the header is written, relative to the project root
const HeaderPath = "include/build_info.h"

// Fixed values compiled into every header
const (
	buildPlatform  = "PlatformIO"
	configVersion  = 1
	configFilePath = "/config.json"
)

// Render produces the header content for a build. Pure function of its
// inputs so regeneration with the same context, revision, and clock is
// byte-for-byte identical.
func Render(ctx *buildctx.Context, rev gitinfo.RevisionInfo, now time.Time) string {
	variant := ctx.Variant()
	profile := device.Lookup(variant)

	var b strings.Builder

	b.WriteString("#ifndef BUILD_INFO_H\n")
	b.WriteString("#define BUILD_INFO_H\n\n")

	b.WriteString("// Build information\n")
	fmt.Fprintf(&b, "#define BUILD_TIME %q\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "#define BUILD_TIMESTAMP %d\n", now.Unix())
	fmt.Fprintf(&b, "#define BUILD_GIT_HASH %q\n", rev.DecoratedHash())
	fmt.Fprintf(&b, "#define BUILD_GIT_BRANCH %q\n", rev.Branch)
	fmt.Fprintf(&b, "#define BUILD_GIT_DIRTY %d\n\n", boolFlag(rev.Dirty))

	b.WriteString("// Firmware information\n")
	fmt.Fprintf(&b, "#define FIRMWARE_VERSION %q\n", ctx.FirmwareVersion)
	fmt.Fprintf(&b, "#define FIRMWARE_BUILD_TYPE %q\n\n", strings.ToUpper(ctx.BuildType))

	b.WriteString("// Device information\n")
	fmt.Fprintf(&b, "#define DEVICE_TYPE %q\n", variant)
	fmt.Fprintf(&b, "#define DEVICE_NAME %q\n", profile.Name)
	fmt.Fprintf(&b, "#define DEVICE_FULL_NAME %q\n", profile.FullName)

	// Unknown variant carries no feature flags or capacity limits
	if len(profile.Features) > 0 {
		fmt.Fprintf(&b, "\n// %s device features\n", profile.Name)

		for _, feature := range profile.Features {
			fmt.Fprintf(&b, "#define %s 1\n", feature)
		}

		fmt.Fprintf(&b, "#define MAX_SENSORS %d\n", profile.MaxSensors)
		fmt.Fprintf(&b, "#define MAX_ACTUATORS %d\n", profile.MaxActuators)
	}

	b.WriteString("\n// Build environment\n")
	fmt.Fprintf(&b, "#define BUILD_PLATFORM %q\n", buildPlatform)
	b.WriteString("#define BUILD_COMPILER_VERSION __VERSION__\n\n")

	b.WriteString("// Configuration\n")
	fmt.Fprintf(&b, "#define CONFIG_VERSION %d\n", configVersion)
	fmt.Fprintf(&b, "#define CONFIG_FILE_PATH %q\n\n", configFilePath)

	b.WriteString("#endif // BUILD_INFO_H\n")

	return b.String()
}

// Generate writes the header into the project's include directory,
// overwriting any previous build's header. A write failure is returned to
// the caller and halts the build: the firmware cannot compile without this
// artifact.
func Generate(ctx *buildctx.Context, rev gitinfo.RevisionInfo, now time.Time) (string, error) {
	path := filepath.Join(ctx.ProjectDir, HeaderPath)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create include directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(Render(ctx, rev, now)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write build info header: %w", err)
	}

	return path, nil
}

func boolFlag(b bool) int {
	if b {
		return 1
	}

	return 0
}
