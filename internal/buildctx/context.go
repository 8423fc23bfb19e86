package buildctx

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aerogrow/aerobuild/internal/device"
	"github.com/spf13/viper"
)

// Default configuration values
const (
	DefaultBuildType       = "debug"
	DefaultFirmwareVersion = "1.0.0"
	DefaultVerbose         = false
)

// Context holds everything a single build invocation needs to know about
// itself. It is assembled once by the Loader and passed by value into every
// pipeline component; nothing reads viper or the environment after this point.
type Context struct {
	// Preprocessor definitions from the build flags (NAME -> optional value)
	Defines map[string]string

	// Build type label (e.g., "debug", "release")
	BuildType string

	// Root directory of the firmware project being built
	ProjectDir string

	// Firmware version stamped into the generated artifacts
	FirmwareVersion string

	// Enable verbose output
	Verbose bool
}

func Load() (*Context, error) {
	ctx := &Context{
		Defines:         parseDefines(viper.GetStringSlice("defines")),
		BuildType:       viper.GetString("build_type"),
		ProjectDir:      viper.GetString("project_dir"),
		FirmwareVersion: viper.GetString("firmware_version"),
		Verbose:         viper.GetBool("verbose"),
	}

	// Apply defaults if not set
	if ctx.BuildType == "" {
		ctx.BuildType = DefaultBuildType
	}

	if ctx.FirmwareVersion == "" {
		ctx.FirmwareVersion = DefaultFirmwareVersion
	}

	if err := ctx.Validate(); err != nil {
		return nil, err
	}

	return ctx, nil
}

func (c *Context) Validate() error {
	if c.ProjectDir == "" {
		c.ProjectDir = "."
	}

	abs, err := filepath.Abs(c.ProjectDir)
	if err != nil {
		return fmt.Errorf("invalid project directory: %v", err)
	}

	c.ProjectDir = abs

	return nil
}

// Variant resolves the device variant from the definition set
func (c *Context) Variant() device.Variant {
	return device.ResolveVariant(c.Defines)
}

// DefineList returns the definitions as sorted NAME or NAME=VALUE strings,
// suitable for hashing and verbose output
func (c *Context) DefineList() []string {
	list := make([]string, 0, len(c.Defines))

	for name, value := range c.Defines {
		if value == "" {
			list = append(list, name)
		} else {
			list = append(list, name+"="+value)
		}
	}

	sort.Strings(list)

	return list
}

// parseDefines converts NAME or NAME=VALUE strings into a definition map
func parseDefines(raw []string) map[string]string {
	defines := make(map[string]string, len(raw))

	for _, d := range raw {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}

		name, value, _ := strings.Cut(d, "=")
		defines[name] = value
	}

	return defines
}
