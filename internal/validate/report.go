package validate

import (
	"fmt"
	"io"

	"github.com/aerogrow/aerobuild/internal/device"
)

// Report holds the advisory findings from one validation pass
type Report struct {
	// Variant the project was validated against
	Variant device.Variant

	// Required files that do not exist, relative to the project root
	MissingFiles []string

	// Resolved partition table path, empty when none was found
	PartitionTable string

	// PartitionGeneric is true when the generic table was the fallback
	PartitionGeneric bool

	// ConfigFound reports whether device_config.json exists
	ConfigFound bool

	// Declared device type read from the configuration, if parsable
	ConfigDeclaredType string

	// ConfigMatches is true when the declared type equals the variant
	ConfigMatches bool

	// ConfigError holds a read/parse problem, captured as a finding
	ConfigError string
}

// Clean reports whether validation produced no findings at all
func (r *Report) Clean() bool {
	return len(r.MissingFiles) == 0 &&
		r.PartitionTable != "" &&
		r.ConfigError == "" &&
		(!r.ConfigFound || r.ConfigMatches)
}

// PrintSummary writes the human-readable validation summary
func (r *Report) PrintSummary(w io.Writer) {
	if len(r.MissingFiles) > 0 {
		fmt.Fprintln(w, "WARNING: Missing required files:")

		for _, path := range r.MissingFiles {
			fmt.Fprintf(w, "  - %s\n", path)
		}
	} else {
		fmt.Fprintln(w, "✓ All required source files found")
	}

	switch {
	case r.PartitionTable == "":
		fmt.Fprintln(w, "WARNING: No partition table found")
	case r.PartitionGeneric:
		fmt.Fprintln(w, "✓ Generic partition table found")
	default:
		fmt.Fprintf(w, "✓ Device-specific partition table found: %s\n", r.PartitionTable)
	}

	switch {
	case !r.ConfigFound:
		// No installed config is not a finding; the firmware creates one on first boot
	case r.ConfigError != "":
		fmt.Fprintf(w, "WARNING: Could not validate device config: %s\n", r.ConfigError)
	case r.ConfigMatches:
		fmt.Fprintln(w, "✓ Device configuration matches build target")
	default:
		fmt.Fprintf(w, "WARNING: Device config type mismatch: %s != %s\n", r.ConfigDeclaredType, r.Variant)
	}

	fmt.Fprintf(w, "✓ Project validation complete for %s device\n", r.Variant)
}
