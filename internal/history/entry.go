package history

import "time"

// Record captures one packaged build
type Record struct {
	// Hash is the unique identifier for this record
	// Computed from: binary content + variant + build type + firmware version
	Hash string `json:"hash"`

	// Variant the firmware was built for
	Variant string `json:"variant"`

	// BuildType label (e.g., "debug", "release")
	BuildType string `json:"build_type"`

	// FirmwareVersion stamped into the artifacts
	FirmwareVersion string `json:"firmware_version"`

	// Git state at build time
	GitHash   string `json:"git_hash"`
	GitBranch string `json:"git_branch"`
	GitDirty  bool   `json:"git_dirty"`

	// Timestamp when the package was created
	Timestamp time.Time `json:"timestamp"`

	// BinarySize of the packaged firmware in bytes
	BinarySize int64 `json:"binary_size"`

	// PackageDir the distribution was written to
	PackageDir string `json:"package_dir"`
}
