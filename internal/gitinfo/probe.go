// Package gitinfo provides a best-effort probe of the project's git state.
//
// The probe is strictly advisory: a missing git binary, a directory that is
// not a repository, or any non-zero exit all degrade to sentinel values
// rather than an error. Build metadata generation must never fail because
// revision information is unavailable.
package gitinfo

import (
	"os/exec"
	"strings"
)

// Sentinel is the value reported for hash and branch when git is unavailable
const Sentinel = "unknown"

// RevisionInfo describes the working tree at build time
type RevisionInfo struct {
	// Short commit hash, or "unknown"
	Hash string

	// Current branch name, or "unknown"
	Branch string

	// Dirty is true when the working tree has uncommitted changes
	Dirty bool
}

// runGit executes git and returns its stdout. Replaced in tests.
var runGit = func(dir string, args ...string) ([]byte, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir

	return cmd.Output()
}

// Probe reads the revision state of the repository at dir. It never returns
// an error; every failure degrades to sentinel values.
func Probe(dir string) RevisionInfo {
	info := RevisionInfo{
		Hash:   Sentinel,
		Branch: Sentinel,
	}

	out, err := runGit(dir, "rev-parse", "--short", "HEAD")
	if err != nil {
		return info
	}

	info.Hash = strings.TrimSpace(string(out))

	if out, err := runGit(dir, "rev-parse", "--abbrev-ref", "HEAD"); err == nil {
		info.Branch = strings.TrimSpace(string(out))
	}

	// diff-index exits non-zero when the tree differs from HEAD
	if _, err := runGit(dir, "diff-index", "--quiet", "HEAD"); err != nil {
		info.Dirty = true
	}

	return info
}

// DecoratedHash returns the short hash with a "*" suffix when the working
// tree is dirty, matching the convention in the build info header
func (r RevisionInfo) DecoratedHash() string {
	if r.Dirty {
		return r.Hash + "*"
	}

	return r.Hash
}
