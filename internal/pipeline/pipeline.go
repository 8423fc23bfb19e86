// Package pipeline sequences the build metadata steps around the host
// tool's compile. The host adapter calls Pre before compilation and Post
// after a binary exists; everything in between belongs to the host.
//
// Steps split into two tiers: writing the build info header and the version
// record (and copying the packaged binary) are fatal, because later stages
// depend on those artifacts existing. Everything else is advisory and only
// produces warnings.
package pipeline

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aerogrow/aerobuild/internal/buildctx"
	"github.com/aerogrow/aerobuild/internal/buildinfo"
	"github.com/aerogrow/aerobuild/internal/devconfig"
	"github.com/aerogrow/aerobuild/internal/device"
	"github.com/aerogrow/aerobuild/internal/dist"
	"github.com/aerogrow/aerobuild/internal/gitinfo"
	"github.com/aerogrow/aerobuild/internal/history"
	"github.com/aerogrow/aerobuild/internal/validate"
	"github.com/aerogrow/aerobuild/internal/versionfile"
)

// Pipeline runs the pre- and post-compilation steps for one build context
type Pipeline struct {
	ctx *buildctx.Context
	out io.Writer

	// Now and Probe are replaceable in tests
	Now   func() time.Time
	Probe func(dir string) gitinfo.RevisionInfo
}

// New creates a pipeline for a build context, writing progress to out
func New(ctx *buildctx.Context, out io.Writer) *Pipeline {
	return &Pipeline{
		ctx:   ctx,
		out:   out,
		Now:   time.Now,
		Probe: gitinfo.Probe,
	}
}

// Pre runs the pre-compilation steps in order: build info header, project
// validation, version record, config template. The git probe runs once and
// the same revision and clock feed every artifact, so the header and the
// version record always agree.
func (p *Pipeline) Pre() error {
	rev := p.Probe(p.ctx.ProjectDir)
	now := p.Now()
	profile := device.Lookup(p.ctx.Variant())

	if p.ctx.Verbose {
		p.printContext(rev)
	}

	if _, err := buildinfo.Generate(p.ctx, rev, now); err != nil {
		return err
	}

	fmt.Fprintf(p.out, "✓ Generated build info for %s: %s (%s:%s)\n",
		profile.Name, now.Format("2006-01-02 15:04:05"), rev.Branch, rev.Hash)

	report := validate.Run(p.ctx)
	report.PrintSummary(p.out)

	if _, err := versionfile.Write(p.ctx, rev, now); err != nil {
		return err
	}

	fmt.Fprintf(p.out, "✓ Created version file: %s\n", versionfile.RecordPath)

	templatePath, err := devconfig.WriteTemplate(p.ctx.ProjectDir, p.ctx.Variant())
	if err != nil {
		// Advisory: the firmware falls back to built-in defaults
		fmt.Fprintf(p.out, "Warning: Could not write config template: %v\n", err)
	} else if templatePath != "" {
		fmt.Fprintf(p.out, "✓ Generated config template: %s\n", devconfig.TemplatePath(p.ctx.Variant()))
	}

	return nil
}

// Post packages a compiled binary and records the build in the history
// ledger. Only the binary copy is fatal; ledger failures are warnings.
func (p *Pipeline) Post(binaryPath string) (*dist.Result, error) {
	result, err := dist.Package(p.ctx, binaryPath)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(p.out, "✓ Firmware copied: %s (%d bytes)\n", dist.FirmwareName, result.BinarySize)

	for _, warning := range result.Warnings {
		fmt.Fprintf(p.out, "Warning: %s\n", warning)
	}

	fmt.Fprintf(p.out, "✓ Distribution package created: %s/\n", result.Dir)

	p.recordBuild(binaryPath, result)

	return result, nil
}

// recordBuild appends the packaged build to the ledger, best effort
func (p *Pipeline) recordBuild(binaryPath string, result *dist.Result) {
	hash, err := history.HashBuild(binaryPath, p.ctx)
	if err != nil {
		fmt.Fprintf(p.out, "Warning: Failed to hash build for history: %v\n", err)
		return
	}

	ledger, err := history.Open(p.ledgerDir())
	if err != nil {
		fmt.Fprintf(p.out, "Warning: Failed to open build history: %v\n", err)
		return
	}
	defer ledger.Close()

	rev := p.Probe(p.ctx.ProjectDir)

	err = ledger.Record(history.Record{
		Hash:            hash,
		Variant:         p.ctx.Variant().String(),
		BuildType:       p.ctx.BuildType,
		FirmwareVersion: p.ctx.FirmwareVersion,
		GitHash:         rev.Hash,
		GitBranch:       rev.Branch,
		GitDirty:        rev.Dirty,
		Timestamp:       p.Now(),
		BinarySize:      result.BinarySize,
		PackageDir:      result.Dir,
	})
	if err != nil {
		fmt.Fprintf(p.out, "Warning: Failed to record build history: %v\n", err)
	}
}

func (p *Pipeline) ledgerDir() string {
	return filepath.Join(p.ctx.ProjectDir, history.DefaultDir)
}

// printContext dumps the resolved build context in verbose mode
func (p *Pipeline) printContext(rev gitinfo.RevisionInfo) {
	fmt.Fprintf(p.out, "Project: %s\nVariant: %s\nBuild type: %s\nFirmware version: %s\nDefines: %s\nRevision: %s (%s)\n",
		p.ctx.ProjectDir, p.ctx.Variant(), p.ctx.BuildType, p.ctx.FirmwareVersion,
		strings.Join(p.ctx.DefineList(), " "), rev.DecoratedHash(), rev.Branch)
}
