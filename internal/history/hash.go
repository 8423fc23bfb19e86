package history

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/aerogrow/aerobuild/internal/buildctx"
)

// HashBuild creates a unique hash for a packaged build
// The hash is based on:
// - Firmware binary content
// - Resolved variant
// - Build type label
// - Firmware version
func HashBuild(binaryPath string, ctx *buildctx.Context) (string, error) {
	h := sha256.New()

	f, err := os.Open(binaryPath)
	if err != nil {
		return "", fmt.Errorf("failed to open firmware binary: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash firmware binary: %w", err)
	}

	h.Write([]byte(ctx.Variant()))
	h.Write([]byte(ctx.BuildType))
	h.Write([]byte(ctx.FirmwareVersion))

	return hex.EncodeToString(h.Sum(nil)), nil
}
