package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aerogrow/aerobuild/internal/buildctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestLedger(t *testing.T) *Ledger {
	t.Helper()

	ledger, err := Open(filepath.Join(t.TempDir(), DefaultDir))
	require.NoError(t, err)
	t.Cleanup(func() { ledger.Close() })

	return ledger
}

func TestLedger_RecordRoundTrip(t *testing.T) {
	ledger := openTestLedger(t)

	rec := Record{
		Hash:            "abc123",
		Variant:         "liquid",
		BuildType:       "release",
		FirmwareVersion: "1.0.0",
		GitHash:         "deadbee",
		GitBranch:       "main",
		GitDirty:        true,
		Timestamp:       time.Now().UTC().Truncate(time.Second),
		BinarySize:      1048576,
		PackageDir:      "dist/liquid_release",
	}

	require.NoError(t, ledger.Record(rec))

	got, err := ledger.Get("abc123")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec, *got)
}

func TestLedger_GetMissing(t *testing.T) {
	ledger := openTestLedger(t)

	got, err := ledger.Get("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLedger_ListNewestFirst(t *testing.T) {
	ledger := openTestLedger(t)

	base := time.Now().UTC()
	for i, hash := range []string{"first", "second", "third"} {
		require.NoError(t, ledger.Record(Record{
			Hash:      hash,
			Variant:   "environmental",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	records, err := ledger.List()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "third", records[0].Hash)
	assert.Equal(t, "first", records[2].Hash)
}

func TestLedger_Clear(t *testing.T) {
	ledger := openTestLedger(t)

	require.NoError(t, ledger.Record(Record{Hash: "abc"}))
	require.NoError(t, ledger.Record(Record{Hash: "def"}))

	count, err := ledger.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, ledger.Clear())

	count, err = ledger.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestHashBuild(t *testing.T) {
	dir := t.TempDir()
	binary := filepath.Join(dir, "firmware.bin")
	require.NoError(t, os.WriteFile(binary, []byte("image-content"), 0o644))

	ctx := &buildctx.Context{
		Defines:         map[string]string{"DEVICE_TYPE_LIQUID": ""},
		BuildType:       "release",
		ProjectDir:      dir,
		FirmwareVersion: "1.0.0",
	}

	hash1, err := HashBuild(binary, ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, hash1)

	hash2, err := HashBuild(binary, ctx)
	require.NoError(t, err)
	assert.Equal(t, hash1, hash2, "hash should be stable for identical inputs")

	// Different binary content = different hash
	require.NoError(t, os.WriteFile(binary, []byte("other-content"), 0o644))

	hash3, err := HashBuild(binary, ctx)
	require.NoError(t, err)
	assert.NotEqual(t, hash1, hash3)

	// Different build type = different hash
	require.NoError(t, os.WriteFile(binary, []byte("image-content"), 0o644))
	ctx2 := *ctx
	ctx2.BuildType = "debug"

	hash4, err := HashBuild(binary, &ctx2)
	require.NoError(t, err)
	assert.NotEqual(t, hash1, hash4)
}

func TestHashBuild_MissingBinary(t *testing.T) {
	ctx := &buildctx.Context{BuildType: "debug", FirmwareVersion: "1.0.0"}

	_, err := HashBuild(filepath.Join(t.TempDir(), "missing.bin"), ctx)
	assert.Error(t, err)
}
