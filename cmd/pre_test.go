package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags clears flag state left behind by a previous execution so each
// test run parses from a clean slate
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}

		f.Changed = false
	}

	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)

	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// execute runs the root command with args against a fresh viper state
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), err
}

func TestPreCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "pre", "--project", dir, "--define", "DEVICE_TYPE_ENVIRONMENTAL", "--build-type", "release")
	require.NoError(t, err)

	assert.Contains(t, out, "✓ Generated build info for AeroEnv")
	assert.Contains(t, out, "✓ Created version file")

	for _, rel := range []string{
		"include/build_info.h",
		"data/version.json",
		"data/config_template_environmental.json",
	} {
		_, err := os.Stat(filepath.Join(dir, rel))
		assert.NoError(t, err, "expected artifact %s", rel)
	}
}

func TestPreCommand_UnknownVariant(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "pre", "--project", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "✓ Generated build info for Unknown")
	assert.NotContains(t, out, "✓ Generated config template")
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "validate", "--project", dir, "--define", "DEVICE_TYPE_LIQUID")
	require.NoError(t, err, "validation findings must not fail the command")

	assert.Contains(t, out, "WARNING: Missing required files:")
	assert.Contains(t, out, "✓ Project validation complete for liquid device")
}

func TestPostCommand(t *testing.T) {
	dir := t.TempDir()

	binary := filepath.Join(dir, "firmware.elf.bin")
	require.NoError(t, os.WriteFile(binary, []byte("\xe9image"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "partitions.csv"), []byte("nvs,"), 0o644))

	out, err := execute(t, "post", "--project", dir, "--define", "DEVICE_TYPE_LIQUID", "--build-type", "release", "--binary", binary)
	require.NoError(t, err)

	assert.Contains(t, out, "✓ Distribution package created")

	_, err = os.Stat(filepath.Join(dir, "dist", "liquid_release", "firmware.bin"))
	assert.NoError(t, err)
}

func TestPostCommand_MissingBinaryFails(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "post", "--project", dir, "--binary", filepath.Join(dir, "missing.bin"))
	assert.Error(t, err)
}

func TestHistoryCommand_Empty(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "history", "--project", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "No packaged builds recorded")
}

func TestHistoryCommand_AfterPost(t *testing.T) {
	dir := t.TempDir()

	binary := filepath.Join(dir, "firmware.elf.bin")
	require.NoError(t, os.WriteFile(binary, []byte("\xe9image"), 0o644))

	_, err := execute(t, "post", "--project", dir, "--define", "DEVICE_TYPE_ENVIRONMENTAL", "--binary", binary)
	require.NoError(t, err)

	out, err := execute(t, "history", "--project", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "environmental")

	out, err = execute(t, "history", "clear", "--project", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Build history cleared")

	out, err = execute(t, "history", "--project", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "No packaged builds recorded")
}
