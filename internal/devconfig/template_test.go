package devconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/aerogrow/aerobuild/internal/device"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTemplate_Environmental(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteTemplate(dir, device.Environmental)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data", "config_template_environmental.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var tmpl Template
	require.NoError(t, json.Unmarshal(data, &tmpl))

	assert.Equal(t, "environmental", tmpl.Device.Type)
	assert.Equal(t, "AeroEnv Controller", tmpl.Device.Name)

	require.Len(t, tmpl.Sensors, 2)
	assert.Equal(t, "sht3x", tmpl.Sensors[0].Name)
	assert.Equal(t, "0x44", tmpl.Sensors[0].I2CAddress)
	assert.True(t, tmpl.Sensors[0].Enabled)
	assert.Equal(t, 36, tmpl.Sensors[1].Pin)

	require.Len(t, tmpl.Actuators, 2)
	assert.Equal(t, "spray", tmpl.Actuators[1].Name)
	assert.Equal(t, "VenturiNozzle", tmpl.Actuators[1].Type)
	assert.Equal(t, 5000, tmpl.Actuators[1].PulseWidthMS)
}

func TestWriteTemplate_Liquid(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteTemplate(dir, device.Liquid)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var tmpl Template
	require.NoError(t, json.Unmarshal(data, &tmpl))

	assert.Equal(t, "liquid", tmpl.Device.Type)
	require.Len(t, tmpl.Sensors, 2)
	assert.Equal(t, "ph_sensor", tmpl.Sensors[0].Name)
	assert.Equal(t, 39, tmpl.Sensors[1].Pin)
	require.Len(t, tmpl.Actuators, 2)
	assert.Equal(t, "PeristalticPump", tmpl.Actuators[0].Type)
}

func TestWriteTemplate_UnknownIsNoOp(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteTemplate(dir, device.Unknown)
	require.NoError(t, err)
	assert.Empty(t, path)

	// Nothing should have been created
	_, err = os.Stat(filepath.Join(dir, "data"))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteTemplate_DoesNotTouchOtherVariant(t *testing.T) {
	dir := t.TempDir()

	liquidPath, err := WriteTemplate(dir, device.Liquid)
	require.NoError(t, err)

	before, err := os.ReadFile(liquidPath)
	require.NoError(t, err)

	_, err = WriteTemplate(dir, device.Environmental)
	require.NoError(t, err)

	after, err := os.ReadFile(liquidPath)
	require.NoError(t, err)
	assert.Equal(t, before, after, "writing one variant's template must not modify another's")
}

func TestReadDeclaredType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DeviceConfigPath)

	err := os.WriteFile(path, []byte(`{"device_type": "liquid", "network": {}}`), 0o644)
	require.NoError(t, err)

	declared, err := ReadDeclaredType(path)
	require.NoError(t, err)
	assert.Equal(t, "liquid", declared)
}

func TestReadDeclaredType_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadDeclaredType(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte("{not json"), 0o644))

	_, err = ReadDeclaredType(badPath)
	assert.Error(t, err)
}
