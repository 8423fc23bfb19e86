// Package devconfig holds the default device configuration templates shipped
// with each firmware variant and the helpers for reading an installed
// device's configuration document.
package devconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aerogrow/aerobuild/internal/device"
)

// DeviceConfigPath is the installed configuration checked by the validator,
// relative to the project root
const DeviceConfigPath = "device_config.json"

// DeviceInfo is the device section of a configuration document
type DeviceInfo struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Descriptor describes one sensor or actuator in a configuration document.
// Addressing is either a GPIO pin or an I2C bus address, never both.
type Descriptor struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	I2CAddress   string `json:"i2c_address,omitempty"`
	Pin          int    `json:"pin,omitempty"`
	Enabled      bool   `json:"enabled"`
	PulseWidthMS int    `json:"pulse_width_ms,omitempty"`
}

// Template is a complete default configuration document for one variant
type Template struct {
	Device    DeviceInfo   `json:"device"`
	Sensors   []Descriptor `json:"sensors"`
	Actuators []Descriptor `json:"actuators"`
}

// templates holds the per-variant defaults. Unknown has no template.
var templates = map[device.Variant]Template{
	device.Environmental: {
		Device: DeviceInfo{
			Type:    "environmental",
			Name:    "AeroEnv Controller",
			Version: "1.0.0",
		},
		Sensors: []Descriptor{
			{Name: "sht3x", Type: "SHT3x", I2CAddress: "0x44", Enabled: true},
			{Name: "pressure", Type: "AnalogPressure", Pin: 36, Enabled: true},
		},
		Actuators: []Descriptor{
			{Name: "lights", Type: "Relay", Pin: 23, Enabled: true},
			{Name: "spray", Type: "VenturiNozzle", Pin: 22, Enabled: true, PulseWidthMS: 5000},
		},
	},
	device.Liquid: {
		Device: DeviceInfo{
			Type:    "liquid",
			Name:    "AeroLiquid Controller",
			Version: "1.0.0",
		},
		Sensors: []Descriptor{
			{Name: "ph_sensor", Type: "AnalogPH", Pin: 36, Enabled: true},
			{Name: "ec_sensor", Type: "AnalogEC", Pin: 39, Enabled: true},
		},
		Actuators: []Descriptor{
			{Name: "ph_up_pump", Type: "PeristalticPump", Pin: 23, Enabled: true},
			{Name: "nutrient_pump", Type: "PeristalticPump", Pin: 22, Enabled: true},
		},
	},
}

// TemplateFor returns the default template for a variant. The second return
// is false for Unknown, which ships no template.
func TemplateFor(v device.Variant) (Template, bool) {
	tmpl, ok := templates[v]
	return tmpl, ok
}

// TemplatePath returns the variant-qualified template location, relative to
// the project root
func TemplatePath(v device.Variant) string {
	return filepath.Join("data", fmt.Sprintf("config_template_%s.json", v))
}

// WriteTemplate serializes the variant's template into the project's data
// directory, overwriting a previous template for the same variant only.
// For Unknown it is a no-op and returns an empty path with no error.
func WriteTemplate(projectDir string, v device.Variant) (string, error) {
	tmpl, ok := TemplateFor(v)
	if !ok {
		return "", nil
	}

	path := filepath.Join(projectDir, TemplatePath(v))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(tmpl, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal config template: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write config template: %w", err)
	}

	return path, nil
}

// ReadDeclaredType reads the device_type field from an installed device
// configuration document
func ReadDeclaredType(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var doc struct {
		DeviceType string `json:"device_type"`
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("invalid device configuration: %w", err)
	}

	return doc.DeviceType, nil
}
