package device

// Profile describes the static capabilities of a hardware variant
type Profile struct {
	// Short device name (e.g., "AeroEnv")
	Name string

	// Full display name for documentation and build info
	FullName string

	// Sensor identifiers in declaration order
	Sensors []string

	// Actuator identifiers in declaration order
	Actuators []string

	// Feature flags emitted as HAS_* defines in the build info header
	Features []string

	// Capacity limits compiled into the firmware
	MaxSensors   int
	MaxActuators int
}

// profiles is the canonical variant lookup table. Every component that needs
// per-variant data goes through Lookup rather than keeping its own lists.
var profiles = map[Variant]Profile{
	Environmental: {
		Name:      "AeroEnv",
		FullName:  "AeroEnv Environmental Controller",
		Sensors:   []string{"temperature", "humidity", "pressure"},
		Actuators: []string{"lights", "spray", "fan"},
		Features: []string{
			"HAS_TEMPERATURE_SENSOR",
			"HAS_HUMIDITY_SENSOR",
			"HAS_PRESSURE_SENSOR",
			"HAS_LIGHT_CONTROL",
			"HAS_SPRAY_CONTROL",
			"HAS_FAN_CONTROL",
		},
		MaxSensors:   8,
		MaxActuators: 6,
	},
	Liquid: {
		Name:      "AeroLiquid",
		FullName:  "AeroLiquid Chemical Controller",
		Sensors:   []string{"ph", "ec", "water_temp"},
		Actuators: []string{"pumps", "valves", "circulation"},
		Features: []string{
			"HAS_PH_SENSOR",
			"HAS_EC_SENSOR",
			"HAS_WATER_TEMP_SENSOR",
			"HAS_CHEMICAL_PUMPS",
			"HAS_DOSING_CONTROL",
			"HAS_CHEMICAL_SAFETY",
		},
		MaxSensors:   6,
		MaxActuators: 12,
	},
	Unknown: {
		Name:     "Unknown",
		FullName: "Unknown Device",
	},
}

// Lookup returns the Profile for a variant, falling back to the Unknown
// profile for unrecognized values
func Lookup(v Variant) Profile {
	if p, ok := profiles[v]; ok {
		return p
	}

	return profiles[Unknown]
}
