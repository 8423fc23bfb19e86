package device

// Variant identifies which hardware variant a build targets
type Variant string

const (
	// Environmental is the AeroEnv environmental controller
	Environmental Variant = "environmental"

	// Liquid is the AeroLiquid chemical controller
	Liquid Variant = "liquid"

	// Unknown is the fallback when no variant marker is defined
	Unknown Variant = "unknown"
)

// Preprocessor definitions that mark a variant in the build flags
const (
	DefineEnvironmental = "DEVICE_TYPE_ENVIRONMENTAL"
	DefineLiquid        = "DEVICE_TYPE_LIQUID"
)

// markers lists the recognized variant defines in resolution order.
// Environmental wins if both are defined, making resolution deterministic
// even though the define set itself is unordered.
var markers = []struct {
	define  string
	variant Variant
}{
	{DefineEnvironmental, Environmental},
	{DefineLiquid, Liquid},
}

// ResolveVariant maps a build's preprocessor definition set to a Variant.
// Returns Unknown when no marker define is present; never fails.
func ResolveVariant(defines map[string]string) Variant {
	for _, m := range markers {
		if _, ok := defines[m.define]; ok {
			return m.variant
		}
	}

	return Unknown
}

// String returns the lowercase variant name used in file paths and artifacts
func (v Variant) String() string {
	return string(v)
}
