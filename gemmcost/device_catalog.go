package gemmcost

// DeviceFamily enumerates the GPU device families the catalog knows about,
// ordered oldest-to-newest (§3 "Device descriptor", §4.J). This is distinct
// from Architecture: Architecture covers only the two archs the latency
// model supports costing for (gfx942, gfx950); DeviceFamily additionally
// covers older baseline families used only for kernel-subsumption checks.
type DeviceFamily int

const (
	Gfx803 DeviceFamily = iota
	Gfx900
	Gfx90a
	Gfx942Family
	Gfx950Family
	DeviceFamilyCount
)

func (f DeviceFamily) String() string {
	switch f {
	case Gfx803:
		return "gfx803"
	case Gfx900:
		return "gfx900"
	case Gfx90a:
		return "gfx90a"
	case Gfx942Family:
		return "gfx942"
	case Gfx950Family:
		return "gfx950"
	default:
		return "unknown"
	}
}

// DeviceFamilyFromName resolves a processor tag to its DeviceFamily, or
// DeviceFamilyCount if unrecognized.
func DeviceFamilyFromName(name string) DeviceFamily {
	switch name {
	case "gfx803":
		return Gfx803
	case "gfx900":
		return Gfx900
	case "gfx90a":
		return Gfx90a
	case "gfx942":
		return Gfx942Family
	case "gfx950":
		return Gfx950Family
	default:
		return DeviceFamilyCount
	}
}

// nonStandardCUCounts is the fixed small mapping processor → set of
// non-standard CU counts (§3 "Device descriptor" example mapping).
var nonStandardCUCounts = map[string]map[int]bool{
	"gfx90a": {104: true},
	"gfx942": {20: true, 38: true, 64: true, 80: true, 228: true},
}

// Device is a small value type describing one physical GPU instance for
// catalog purposes (§3 "Device descriptor").
type Device struct {
	ProcessorTag string
	CUCount      int
	DeviceName   string
}

// IsStandardCU reports whether d's CU count is NOT a member of its
// processor's non-standard-CU set. Processors absent from the mapping have
// no known non-standard counts, so every CU count is standard for them.
func (d Device) IsStandardCU() bool {
	return IsStandardCU(d.ProcessorTag, d.CUCount)
}

// IsStandardCU reports whether cuCount is a standard (expected) CU count
// for the given processor tag (§3, §8 property 7).
func IsStandardCU(processor string, cuCount int) bool {
	nonStandard, ok := nonStandardCUCounts[processor]
	if !ok {
		return true
	}
	return !nonStandard[cuCount]
}

// SetNonStandardCUCounts replaces the compiled-in non-standard-CU mapping
// wholesale. It exists for callers (the CLI's --device-catalog override)
// that load a curated catalog file at startup; the core model never calls
// it itself.
func SetNonStandardCUCounts(catalog map[string]map[int]bool) {
	nonStandardCUCounts = catalog
}

// RunsKernelTargeting reports whether a kernel compiled for the "other"
// architecture can run on self: true when other equals self, or other is
// the gfx900 baseline — except gfx803 never falls back to the baseline,
// only ever running kernels targeting gfx803 itself (§3, §4.J, §8 S5).
//
// In particular: false whenever other is "newer" than self in enum order,
// since gfx900 is itself the oldest fallback target and the only family
// older than it is gfx803, which is carved out by the exception above.
func (self DeviceFamily) RunsKernelTargeting(other DeviceFamily) bool {
	if other == self {
		return true
	}
	if self == Gfx803 {
		return false
	}
	return other == Gfx900
}
