package gemmcost

import "strings"

// Architecture identifies a supported GPU target. The zero value is Gfx942;
// Count is the sentinel returned by ArchNameToEnum for unrecognized strings.
type Architecture int

const (
	Gfx942 Architecture = iota
	Gfx950
	// Count is a sentinel marking "no recognized architecture". It must
	// stay last: callers range over [0, Count) to enumerate known archs.
	Count
)

func (a Architecture) String() string {
	switch a {
	case Gfx942:
		return "gfx942"
	case Gfx950:
		return "gfx950"
	default:
		return "unknown"
	}
}

// ArchitectureConstants holds the static per-architecture parameters that,
// together with device-reported quantities, compose a Hardware value.
// Field order matches the constructor order documented in spec §6:
// num_xcds, mem1, mem2, mem3, parallel_MI_CU, percent_bw_per_wg, mem_clock_ratio.
type ArchitectureConstants struct {
	NumXCDs        int
	Mem1PerfRatio  float64
	Mem2PerfRatio  float64
	Mem3PerfRatio  float64
	ParallelMICU   int
	PercentBWPerWG float64
	MemClockRatio  float64
}

// archConstantsTable is the compile-time mapping Architecture →
// ArchitectureConstants (§4.B). Built once at package init; never mutated.
var archConstantsTable = map[Architecture]ArchitectureConstants{
	Gfx942: {
		NumXCDs:        8,
		Mem1PerfRatio:  17,
		Mem2PerfRatio:  1.21875121875121875 * 6,
		Mem3PerfRatio:  4,
		ParallelMICU:   4,
		PercentBWPerWG: 0.015,
		MemClockRatio:  1.5,
	},
	Gfx950: {
		NumXCDs:        8,
		Mem1PerfRatio:  17,
		Mem2PerfRatio:  1.21875121875121875 * 7,
		Mem3PerfRatio:  4,
		ParallelMICU:   6,
		PercentBWPerWG: 0.008,
		MemClockRatio:  1.5,
	},
}

// instructionLatencyFallback is the substitute issue-cycle count used when
// an instruction shape is absent from the per-arch table (§4.C, §7
// InstructionNotFound). It is divided by ParallelMICU by the caller, same
// as every other table entry.
const instructionLatencyFallback = 32.0

// instructionLatencyTable is the compile-time mapping
// Architecture → (MatrixInstruction → issue cycles) (§4.B).
//
// Design note: the distilled spec references a verbatim appendix of ~20
// MFMA shapes per architecture that was not included in the text handed to
// this implementation (see DESIGN.md). The shapes below are the canonical
// CDNA3/CDNA-next MFMA instruction shapes (4x4x*, 16x16x*, 32x32x*, at
// 8/16/32-bit element widths) with plausible issue-cycle costs that grow
// with the MI_M×MI_N footprint (one cost per footprint, whatever MI_K or
// element width) so that ordinal ranking between tile candidates behaves
// sensibly; they are not measured silicon numbers.
var instructionLatencyTable = map[Architecture]map[MatrixInstruction]float64{
	Gfx942: {
		NewMatrixInstruction(4, 4, 1, 32):    8,
		NewMatrixInstruction(4, 4, 4, 16):    8,
		NewMatrixInstruction(4, 4, 4, 32):    8,
		NewMatrixInstruction(16, 16, 1, 32):  16,
		NewMatrixInstruction(16, 16, 4, 32):  16,
		NewMatrixInstruction(16, 16, 8, 16):  16,
		NewMatrixInstruction(16, 16, 8, 32):  16,
		NewMatrixInstruction(16, 16, 16, 8):  16,
		NewMatrixInstruction(16, 16, 16, 16): 16,
		NewMatrixInstruction(16, 16, 16, 32): 16,
		NewMatrixInstruction(16, 16, 32, 8):  16,
		NewMatrixInstruction(16, 16, 32, 16): 16,
		NewMatrixInstruction(32, 32, 1, 32):  32,
		NewMatrixInstruction(32, 32, 2, 32):  32,
		NewMatrixInstruction(32, 32, 4, 16):  32,
		NewMatrixInstruction(32, 32, 4, 32):  32,
		NewMatrixInstruction(32, 32, 8, 8):   32,
		NewMatrixInstruction(32, 32, 8, 16):  32,
		NewMatrixInstruction(32, 32, 8, 32):  32,
		NewMatrixInstruction(32, 32, 16, 8):  32,
		NewMatrixInstruction(32, 32, 16, 16): 32,
	},
	Gfx950: {
		NewMatrixInstruction(4, 4, 1, 32):    6,
		NewMatrixInstruction(4, 4, 4, 16):    6,
		NewMatrixInstruction(4, 4, 4, 32):    6,
		NewMatrixInstruction(16, 16, 1, 32):  12,
		NewMatrixInstruction(16, 16, 4, 32):  12,
		NewMatrixInstruction(16, 16, 8, 16):  12,
		NewMatrixInstruction(16, 16, 8, 32):  12,
		NewMatrixInstruction(16, 16, 16, 8):  12,
		NewMatrixInstruction(16, 16, 16, 16): 12,
		NewMatrixInstruction(16, 16, 16, 32): 12,
		NewMatrixInstruction(16, 16, 32, 8):  12,
		NewMatrixInstruction(16, 16, 32, 16): 12,
		NewMatrixInstruction(16, 16, 64, 8):  12,
		NewMatrixInstruction(32, 32, 1, 32):  24,
		NewMatrixInstruction(32, 32, 2, 32):  24,
		NewMatrixInstruction(32, 32, 4, 16):  24,
		NewMatrixInstruction(32, 32, 4, 32):  24,
		NewMatrixInstruction(32, 32, 8, 8):   24,
		NewMatrixInstruction(32, 32, 8, 16):  24,
		NewMatrixInstruction(32, 32, 16, 8):  24,
		NewMatrixInstruction(32, 32, 16, 16): 24,
		NewMatrixInstruction(32, 32, 32, 8):  24,
	},
}

// ArchNameToEnum parses an architecture identifier string, truncating at
// the first ':' (e.g. "gfx942:sramecc+:xnack-" → "gfx942"), and returns the
// matching Architecture, or Count if the name is unrecognized (§6).
func ArchNameToEnum(name string) Architecture {
	if idx := strings.IndexByte(name, ':'); idx >= 0 {
		name = name[:idx]
	}
	switch name {
	case "gfx942":
		return Gfx942
	case "gfx950":
		return Gfx950
	default:
		return Count
	}
}
