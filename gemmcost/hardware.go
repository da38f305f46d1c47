package gemmcost

import "strconv"

// Hardware is the immutable composition of per-architecture constants and
// device-reported quantities (§3 "Hardware", §4.C). Once constructed it is
// read-only; the only mutable field is DebugLog, a diagnostic-only map that
// the model never consults.
type Hardware struct {
	Arch Architecture

	NCU             int
	LDSCapacity     int64 // bytes
	NumXCD          int
	L2Capacity      int64 // bytes
	ComputeClockGHz float64

	Mem1PerfRatio float64
	Mem2PerfRatio float64
	Mem3PerfRatio float64

	CUPerL2        int
	ParallelMICU   int
	PercentBWPerWG float64

	// DebugLog is a transient, per-instance diagnostic map. It is never
	// read by the cost model; callers may reset or ignore it freely (§3,
	// §5).
	DebugLog map[string]string
}

// NewHardware constructs a Hardware value directly from already-derived
// quantities (§4.C constructor). CUPerL2 is derived as NCU/NumXCD,
// preserving the invariant CUPerL2·NumXCD = NCU for any NumXCD ≥ 1 that
// evenly divides NCU; callers supplying a non-dividing NumXCD get the
// floor, matching integer-division semantics used throughout the model.
func NewHardware(
	arch Architecture,
	nCU int,
	ldsCapacity int64,
	numXCD int,
	mem1PerfRatio, mem2PerfRatio, mem3PerfRatio float64,
	l2Capacity int64,
	computeClockGHz float64,
	parallelMICU int,
	percentBWPerWG float64,
) Hardware {
	cuPerL2 := 0
	if numXCD > 0 {
		cuPerL2 = nCU / numXCD
	}
	return Hardware{
		Arch:            arch,
		NCU:             nCU,
		LDSCapacity:     ldsCapacity,
		NumXCD:          numXCD,
		L2Capacity:      l2Capacity,
		ComputeClockGHz: computeClockGHz,
		Mem1PerfRatio:   mem1PerfRatio,
		Mem2PerfRatio:   mem2PerfRatio,
		Mem3PerfRatio:   mem3PerfRatio,
		CUPerL2:         cuPerL2,
		ParallelMICU:    parallelMICU,
		PercentBWPerWG:  percentBWPerWG,
		DebugLog:        make(map[string]string),
	}
}

// NewHardwareFromDeviceProperties composes architecture constants with
// device-reported quantities (§4.C): it derives the three memory-tier perf
// ratios and the compute clock from the architecture's static constants and
// the device's reported clocks, then delegates to NewHardware. Returns
// *UnsupportedArchitectureError if props.GCNArchName does not resolve to a known
// Architecture.
func NewHardwareFromDeviceProperties(props DeviceProperties) (Hardware, error) {
	arch := ArchNameToEnum(props.GCNArchName)
	if arch == Count {
		return Hardware{}, &UnsupportedArchitectureError{Arch: props.GCNArchName}
	}
	consts := archConstantsTable[arch]

	clockRateKHz := float64(props.ClockRateKHz)
	memClockRateKHz := float64(props.MemoryClockRateKHz)

	mem1 := safeRatio(1e9*consts.Mem1PerfRatio, clockRateKHz)
	mem2 := safeRatio(1e9*consts.Mem2PerfRatio, memClockRateKHz*consts.MemClockRatio)
	mem3 := safeRatio(1e9*consts.Mem3PerfRatio, memClockRateKHz)
	computeClockGHz := clockRateKHz / 1e6

	return NewHardware(
		arch,
		props.MultiProcessorCount,
		props.SharedMemPerBlock,
		consts.NumXCDs,
		mem1, mem2, mem3,
		props.L2CacheSize,
		computeClockGHz,
		consts.ParallelMICU,
		consts.PercentBWPerWG,
	), nil
}

// safeRatio returns num/den, or 0 when den is non-positive, so that a
// malformed device-properties bundle degrades to a zero ratio (which the
// latency composer's DivisionByZero guards then turn into a zero-latency
// tier) rather than propagating Inf/NaN (§7 DivisionByZero guards).
func safeRatio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

// GetMILatency looks up the issue-cycle cost for the given matrix
// instruction shape in this Hardware's architecture table, and returns the
// per-instruction latency (issue cycles / ParallelMICU). On a miss it emits
// a warning and returns the fallback latency (32 / ParallelMICU) (§4.C,
// §7 InstructionNotFound) — it never returns an error.
func (h Hardware) GetMILatency(miM, miN, miK, elemBits int) float64 {
	mi := NewMatrixInstruction(miM, miN, miK, elemBits)
	table := instructionLatencyTable[h.Arch]
	issueCycles, ok := table[mi]
	if !ok {
		warnf("gemmcost: instruction latency miss for %s on %s, using fallback", mi, h.Arch)
		if h.DebugLog != nil {
			h.DebugLog[strconv.FormatUint(mi.Hash(), 16)] = "instruction latency miss: " + mi.String()
		}
		issueCycles = instructionLatencyFallback
	}
	return issueCycles / float64(h.ParallelMICU)
}
