package latency

import (
	"math"
	"testing"

	"github.com/gemmcost/gemmcost"
	"github.com/stretchr/testify/require"
)

func testHardware() gemmcost.Hardware {
	return gemmcost.NewHardware(gemmcost.Gfx942, 304, 65536, 8, 17, 7.3125, 4, 4*1024*1024, 1.8, 4, 0.015)
}

func basicProblem() gemmcost.Problem {
	return gemmcost.Problem{
		M: 4096, N: 4096, K: 4096, Batch: 1,
		ElemBitsA: 16, ElemBitsB: 16, ElemBitsOut: 16,
	}
}

func basicTile() gemmcost.MacroTile {
	return gemmcost.MacroTile{MTM: 128, MTN: 128, MTK: 32, MIM: 32, MIN: 32, MIK: 8}
}

func TestComputeLatency_Positive(t *testing.T) {
	h := testHardware()
	lat := ComputeLatency(h, basicProblem(), basicTile())
	require.Greater(t, lat, 0.0)
	require.False(t, math.IsNaN(lat))
	require.False(t, math.IsInf(lat, 0))
}

func TestComputeLatency_NNPenaltyAppliesWhenMisaligned(t *testing.T) {
	h := testHardware()
	p := basicProblem() // NN, 16-bit elements.

	// MT_K=32: MT_K*bytesB=64<128 fails the B-side NN check, MT_M=128:
	// MT_M*bytesA=256>=128 passes the A-side check -> single ×2 penalty.
	misaligned := gemmcost.MacroTile{MTM: 128, MTN: 128, MTK: 32, MIM: 32, MIN: 32, MIK: 8}
	// MT_K=256: both MT_M*bytesA and MT_K*bytesB clear 128 -> no penalty.
	aligned := gemmcost.MacroTile{MTM: 128, MTN: 128, MTK: 256, MIM: 32, MIN: 32, MIK: 8}

	latMisaligned := ComputeLatency(h, p, misaligned)
	latAligned := ComputeLatency(h, p, aligned)

	nMIMisaligned := gemmcost.CeilDiv(128, 32) * gemmcost.CeilDiv(128, 32) * gemmcost.CeilDiv(32, 8)
	nMIAligned := gemmcost.CeilDiv(128, 32) * gemmcost.CeilDiv(128, 32) * gemmcost.CeilDiv(256, 8)

	perMIMisaligned := latMisaligned / float64(nMIMisaligned)
	perMIAligned := latAligned / float64(nMIAligned)

	require.InDelta(t, 2.0, perMIMisaligned/perMIAligned, 1e-6)
}

func TestComputeLatency_TNDoublePenaltyWhenBothFail(t *testing.T) {
	h := testHardware()
	p := basicProblem()
	p.TransA = true
	p.TransB = false
	// MT_K=4: 4*2=8 bytes, not a multiple of 128, for both A and B (same elem bits).
	tile := gemmcost.MacroTile{MTM: 128, MTN: 128, MTK: 4, MIM: 32, MIN: 32, MIK: 4}
	withPenalty := ComputeLatency(h, p, tile)

	tileNoPenalty := gemmcost.MacroTile{MTM: 128, MTN: 128, MTK: 64, MIM: 32, MIN: 32, MIK: 4}
	withoutPenalty := ComputeLatency(h, p, tileNoPenalty)

	nMIPenalty := gemmcost.CeilDiv(128, 32) * gemmcost.CeilDiv(128, 32) * gemmcost.CeilDiv(4, 4)
	nMINoPenalty := gemmcost.CeilDiv(128, 32) * gemmcost.CeilDiv(128, 32) * gemmcost.CeilDiv(64, 4)
	perMIPenalty := withPenalty / float64(nMIPenalty)
	perMINoPenalty := withoutPenalty / float64(nMINoPenalty)

	// The TN case multiplies in ×1.5 once per failing operand; both operands
	// fail here so the combined factor is 1.5*1.5=2.25 relative to the
	// unpenalized per-instruction latency.
	require.InDelta(t, 2.25, perMIPenalty/perMINoPenalty, 1e-6)
}

func TestMemoryLatency_Positive(t *testing.T) {
	h := testHardware()
	lat := MemoryLatency(h, basicProblem(), basicTile(), 1, 0.5)
	require.Greater(t, lat, 0.0)
	require.False(t, math.IsNaN(lat))
	require.False(t, math.IsInf(lat, 0))
}

func TestMemoryLatency_HigherL2HitLowersLatency(t *testing.T) {
	h := testHardware()
	lowHit := MemoryLatency(h, basicProblem(), basicTile(), 1, 0.1)
	highHit := MemoryLatency(h, basicProblem(), basicTile(), 1, 0.9)
	require.LessOrEqual(t, highHit, lowHit)
}

func TestMemoryLatency_MXScaleAccounting(t *testing.T) {
	h := testHardware()
	p := basicProblem()
	p.ElemBitsA = 4
	p.ElemBitsB = 4
	p.MxBlockSize = 32
	withMX := MemoryLatency(h, p, basicTile(), 1, 0.5)

	p.MxBlockSize = 0
	withoutMX := MemoryLatency(h, p, basicTile(), 1, 0.5)
	require.GreaterOrEqual(t, withMX, withoutMX)
}

func TestComputeTotalLatency_Positive(t *testing.T) {
	h := testHardware()
	total := ComputeTotalLatency(h, basicProblem(), basicTile(), 1, 8)
	require.Greater(t, total, 0.0)
	require.False(t, math.IsNaN(total))
	require.False(t, math.IsInf(total, 0))
}

func TestComputeTotalLatency_MT_K512Penalty(t *testing.T) {
	h := testHardware()
	p := gemmcost.Problem{M: 4096, N: 4096, K: 4096, Batch: 1, ElemBitsA: 16, ElemBitsB: 16, ElemBitsOut: 16}
	tile512 := gemmcost.MacroTile{MTM: 128, MTN: 128, MTK: 512, MIM: 32, MIN: 32, MIK: 8}
	got512 := ComputeTotalLatency(h, p, tile512, 1, 8)

	tile256 := gemmcost.MacroTile{MTM: 128, MTN: 128, MTK: 256, MIM: 32, MIN: 32, MIK: 8}
	got256 := ComputeTotalLatency(h, p, tile256, 1, 8)

	// K=4096 is 8 K-iterations at MT_K=512 and 16 at MT_K=256; the
	// MT_K=512 candidate pays the empirical ×1.5 penalty the 256 one
	// doesn't, but the two also differ in iteration count and memory
	// footprint, so a direct ratio check would be noisy. This only checks
	// that the penalty path runs and both results are positive.
	require.Greater(t, got512, 0.0)
	require.Greater(t, got256, 0.0)
}

func TestComputeTotalLatency_KLessEqualMTKClampsNumIterToOne(t *testing.T) {
	h := testHardware()
	p := gemmcost.Problem{M: 4096, N: 4096, K: 16, Batch: 1, ElemBitsA: 16, ElemBitsB: 16, ElemBitsOut: 16}
	tile := gemmcost.MacroTile{MTM: 128, MTN: 128, MTK: 32, MIM: 32, MIN: 32, MIK: 8}
	// K=16 <= MT_K=32: grid_k=1, so num_iter must clamp to 1 regardless of split.
	got := ComputeTotalLatency(h, p, tile, 4, 8)
	require.Greater(t, got, 0.0)
	require.False(t, math.IsNaN(got))
}

func TestComputeTotalLatency_MonotonicInK(t *testing.T) {
	h := testHardware()
	tile := basicTile()
	small := gemmcost.Problem{M: 4096, N: 4096, K: 1024, Batch: 1, ElemBitsA: 16, ElemBitsB: 16, ElemBitsOut: 16}
	large := small
	large.K = 8192
	gotSmall := ComputeTotalLatency(h, small, tile, 1, 8)
	gotLarge := ComputeTotalLatency(h, large, tile, 1, 8)
	require.GreaterOrEqual(t, gotLarge, gotSmall)
}

func TestComputeTotalLatency_SplitReducesOrHoldsLatencyForLargeK(t *testing.T) {
	h := testHardware()
	p := gemmcost.Problem{M: 4096, N: 4096, K: 16384, Batch: 1, ElemBitsA: 16, ElemBitsB: 16, ElemBitsOut: 16}
	tile := basicTile()
	noSplit := ComputeTotalLatency(h, p, tile, 1, 8)
	split := ComputeTotalLatency(h, p, tile, 4, 8)
	require.Greater(t, noSplit, 0.0)
	require.Greater(t, split, 0.0)
	require.LessOrEqual(t, split, noSplit)
}
