package latency

import (
	"math"

	"github.com/gemmcost/gemmcost"
)

// divGuard returns num/den, or 0 when den is non-positive, so that a
// degenerate tier ratio contributes nothing to the max() rather than
// propagating Inf/NaN (§7 DivisionByZero guards).
func divGuard(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

// ComputeLatency returns the per-tile compute latency L_MT (§4.F "Per-tile
// compute latency"): the matrix-instruction issue-cycle cost for one
// macro-tile, scaled by the number of matrix instructions it decomposes
// into, then adjusted by the layout-alignment penalty for the problem's
// transpose combination.
func ComputeLatency(h gemmcost.Hardware, p gemmcost.Problem, tile gemmcost.MacroTile) float64 {
	nMI := gemmcost.CeilDiv(int64(tile.MTM), int64(tile.MIM)) *
		gemmcost.CeilDiv(int64(tile.MTN), int64(tile.MIN)) *
		gemmcost.CeilDiv(int64(tile.MTK), int64(tile.MIK))

	elemBits := p.ElemBitsA
	if p.ElemBitsB > elemBits {
		elemBits = p.ElemBitsB
	}
	lMI := h.GetMILatency(tile.MIM, tile.MIN, tile.MIK, elemBits)
	lMT := lMI * float64(nMI)

	return lMT * layoutPenalty(p, tile.MTM, tile.MTN, tile.MTK, true)
}

// MemoryLatency returns the per-tile memory latency L_mem (§4.F "Per-tile
// memory latency"): a three-tier reach model (L1/L2/L3) driven by the
// MALL hit rate computed internally and the L2 hit rate hMem1 supplied by
// the caller — ComputeTotalLatency is the only caller that has a real
// hMem1 to supply; it overwrites one with estimate_l2_hit before calling
// here, per spec step 1 of the whole-problem composition.
func MemoryLatency(h gemmcost.Hardware, p gemmcost.Problem, tile gemmcost.MacroTile, split int, hMem1 float64) float64 {
	gridM := gemmcost.CeilDiv(p.M, int64(tile.MTM))
	gridN := gemmcost.CeilDiv(p.N, int64(tile.MTN))

	activeCUBase := gemmcost.ComputeActiveCU(h, p.M, p.N, p.Batch, tile.MTM, tile.MTN)
	elemBits := p.ElemBitsA
	if p.ElemBitsB > elemBits {
		elemBits = p.ElemBitsB
	}
	hMem2 := gemmcost.EstimateMALLHit(h, gridM, gridN, p.Batch, tile.MTM, tile.MTN, tile.MTK, activeCUBase, 1, elemBits)

	aLoads := gemmcost.ComputeALoads(tile.MTM, tile.MTK)
	bLoads := gemmcost.ComputeBLoads(tile.MTN, tile.MTK)
	bytesA := ceilBytes(p.ElemBitsA)
	bytesB := ceilBytes(p.ElemBitsB)
	perCUBytes := float64(aLoads)*float64(bytesA) + float64(bLoads)*float64(bytesB)
	if p.MxBlockSize != 0 && p.ElemBitsA < 8 {
		scaleElems := float64(gemmcost.CeilDiv(int64(tile.MTM)*int64(tile.MTK), p.MxBlockSize))
		perCUBytes += scaleElems // A-scales
		perCUBytes += scaleElems // B-scales (same MT_M*MT_K accounting as A)
	}

	activeCU := activeCUBase * int64(split)
	if activeCU > int64(h.NCU) {
		activeCU = int64(h.NCU)
	}

	totalLd := perCUBytes * float64(activeCU)

	l1 := divGuard(totalLd, h.Mem1PerfRatio*safeFraction(activeCU, h.NCU))

	ldMem2 := (1 - hMem1) * totalLd
	bwLimited := gemmcost.ComputeBWLimitFromOccupancy(activeCU)
	l2 := divGuard(ldMem2, h.Mem2PerfRatio*bwLimited)

	ldMEM := (1 - hMem2) * ldMem2
	if activeCU < int64(h.NCU) {
		floorBytes := (float64(p.M)*float64(tile.MTK)*float64(bytesA) +
			float64(p.N)*float64(tile.MTK)*float64(bytesB)) * float64(p.Batch)
		if ldMEM < floorBytes {
			ldMEM = floorBytes
		}
		if ldMem2 < floorBytes {
			ldMem2 = floorBytes
		}
	}
	var l3 float64
	if denom3 := h.Mem3PerfRatio * bwLimited; denom3 > 0 {
		l3 = ldMEM/denom3 + 200 // constant memory-access latency
	}

	lMem := math.Max(l1, math.Max(l2, l3))
	return lMem * layoutPenalty(p, tile.MTM, tile.MTN, tile.MTK, false)
}

// safeFraction returns num/den as a float64, or 0 when den is
// non-positive.
func safeFraction(num int64, den int) float64 {
	if den <= 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// ComputeTotalLatency returns the whole-problem latency for a candidate
// macro-tile at a given K-split and WGM (§4.F "Whole-problem latency"):
// the per-tile latency (max of compute and memory reach) amortized over
// num_iter K-iterations, plus prologue, epilogue, and reduce overhead,
// replicated across the wave count implied by the output grid.
func ComputeTotalLatency(h gemmcost.Hardware, p gemmcost.Problem, tile gemmcost.MacroTile, split int, wgm int) float64 {
	gridM := gemmcost.CeilDiv(p.M, int64(tile.MTM))
	gridN := gemmcost.CeilDiv(p.N, int64(tile.MTN))
	gridK := gemmcost.CeilDiv(p.K, int64(tile.MTK))

	activeCUBase := gemmcost.ComputeActiveCU(h, p.M, p.N, p.Batch, tile.MTM, tile.MTN)
	elemBits := p.ElemBitsA
	if p.ElemBitsB > elemBits {
		elemBits = p.ElemBitsB
	}
	hMem1 := gemmcost.EstimateL2Hit(h, gridM, gridN, tile.MTM, tile.MTN, tile.MTK, activeCUBase, wgm, elemBits)

	lCompute := ComputeLatency(h, p, tile)
	lMem := MemoryLatency(h, p, tile, split, hMem1)

	lTileSingle := math.Max(lCompute, lMem)

	// num_iter clamps to 1 when K <= MT_K (gridK-1 is then 0).
	numIter := int64(1)
	if split > 0 {
		numer := gridK - 1
		if numer < 0 {
			numer = 0
		}
		if ni := gemmcost.CeilDiv(numer, int64(split)); ni > numIter {
			numIter = ni
		}
	}

	lPrologue := 1.5 * lMem

	activeCU := activeCUBase * int64(split)
	if activeCU > int64(h.NCU) {
		activeCU = int64(h.NCU)
	}
	bytesOut := ceilBytes(p.ElemBitsOut)

	limited := math.Max(10, h.Mem1PerfRatio*safeFraction(activeCU, h.NCU))
	lEpilogue := divGuard(float64(activeCU)*float64(tile.MTM)*float64(tile.MTN)*float64(bytesOut), limited)
	if split > 1 {
		lReduce := divGuard(2*float64(activeCU)*float64(bytesOut)*float64(tile.MTM)*float64(tile.MTN)*float64(split-1), h.Mem3PerfRatio)
		lEpilogue += lReduce
	}

	lTileTotal := lTileSingle*float64(numIter) + lPrologue + lEpilogue + 1 + 28*float64(numIter)

	if tile.MTK == 512 {
		lTileTotal *= 1.5
	}

	nWaves := gemmcost.CeilDiv(gridM*gridN*p.Batch, int64(h.NCU))

	return lTileTotal * float64(nWaves)
}
