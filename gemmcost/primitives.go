package gemmcost

// CeilDiv returns ceil(n/d) for non-negative n and positive d, and 0 when
// d is 0 (§4.D). It is written as n/d + (n%d != 0) rather than the more
// common (n+d-1)/d so that it cannot overflow for n, d up to 2^63 (§9
// numeric-semantics note).
func CeilDiv(n, d int64) int64 {
	if d == 0 {
		return 0
	}
	q := n / d
	if n%d != 0 {
		q++
	}
	return q
}

// ArithmeticIntensity returns the FLOPs-per-byte ratio for an m×n×k GEMM at
// bpe bytes per element (§4.D):
//
//	2·m·n·k / ((m·n + n·k + m·k)·bpe)
func ArithmeticIntensity(m, n, k int64, bpe float64) float64 {
	denom := float64(m*n+n*k+m*k) * bpe
	if denom <= 0 {
		return 0
	}
	return 2 * float64(m) * float64(n) * float64(k) / denom
}

// ComputeALoads returns the number of A-matrix elements one macro-tile
// loads: MT_M · MT_K (§4.D).
func ComputeALoads(mtM, mtK int) int64 {
	return int64(mtM) * int64(mtK)
}

// ComputeBLoads returns the number of B-matrix elements one macro-tile
// loads: MT_N · MT_K (§4.D).
func ComputeBLoads(mtN, mtK int) int64 {
	return int64(mtN) * int64(mtK)
}

// ComputeActiveCU returns the number of compute units active on this
// problem's output grid, capped at the device's CU count (§4.D).
func ComputeActiveCU(h Hardware, m, n, batch int64, mtM, mtN int) int64 {
	totalTiles := CeilDiv(m, int64(mtM)) * CeilDiv(n, int64(mtN)) * batch
	if totalTiles > int64(h.NCU) {
		return int64(h.NCU)
	}
	return totalTiles
}

// ComputeBWLimitFromOccupancy models bandwidth limitation at low
// occupancy: below 100 active CUs, bandwidth scales linearly with active
// CU count at 0.008 per CU, capped at 1.0; at or above 100 it is
// unconstrained (§4.D).
func ComputeBWLimitFromOccupancy(activeCU int64) float64 {
	if activeCU < 100 {
		limit := float64(activeCU) * 0.008
		if limit > 1.0 {
			return 1.0
		}
		return limit
	}
	return 1.0
}
