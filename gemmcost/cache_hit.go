package gemmcost

// cacheBlockShape holds the (block_m, block_n) shape of the WGM-driven
// block of tiles a single cache tier reuses (§4.E). Both the L2 and MALL
// estimators build one of these and then derive uncached/total reads from
// it; they differ only in how block_m/block_n are initialized and whether
// a capacity bound loop further shrinks block_m.
type cacheBlockShape struct {
	blockM, blockN int64
}

// applyWraparoundAndClamp implements step 3-4 of §4.E, shared verbatim by
// both estimators: if the block overflows grid_n, the excess wraps into
// additional rows of block_m (scaled by WGM), then both dimensions are
// clamped to [1, grid].
func applyWraparoundAndClamp(blockM, blockN, gridM, gridN int64, wgm int64) cacheBlockShape {
	if blockN > gridN && gridN > 0 {
		ext := (blockN/gridN - 1) * wgm
		blockM += ext
		blockN = gridN
	}
	if blockM < 1 {
		blockM = 1
	}
	if blockM > gridM {
		blockM = gridM
	}
	if blockN < 1 {
		blockN = 1
	}
	if blockN > gridN {
		blockN = gridN
	}
	return cacheBlockShape{blockM: blockM, blockN: blockN}
}

// uncachedAndTotalReads computes step 5/7 of §4.E: the per-dimension
// uncached read volume (in elements) and the total read volume once tile
// reuse within the block is accounted for.
func uncachedAndTotalReads(block cacheBlockShape, mtM, mtN, mtK int) (uncached, total int64) {
	a := block.blockM * int64(mtM) * int64(mtK)
	b := block.blockN * int64(mtN) * int64(mtK)
	uncached = a + b
	aReads := block.blockM * block.blockN * int64(mtM) * int64(mtK)
	bReads := block.blockN * block.blockM * int64(mtN) * int64(mtK)
	total = aReads + bReads
	return uncached, total
}

// hitRateFromReads computes step 8 of §4.E and emits the required warning
// when the computed rate exceeds 1 (§3 invariant, §7 HitRate>1 anomaly) —
// the value is still returned uncapped, per spec: "do not clamp."
func hitRateFromReads(uncached, total int64, label string) float64 {
	denom := total
	if denom < 1 {
		denom = 1
	}
	hit := float64(total-uncached) / float64(denom)
	if hit > 1.0 {
		warnf("gemmcost: %s hit-rate %.4f exceeds 1.0 (uncached=%d total=%d)", label, hit, uncached, total)
	}
	return hit
}

// clampWGM enforces the "WGM clamped to >= 1" precondition shared by both
// estimators (§4.E).
func clampWGM(wgm int) int64 {
	if wgm < 1 {
		return 1
	}
	return int64(wgm)
}

// EstimateL2Hit returns the predicted L2 cache hit rate for a problem with
// the given output grid (grid_m, grid_n), active CU count, WGM, and element
// width, shrinking the L2 reuse block until it fits L2 capacity (§4.E
// "estimate_l2_hit").
func EstimateL2Hit(h Hardware, gridM, gridN int64, mtM, mtN, mtK int, activeCU int64, wgm int, elemBits int) float64 {
	wgm64 := clampWGM(wgm)

	cuPerXCD := CeilDiv(activeCU, int64(max1(h.NumXCD)))
	if cuPerXCD < 1 {
		cuPerXCD = 1
	}

	blockM := minInt64(wgm64, gridM)
	if blockM < 1 {
		blockM = 1
	}
	blockN := cuPerXCD / blockM

	shape := applyWraparoundAndClamp(blockM, blockN, gridM, gridN, wgm64)

	bytesPerElem := CeilDiv(int64(elemBits), 8)
	var capacityElems int64
	if bytesPerElem > 0 {
		capacityElems = h.L2Capacity / bytesPerElem
	}

	uncached, total := uncachedAndTotalReads(shape, mtM, mtN, mtK)
	for uncached > capacityElems && shape.blockM >= 2 {
		shape.blockM--
		uncached, total = uncachedAndTotalReads(shape, mtM, mtN, mtK)
	}

	return hitRateFromReads(uncached, total, "L2")
}

// EstimateMALLHit returns the predicted last-level-cache (MALL) hit rate,
// using the same block-of-tiles reuse model as EstimateL2Hit but with no
// capacity bound (MALL is modeled as effectively large enough to always
// hold the block) and a block shape driven by the batch-scaled grid size
// when the 2D output grid is smaller than the active CU count (§4.E
// "estimate_mall_hit").
func EstimateMALLHit(h Hardware, gridM, gridN int64, batch int64, mtM, mtN, mtK int, activeCU int64, wgm int, elemBits int) float64 {
	wgm64 := clampWGM(wgm)

	var numCUs int64
	if gridM*gridN < activeCU {
		if h.NumXCD > 0 {
			numCUs = (gridM * gridN * batch) / int64(h.NumXCD)
		}
	} else {
		numCUs = CeilDiv(activeCU, int64(max1(h.NumXCD)))
	}
	if numCUs < 1 {
		numCUs = 1
	}

	blockM := minInt64(wgm64, gridM)
	if blockM < 1 {
		blockM = 1
	}
	blockN := numCUs / wgm64

	shape := applyWraparoundAndClamp(blockM, blockN, gridM, gridN, wgm64)

	uncached, total := uncachedAndTotalReads(shape, mtM, mtN, mtK)

	return hitRateFromReads(uncached, total, "MALL")
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
