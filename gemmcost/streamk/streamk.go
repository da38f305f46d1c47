package streamk

import (
	"math"

	"github.com/gemmcost/gemmcost"
	"gonum.org/v1/gonum/floats"
)

// Fixed closed-form model coefficients (§4.I, §6 "must be reproduced
// verbatim to preserve ranking behavior").
const (
	coeffA = 7.337
	coeffB = 3.01
	coeffC = 2.2935
	coeffD = 10.22
)

// BlockShape is a Stream-K output-tile shape (BLK_M, BLK_N, BLK_K),
// independent of the macro-tile/matrix-instruction shapes used by
// gemmcost/search.
type BlockShape struct {
	BlkM, BlkN, BlkK int
}

// GridResult is the outcome of SelectGridSize: the chosen processor
// (CTA) count and the v2 runtime estimate it achieved.
type GridResult struct {
	Grid    int
	Runtime float64
}

// SelectGridSize sweeps candidate processor counts g ∈ [gridStart,
// gridEnd] and returns the one minimizing the v2 cost model — the
// baseline linear runtime plus a cache-imbalance penalty (§4.I). gridEnd
// is inclusive.
func SelectGridSize(p gemmcost.Problem, blk BlockShape, gridStart, gridEnd int) GridResult {
	outputTiles := gemmcost.CeilDiv(p.M, int64(blk.BlkM)) * gemmcost.CeilDiv(p.N, int64(blk.BlkN)) * p.Batch
	itersPerTile := gemmcost.CeilDiv(p.K, int64(blk.BlkK))
	itersTotal := outputTiles * itersPerTile

	if gridEnd < gridStart {
		return GridResult{Grid: 0, Runtime: math.Inf(1)}
	}

	candidates := make([]int, 0, gridEnd-gridStart+1)
	runtimes := make([]float64, 0, gridEnd-gridStart+1)
	for g := gridStart; g <= gridEnd; g++ {
		if g <= 0 {
			continue
		}
		runtimes = append(runtimes, v2Runtime(outputTiles, itersPerTile, itersTotal, g))
		candidates = append(candidates, g)
	}
	if len(candidates) == 0 {
		return GridResult{Grid: 0, Runtime: math.Inf(1)}
	}

	bestIdx := floats.MinIdx(runtimes)
	return GridResult{Grid: candidates[bestIdx], Runtime: runtimes[bestIdx]}
}

// v2Runtime computes the baseline linear cost plus the cache-imbalance
// penalty for one candidate processor count g (§4.I).
func v2Runtime(outputTiles, itersPerTile, itersTotal int64, g int) float64 {
	g64 := int64(g)
	itersPerCta := gemmcost.CeilDiv(itersTotal, g64)

	hasFixup := int64(1)
	if itersTotal%g64 == 0 && itersPerTile != 0 && itersPerCta%itersPerTile == 0 {
		hasFixup = 0
	}
	peers := gemmcost.CeilDiv(itersPerTile, itersPerCta) + hasFixup

	peersGT1 := 0.0
	if peers > 1 {
		peersGT1 = 1.0
	}
	runtime := coeffA + coeffB*peersGT1 + coeffC*float64(itersPerCta) + coeffD*float64(peers-1)

	kSplitRatio := float64(outputTiles%g64) / float64(g)
	var ideal float64
	if peers > 0 {
		ideal = 1.0 / float64(peers)
	}
	diff := math.Abs(kSplitRatio - ideal)

	var imbalance float64
	if diff > 0 {
		imbalance = 1.0 / diff
	}
	cachePenalty := coeffD * imbalance * float64(peers)

	return runtime + cachePenalty
}
