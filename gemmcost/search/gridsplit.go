package search

import (
	"math"

	"github.com/gemmcost/gemmcost"
	"github.com/gemmcost/gemmcost/latency"
	"gonum.org/v1/gonum/floats"
)

// GridSplitResult is the outcome of SelectBestGridSize: the chosen
// K-split factor, the resulting grid size (split·G), and the latency that
// split achieved.
type GridSplitResult struct {
	Split       int
	Grid        int64
	BestLatency float64
}

// SelectBestGridSize searches split ∈ [1, min(biggestAllowableSplit,
// floor(N_CU/G))] for the value minimizing compute_total_latency, where
// G is the base output grid ceil(M/MT_M)·ceil(N/MT_N)·batch (§4.H
// "select_best_grid_size"). When G exceeds N_CU the hardware-imposed
// bound floors to zero, the search loop runs zero times, and the caller
// observes BestLatency=+Inf and Grid=G (the base grid, unsplit) rather
// than a zero grid — the degenerate case is surfaced, not silently
// collapsed to zero.
func SelectBestGridSize(h gemmcost.Hardware, p gemmcost.Problem, tile gemmcost.MacroTile, wgm int, biggestAllowableSplit int) GridSplitResult {
	gridM := gemmcost.CeilDiv(p.M, int64(tile.MTM))
	gridN := gemmcost.CeilDiv(p.N, int64(tile.MTN))
	g := gridM * gridN * p.Batch

	result := GridSplitResult{Split: 0, Grid: g, BestLatency: math.Inf(1)}
	if g <= 0 || h.NCU <= 0 {
		return result
	}

	maxHWSplit := int(int64(h.NCU) / g)
	maxSplit := biggestAllowableSplit
	if maxHWSplit < maxSplit {
		maxSplit = maxHWSplit
	}
	if maxSplit < 1 {
		return result
	}

	latencies := make([]float64, maxSplit)
	for split := 1; split <= maxSplit; split++ {
		latencies[split-1] = latency.ComputeTotalLatency(h, p, tile, split, wgm)
	}
	bestIdx := floats.MinIdx(latencies)
	bestSplit := bestIdx + 1
	return GridSplitResult{
		Split:       bestSplit,
		Grid:        int64(bestSplit) * g,
		BestLatency: latencies[bestIdx],
	}
}
