package search

import (
	"github.com/gemmcost/gemmcost"
	"gonum.org/v1/gonum/floats"
)

// SelectBestWGM evaluates estimate_l2_hit (not latency) for each candidate
// WGM and returns the one achieving the highest hit rate (§4.H
// "select_best_wgm"). Candidates whose tile fails the scratchpad check
// are skipped; if every candidate is skipped it returns
// *gemmcost.NoViableWGMError.
func SelectBestWGM(h gemmcost.Hardware, p gemmcost.Problem, tile gemmcost.MacroTile, wgmCandidates []int) (bestWGM int, bestHit float64, err error) {
	if !fitsScratchpad(h, tile, p) {
		return 0, 0, &gemmcost.NoViableWGMError{Candidates: len(wgmCandidates)}
	}

	gridM := gemmcost.CeilDiv(p.M, int64(tile.MTM))
	gridN := gemmcost.CeilDiv(p.N, int64(tile.MTN))
	activeCU := gemmcost.ComputeActiveCU(h, p.M, p.N, p.Batch, tile.MTM, tile.MTN)
	elemBits := p.ElemBitsA
	if p.ElemBitsB > elemBits {
		elemBits = p.ElemBitsB
	}

	if len(wgmCandidates) == 0 {
		return 0, 0, &gemmcost.NoViableWGMError{Candidates: 0}
	}

	hits := make([]float64, len(wgmCandidates))
	for i, wgm := range wgmCandidates {
		hits[i] = gemmcost.EstimateL2Hit(h, gridM, gridN, tile.MTM, tile.MTN, tile.MTK, activeCU, wgm, elemBits)
	}
	bestIdx := floats.MaxIdx(hits)
	return wgmCandidates[bestIdx], hits[bestIdx], nil
}
