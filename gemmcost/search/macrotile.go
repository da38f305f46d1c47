package search

import (
	"sort"

	"github.com/gemmcost/gemmcost"
	"github.com/gemmcost/gemmcost/latency"
	"gonum.org/v1/gonum/floats"
)

// tieEpsilonCycles is the absolute tolerance, in cycle units, within which
// two candidates' latencies are considered tied (§4.G).
const tieEpsilonCycles = 10.0

// fitsScratchpad reports whether a macro-tile's A+B load footprint fits
// the device's LDS capacity (§4.G reject condition).
func fitsScratchpad(h gemmcost.Hardware, tile gemmcost.MacroTile, p gemmcost.Problem) bool {
	loads := gemmcost.ComputeALoads(tile.MTM, tile.MTK) + gemmcost.ComputeBLoads(tile.MTN, tile.MTK)
	bytesPerElem := gemmcost.CeilDiv(int64(p.ElemBitsA), 8)
	return loads*bytesPerElem <= h.LDSCapacity
}

// arithmeticIntensity returns the tile-shape arithmetic intensity used for
// tie-breaking (§4.G): 2·MT_M·MT_N·MT_K / (MT_M·MT_K + MT_N·MT_K + MT_M·MT_N).
func arithmeticIntensity(tile gemmcost.MacroTile) float64 {
	return gemmcost.ArithmeticIntensity(int64(tile.MTM), int64(tile.MTN), int64(tile.MTK), 1)
}

// SearchMacroTiles evaluates every candidate at split=1, drops candidates
// that overflow the device's scratchpad, sorts the survivors ascending by
// latency, and re-orders the leading tie group (candidates within
// tieEpsilonCycles of the minimum) by descending arithmetic intensity
// (§4.G). Returns *gemmcost.NoViableTileError if every candidate is
// rejected by the scratchpad check.
func SearchMacroTiles(h gemmcost.Hardware, p gemmcost.Problem, wgm int, candidates []gemmcost.MacroTile) ([]gemmcost.ResultTuple, error) {
	results := make([]gemmcost.ResultTuple, 0, len(candidates))
	for _, tile := range candidates {
		if !fitsScratchpad(h, tile, p) {
			continue
		}
		lat := latency.ComputeTotalLatency(h, p, tile, 1, wgm)
		results = append(results, gemmcost.ResultTuple{LatencyCycles: lat, Tile: tile})
	}
	if len(results) == 0 {
		return nil, &gemmcost.NoViableTileError{Candidates: len(candidates)}
	}

	lats := make([]float64, len(results))
	idx := make([]int, len(results))
	for i, r := range results {
		lats[i] = r.LatencyCycles
		idx[i] = i
	}
	floats.Argsort(lats, idx)
	sorted := make([]gemmcost.ResultTuple, len(results))
	for i, j := range idx {
		sorted[i] = results[j]
	}

	tieEnd := 1
	minLatency := sorted[0].LatencyCycles
	for tieEnd < len(sorted) && sorted[tieEnd].LatencyCycles-minLatency < tieEpsilonCycles {
		tieEnd++
	}
	if tieEnd > 1 {
		group := sorted[:tieEnd]
		sort.SliceStable(group, func(i, j int) bool {
			return arithmeticIntensity(group[i].Tile) > arithmeticIntensity(group[j].Tile)
		})
	}

	return sorted, nil
}

// PickBestTileWithDimensionPriority orders candidates by the larger of
// (M, N) first, then the other, then K — an alternative tie-breaker used
// when dimension asymmetry is known to dominate over the latency-driven
// ranking of SearchMacroTiles (§4.G "pick_best_tile_with_dimension_priority").
// It does not filter by scratchpad capacity or compute latency; it is a
// pure ordering over the supplied candidates.
func PickBestTileWithDimensionPriority(p gemmcost.Problem, candidates []gemmcost.MacroTile) []gemmcost.MacroTile {
	sorted := make([]gemmcost.MacroTile, len(candidates))
	copy(sorted, candidates)

	primary := func(t gemmcost.MacroTile) int { return t.MTM }
	secondary := func(t gemmcost.MacroTile) int { return t.MTN }
	if p.N > p.M {
		primary, secondary = secondary, primary
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if primary(sorted[i]) != primary(sorted[j]) {
			return primary(sorted[i]) > primary(sorted[j])
		}
		if secondary(sorted[i]) != secondary(sorted[j]) {
			return secondary(sorted[i]) > secondary(sorted[j])
		}
		return sorted[i].MTK > sorted[j].MTK
	})
	return sorted
}
