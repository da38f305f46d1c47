package latency

import "github.com/gemmcost/gemmcost"

// layoutPenalty returns the multiplicative layout-alignment penalty for a
// macro-tile given the problem's transpose flags (§4.F step 4). The four
// transpose combinations each check a different pair of alignment
// conditions on A and B, and the two matching penalties multiply rather
// than replace each other — a macro-tile that fails alignment on both
// operands pays the penalty twice.
//
// includeTN controls whether the TN case is evaluated at all: compute
// latency applies it, memory latency does not (§4.F step 8 "TN is
// omitted").
func layoutPenalty(p gemmcost.Problem, mtM, mtN, mtK int, includeTN bool) float64 {
	bytesA := ceilBytes(p.ElemBitsA)
	bytesB := ceilBytes(p.ElemBitsB)

	switch {
	case p.TransA && !p.TransB: // TN
		if !includeTN {
			return 1.0
		}
		penalty := 1.0
		if (mtK*bytesA)%128 != 0 {
			penalty *= 1.5
		}
		if (mtK*bytesB)%128 != 0 {
			penalty *= 1.5
		}
		return penalty

	case !p.TransA && p.TransB: // NT
		penalty := 1.0
		if (mtM*bytesA)%128 != 0 {
			penalty *= 2
		}
		if (mtN*bytesB)%128 != 0 {
			penalty *= 2
		}
		return penalty

	case p.TransA && p.TransB: // TT
		penalty := 1.0
		if mtK*bytesA < 128 {
			penalty *= 2
		}
		if mtN*bytesB < 128 {
			penalty *= 2
		}
		return penalty

	default: // NN
		penalty := 1.0
		if mtM*bytesA < 128 {
			penalty *= 2
		}
		if mtK*bytesB < 128 {
			penalty *= 2
		}
		return penalty
	}
}

// ceilBytes converts a bit width to bytes, rounding up.
func ceilBytes(bits int) int {
	return int(gemmcost.CeilDiv(int64(bits), 8))
}
