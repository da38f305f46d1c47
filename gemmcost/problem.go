package gemmcost

// Problem describes a GEMM shape and its element widths (§3 "Problem"). A
// MxBlockSize of 0 disables scaled-datatype (MX) byte accounting.
type Problem struct {
	M, N, K, Batch int64

	TransA bool
	TransB bool

	ElemBitsA   int
	ElemBitsB   int
	ElemBitsOut int

	MxBlockSize int64
}

// MacroTile is one candidate tile configuration: macro-tile shape
// (MT_M, MT_N, MT_K), matrix-instruction shape (MI_M, MI_N, MI_K), and the
// occupancy hint the caller associates with it (§3 "MacroTile candidate").
// Callers are responsible for supplying MT_* as multiples of MI_*; this
// invariant is not re-checked here (it is a precondition of the search, not
// the value type).
type MacroTile struct {
	MTM, MTN, MTK int
	MIM, MIN, MIK int
	Occupancy     int
}

// DividesEvenly reports whether every macro-tile dimension is a multiple of
// its matching matrix-instruction dimension, the precondition MacroTile
// candidates are expected to satisfy.
func (t MacroTile) DividesEvenly() bool {
	return t.MIM > 0 && t.MIN > 0 && t.MIK > 0 &&
		t.MTM%t.MIM == 0 && t.MTN%t.MIN == 0 && t.MTK%t.MIK == 0
}

// ResultTuple is a ranked search result: predicted latency in cycles plus
// the MacroTile that produced it (§3 "ResultTuple").
type ResultTuple struct {
	LatencyCycles float64
	Tile          MacroTile
}
