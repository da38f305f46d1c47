// Package latency implements the analytical latency composer (§4.F):
// per-tile compute latency, per-tile memory latency with multi-level
// cache-hit-driven tiering, and whole-problem latency combining both with
// prologue/epilogue and K-split reduction cost. It consumes gemmcost's
// cache-hit estimators and instruction-latency lookup; the macro-tile
// search and K-split selector in gemmcost/search build on top of
// ComputeTotalLatency, while the WGM selector there calls
// gemmcost.EstimateL2Hit directly.
package latency
