// Package search implements the macro-tile search and the K-split and
// WGM selectors that rank MacroTile candidates against a Problem (§4.G,
// §4.H). It is built on top of gemmcost and gemmcost/latency; it has no
// knowledge of Stream-K, which lives independently in gemmcost/streamk.
package search
