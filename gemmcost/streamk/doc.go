// Package streamk implements the Stream-K grid-size selector (§4.I): a
// closed-form linear cost model over candidate processor counts, with a
// v2 cache-imbalance penalty layered on top. It is deliberately
// independent of gemmcost/latency and gemmcost/search — Stream-K grid
// selection never consults the instruction-latency table or the cache-hit
// estimators, only tile/iteration counts.
package streamk
