// Package gemmcost provides the analytical GEMM cost model core: hardware
// descriptors, instruction-latency tables, primitive cost kernels, and
// cache-hit estimators used to rank candidate kernel tile configurations.
//
// # Reading Guide
//
// Start with these files to understand the value types:
//   - matrix_instruction.go: the MI_M/MI_N/MI_K/bits key used to index
//     per-architecture instruction latency
//   - arch_constants.go: per-architecture constants and instruction tables
//   - hardware.go: Hardware, the immutable composition of arch constants
//     and device-reported quantities
//   - problem.go: Problem, MacroTile, and ResultTuple value types
//
// # Architecture
//
// gemmcost defines the value types and the primitive/cache-hit estimators
// (components A–E, J of the cost model); the latency composition lives in
// gemmcost/latency, the tile search and K-split/WGM selectors live in
// gemmcost/search, and the independent Stream-K grid-size selector lives
// in gemmcost/streamk. All functions here are pure and side-effect free
// with respect to shared state, with two exceptions: Hardware's
// per-instance debug log, which is diagnostic only, and
// SetNonStandardCUCounts, which replaces the package-level device catalog.
package gemmcost
