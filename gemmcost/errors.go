package gemmcost

import "fmt"

// UnsupportedArchitectureError is returned when an architecture string does
// not resolve to a known Architecture (§4.C, §7).
type UnsupportedArchitectureError struct {
	Arch string
}

func (e *UnsupportedArchitectureError) Error() string {
	return fmt.Sprintf("gemmcost: unsupported architecture %q", e.Arch)
}

// NoViableTileError is raised when every candidate macro-tile fails the
// on-chip scratchpad capacity check (§4.G, §7).
type NoViableTileError struct {
	Candidates int
}

func (e *NoViableTileError) Error() string {
	return fmt.Sprintf("gemmcost: no viable macro-tile among %d candidates (all exceed LDS capacity)", e.Candidates)
}

// NoViableWGMError is raised when every candidate workgroup mapping fails
// the scratchpad capacity check (§4.H, §7).
type NoViableWGMError struct {
	Candidates int
}

func (e *NoViableWGMError) Error() string {
	return fmt.Sprintf("gemmcost: no viable WGM among %d candidates (all exceed LDS capacity)", e.Candidates)
}
