package gemmcost

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArchNameToEnum(t *testing.T) {
	require.Equal(t, Gfx942, ArchNameToEnum("gfx942:sramecc+:xnack-"))
	require.Equal(t, Gfx942, ArchNameToEnum("gfx942"))
	require.Equal(t, Gfx950, ArchNameToEnum("gfx950"))
	require.Equal(t, Count, ArchNameToEnum("gfx1100"))
	require.Equal(t, Count, ArchNameToEnum(""))
}

func TestArchConstantsTable_ExactValues(t *testing.T) {
	gfx942 := archConstantsTable[Gfx942]
	require.Equal(t, 8, gfx942.NumXCDs)
	require.Equal(t, 17.0, gfx942.Mem1PerfRatio)
	require.InDelta(t, 1.21875121875121875*6, gfx942.Mem2PerfRatio, 1e-9)
	require.Equal(t, 4.0, gfx942.Mem3PerfRatio)
	require.Equal(t, 4, gfx942.ParallelMICU)
	require.Equal(t, 0.015, gfx942.PercentBWPerWG)
	require.Equal(t, 1.5, gfx942.MemClockRatio)

	gfx950 := archConstantsTable[Gfx950]
	require.Equal(t, 8, gfx950.NumXCDs)
	require.Equal(t, 17.0, gfx950.Mem1PerfRatio)
	require.InDelta(t, 1.21875121875121875*7, gfx950.Mem2PerfRatio, 1e-9)
	require.Equal(t, 4.0, gfx950.Mem3PerfRatio)
	require.Equal(t, 6, gfx950.ParallelMICU)
	require.Equal(t, 0.008, gfx950.PercentBWPerWG)
	require.Equal(t, 1.5, gfx950.MemClockRatio)
}

func TestInstructionLatencyTable_HasEntriesForBothArchs(t *testing.T) {
	require.GreaterOrEqual(t, len(instructionLatencyTable[Gfx942]), 20)
	require.GreaterOrEqual(t, len(instructionLatencyTable[Gfx950]), 20)
}
