package gemmcost

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsStandardCU(t *testing.T) {
	require.False(t, IsStandardCU("gfx90a", 104))
	require.True(t, IsStandardCU("gfx90a", 110))
	require.False(t, IsStandardCU("gfx942", 80))
	require.True(t, IsStandardCU("gfx942", 304))
	require.True(t, IsStandardCU("gfx1100", 999)) // unknown processor: no restrictions known
}

func TestRunsKernelTargeting(t *testing.T) {
	require.True(t, Gfx942Family.RunsKernelTargeting(Gfx900))
	require.False(t, Gfx942Family.RunsKernelTargeting(Gfx803))
	require.True(t, Gfx942Family.RunsKernelTargeting(Gfx942Family))
	require.False(t, Gfx803.RunsKernelTargeting(Gfx900))
	require.True(t, Gfx803.RunsKernelTargeting(Gfx803))
}

func TestDeviceFamilyFromName(t *testing.T) {
	require.Equal(t, Gfx942Family, DeviceFamilyFromName("gfx942"))
	require.Equal(t, DeviceFamilyCount, DeviceFamilyFromName("gfx1100"))
}
