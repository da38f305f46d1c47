package gemmcost

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewHardware_CUPerL2Invariant(t *testing.T) {
	h := NewHardware(Gfx942, 304, 65536, 8, 17, 7.3125, 4, 4*1024*1024, 1.8, 4, 0.015)
	require.Equal(t, h.NCU, h.CUPerL2*h.NumXCD)
}

func TestNewHardwareFromDeviceProperties(t *testing.T) {
	props := DeviceProperties{
		GCNArchName:         "gfx942:sramecc+:xnack-",
		MultiProcessorCount: 304,
		SharedMemPerBlock:   65536,
		ClockRateKHz:        1800000,
		MemoryClockRateKHz:  1600000,
		L2CacheSize:         4 * 1024 * 1024,
	}
	h, err := NewHardwareFromDeviceProperties(props)
	require.NoError(t, err)
	require.Equal(t, Gfx942, h.Arch)
	require.Equal(t, 304, h.NCU)
	require.InDelta(t, 1.8, h.ComputeClockGHz, 1e-9)
	require.Greater(t, h.Mem1PerfRatio, 0.0)
	require.Greater(t, h.Mem2PerfRatio, 0.0)
	require.Greater(t, h.Mem3PerfRatio, 0.0)
	require.Equal(t, h.NCU, h.CUPerL2*h.NumXCD)
}

func TestNewHardwareFromDeviceProperties_UnsupportedArch(t *testing.T) {
	props := DeviceProperties{GCNArchName: "gfx1100"}
	_, err := NewHardwareFromDeviceProperties(props)
	require.Error(t, err)
	var unsupported *UnsupportedArchitectureError
	require.ErrorAs(t, err, &unsupported)
	require.Equal(t, "gfx1100", unsupported.Arch)
}

func TestGetMILatency_KnownShape(t *testing.T) {
	h := testHardware()
	lat := h.GetMILatency(32, 32, 8, 16)
	require.Greater(t, lat, 0.0)
}

func TestGetMILatency_UnknownShapeUsesFallback(t *testing.T) {
	h := testHardware()
	lat := h.GetMILatency(999, 999, 999, 999)
	require.InDelta(t, instructionLatencyFallback/float64(h.ParallelMICU), lat, 1e-9)
}

func TestSafeRatio_ZeroDenominator(t *testing.T) {
	require.Equal(t, 0.0, safeRatio(100, 0))
	require.Equal(t, 0.0, safeRatio(100, -5))
	require.Equal(t, 50.0, safeRatio(100, 2))
}
