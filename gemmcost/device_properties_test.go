package gemmcost

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDeviceProperties(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "device.json")
	props := DeviceProperties{
		GCNArchName:         "gfx942:sramecc+:xnack-",
		MultiProcessorCount: 304,
		SharedMemPerBlock:   65536,
		ClockRateKHz:        1800000,
		MemoryClockRateKHz:  1600000,
		L2CacheSize:         4 * 1024 * 1024,
	}
	data, err := json.Marshal(props)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := LoadDeviceProperties(path)
	require.NoError(t, err)
	require.Equal(t, props, loaded)
}

func TestLoadDeviceProperties_MissingFile(t *testing.T) {
	_, err := LoadDeviceProperties("/nonexistent/path/device.json")
	require.Error(t, err)
}
