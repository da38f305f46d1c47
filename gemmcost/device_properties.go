package gemmcost

import (
	"encoding/json"
	"fmt"
	"os"
)

// DeviceProperties is the device-reported quantity bundle an external
// driver collaborator supplies (§6 "Device-properties input bundle"). The
// core treats it as opaque input; obtaining it from an actual device is
// out of scope (§1).
type DeviceProperties struct {
	GCNArchName         string `json:"gcnArchName"`
	MultiProcessorCount int    `json:"multiProcessorCount"`
	SharedMemPerBlock   int64  `json:"sharedMemPerBlock"`
	ClockRateKHz        int64  `json:"clockRate_kHz"`
	MemoryClockRateKHz  int64  `json:"memoryClockRate_kHz"`
	L2CacheSize         int64  `json:"l2CacheSize"`
}

// LoadDeviceProperties reads and parses a DeviceProperties bundle from a
// JSON file, following the same read-file-then-unmarshal-then-wrap pattern
// used throughout the teacher's config loaders.
func LoadDeviceProperties(path string) (DeviceProperties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DeviceProperties{}, fmt.Errorf("read device properties %q: %w", path, err)
	}
	var props DeviceProperties
	if err := json.Unmarshal(data, &props); err != nil {
		return DeviceProperties{}, fmt.Errorf("parse device properties JSON: %w", err)
	}
	return props, nil
}
