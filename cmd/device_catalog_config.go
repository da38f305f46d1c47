package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gemmcost/gemmcost"
)

// deviceCatalogFile is the YAML shape of a --device-catalog override: a
// per-processor list of non-standard CU counts, curated by hand the same
// way the teacher's defaults.yaml lists per-model GPU defaults.
type deviceCatalogFile struct {
	Processors map[string][]int `yaml:"processors"`
}

// loadDeviceCatalogOverride reads a device-catalog YAML file with strict
// field checking and installs it as the package's non-standard-CU
// mapping, replacing the compiled-in defaults.
func loadDeviceCatalogOverride(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading device catalog %s: %w", path, err)
	}

	var file deviceCatalogFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return fmt.Errorf("parsing device catalog %s: %w", path, err)
	}

	catalog := make(map[string]map[int]bool, len(file.Processors))
	for processor, counts := range file.Processors {
		set := make(map[int]bool, len(counts))
		for _, c := range counts {
			set[c] = true
		}
		catalog[processor] = set
	}
	gemmcost.SetNonStandardCUCounts(catalog)
	return nil
}
