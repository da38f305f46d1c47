package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gemmcost/gemmcost"
	"github.com/gemmcost/gemmcost/streamk"
)

// problemConfig is the on-disk JSON shape of a Problem, one GEMM shape a
// caller wants ranked.
type problemConfig struct {
	M     int64 `json:"m"`
	N     int64 `json:"n"`
	K     int64 `json:"k"`
	Batch int64 `json:"batch"`

	TransA bool `json:"trans_a"`
	TransB bool `json:"trans_b"`

	ElemBitsA   int `json:"elem_bits_a"`
	ElemBitsB   int `json:"elem_bits_b"`
	ElemBitsOut int `json:"elem_bits_out"`

	MxBlockSize int64 `json:"mx_block_size"`
}

func loadProblem(path string) (gemmcost.Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return gemmcost.Problem{}, fmt.Errorf("reading problem file %s: %w", path, err)
	}
	var cfg problemConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return gemmcost.Problem{}, fmt.Errorf("parsing problem file %s: %w", path, err)
	}
	return gemmcost.Problem{
		M: cfg.M, N: cfg.N, K: cfg.K, Batch: cfg.Batch,
		TransA: cfg.TransA, TransB: cfg.TransB,
		ElemBitsA: cfg.ElemBitsA, ElemBitsB: cfg.ElemBitsB, ElemBitsOut: cfg.ElemBitsOut,
		MxBlockSize: cfg.MxBlockSize,
	}, nil
}

// tileCandidatesFile is the YAML shape of a --tiles file: a hand-curated
// list of macro-tile candidates, the same convention the teacher uses for
// its defaults.yaml model list.
type tileCandidatesFile struct {
	Tiles []tileConfig `yaml:"tiles"`
}

type tileConfig struct {
	MTM       int `yaml:"mt_m"`
	MTN       int `yaml:"mt_n"`
	MTK       int `yaml:"mt_k"`
	MIM       int `yaml:"mi_m"`
	MIN       int `yaml:"mi_n"`
	MIK       int `yaml:"mi_k"`
	Occupancy int `yaml:"occupancy"`
}

func loadTileCandidates(path string) ([]gemmcost.MacroTile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tile candidates %s: %w", path, err)
	}
	var file tileCandidatesFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing tile candidates %s: %w", path, err)
	}

	tiles := make([]gemmcost.MacroTile, len(file.Tiles))
	for i, t := range file.Tiles {
		tiles[i] = gemmcost.MacroTile{
			MTM: t.MTM, MTN: t.MTN, MTK: t.MTK,
			MIM: t.MIM, MIN: t.MIN, MIK: t.MIK,
			Occupancy: t.Occupancy,
		}
	}
	return tiles, nil
}

// blockShapeConfig is the on-disk JSON shape of a Stream-K output-tile
// block (BLK_M, BLK_N, BLK_K).
type blockShapeConfig struct {
	BlkM int `json:"blk_m"`
	BlkN int `json:"blk_n"`
	BlkK int `json:"blk_k"`
}

func loadBlockShape(path string) (streamk.BlockShape, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return streamk.BlockShape{}, fmt.Errorf("reading block shape %s: %w", path, err)
	}
	var cfg blockShapeConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return streamk.BlockShape{}, fmt.Errorf("parsing block shape %s: %w", path, err)
	}
	return streamk.BlockShape{BlkM: cfg.BlkM, BlkN: cfg.BlkN, BlkK: cfg.BlkK}, nil
}
