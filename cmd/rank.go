package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gemmcost/gemmcost"
	"github.com/gemmcost/gemmcost/search"
)

var (
	rankDevicePath   string
	rankProblemPath  string
	rankTilesPath    string
	rankWGM          int
	rankBiggestSplit int
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank candidate macro-tiles for a GEMM problem on a device",
	Run: func(cmd *cobra.Command, args []string) {
		props, err := gemmcost.LoadDeviceProperties(rankDevicePath)
		if err != nil {
			logrus.Fatalf("Failed to load device properties: %v", err)
		}
		hw, err := gemmcost.NewHardwareFromDeviceProperties(props)
		if err != nil {
			logrus.Fatalf("Failed to build hardware model: %v", err)
		}

		problem, err := loadProblem(rankProblemPath)
		if err != nil {
			logrus.Fatalf("Failed to load problem: %v", err)
		}

		tiles, err := loadTileCandidates(rankTilesPath)
		if err != nil {
			logrus.Fatalf("Failed to load tile candidates: %v", err)
		}

		logrus.Infof("Ranking %d candidate tiles for a %dx%dx%d (batch %d) problem on %s",
			len(tiles), problem.M, problem.N, problem.K, problem.Batch, hw.Arch)

		results, err := search.SearchMacroTiles(hw, problem, rankWGM, tiles)
		if err != nil {
			logrus.Fatalf("Macro-tile search failed: %v", err)
		}

		for i, r := range results {
			fmt.Printf("%2d. latency=%.2f cycles  MT=(%d,%d,%d) MI=(%d,%d,%d)\n",
				i+1, r.LatencyCycles, r.Tile.MTM, r.Tile.MTN, r.Tile.MTK, r.Tile.MIM, r.Tile.MIN, r.Tile.MIK)
		}

		best := results[0].Tile
		gridResult := search.SelectBestGridSize(hw, problem, best, rankWGM, rankBiggestSplit)
		fmt.Printf("\nBest K-split for top tile: split=%d grid=%d latency=%.2f cycles\n",
			gridResult.Split, gridResult.Grid, gridResult.BestLatency)
	},
}

func init() {
	rankCmd.Flags().StringVar(&rankDevicePath, "device", "", "Path to a device-properties JSON file")
	rankCmd.Flags().StringVar(&rankProblemPath, "problem", "", "Path to a problem JSON file")
	rankCmd.Flags().StringVar(&rankTilesPath, "tiles", "", "Path to a macro-tile candidates YAML file")
	rankCmd.Flags().IntVar(&rankWGM, "wgm", 1, "Workgroup mapping to evaluate candidates at")
	rankCmd.Flags().IntVar(&rankBiggestSplit, "biggest-split", 8, "Largest K-split factor to consider")

	_ = rankCmd.MarkFlagRequired("device")
	_ = rankCmd.MarkFlagRequired("problem")
	_ = rankCmd.MarkFlagRequired("tiles")
}
