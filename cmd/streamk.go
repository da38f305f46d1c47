package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gemmcost/gemmcost/streamk"
)

var (
	streamkProblemPath string
	streamkBlockPath   string
	streamkGridStart   int
	streamkGridEnd     int
)

var streamkCmd = &cobra.Command{
	Use:   "streamk",
	Short: "Select a Stream-K grid size (processor count) for a GEMM problem",
	Run: func(cmd *cobra.Command, args []string) {
		problem, err := loadProblem(streamkProblemPath)
		if err != nil {
			logrus.Fatalf("Failed to load problem: %v", err)
		}
		block, err := loadBlockShape(streamkBlockPath)
		if err != nil {
			logrus.Fatalf("Failed to load block shape: %v", err)
		}

		logrus.Infof("Sweeping grid sizes [%d,%d] for a %dx%dx%d (batch %d) problem",
			streamkGridStart, streamkGridEnd, problem.M, problem.N, problem.K, problem.Batch)

		result := streamk.SelectGridSize(problem, block, streamkGridStart, streamkGridEnd)
		fmt.Printf("Best grid size: %d (runtime=%.4f)\n", result.Grid, result.Runtime)
	},
}

func init() {
	streamkCmd.Flags().StringVar(&streamkProblemPath, "problem", "", "Path to a problem JSON file")
	streamkCmd.Flags().StringVar(&streamkBlockPath, "block", "", "Path to a Stream-K block-shape JSON file")
	streamkCmd.Flags().IntVar(&streamkGridStart, "grid-start", 1, "Smallest processor count to consider")
	streamkCmd.Flags().IntVar(&streamkGridEnd, "grid-end", 304, "Largest processor count to consider")

	_ = streamkCmd.MarkFlagRequired("problem")
	_ = streamkCmd.MarkFlagRequired("block")
}
