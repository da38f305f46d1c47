// cmd/root.go
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel          string
	deviceCatalogPath string
)

var rootCmd = &cobra.Command{
	Use:   "gemmcost",
	Short: "Analytical GEMM cost model and tile-search core for ranking GPU matmul kernel configurations",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if deviceCatalogPath != "" {
			if err := loadDeviceCatalogOverride(deviceCatalogPath); err != nil {
				logrus.Fatalf("Failed to load device catalog override: %v", err)
			}
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&deviceCatalogPath, "device-catalog", "", "Optional YAML override for the non-standard-CU device catalog")

	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(streamkCmd)
}
