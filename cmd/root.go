package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Tajudeen-boss/Neptune-task/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "neptune",
	Short: "Local-services search with AI intent extraction",
	Long:  "Answers natural-language queries for local service providers: extracts structured intent via Claude, ranks the provider catalog by Neptune Score, and summarizes the results.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
