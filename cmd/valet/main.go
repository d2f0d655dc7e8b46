package main

import (
	"os"

	"valet/internal/logger"

	"github.com/spf13/cobra"
)

func main() {
	logger.Init()
	rootCmd := &cobra.Command{
		Use:   "valet",
		Short: "Valet runs a pair of personal assistants: a job-search helper and a credit-card helper",
	}

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(gatewayCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
