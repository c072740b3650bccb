package main

import (
	"context"

	"github.com/spf13/cobra"
)

var scanConfigPath string

var scanCommand = &cobra.Command{
	Use:   "scan",
	Short: "Process every document in the monitored directory once and exit",
	RunE:  runScan,
}

func init() {
	scanCommand.Flags().StringVar(&scanConfigPath, "config", "", "Path to config.json (optional)")
	rootCmd.AddCommand(scanCommand)
}

func runScan(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	a, err := newApp(ctx, scanConfigPath)
	if err != nil {
		return err
	}
	defer a.close()

	return a.processExisting(ctx)
}
