package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List all configured sources",
	RunE:  runSources,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-15s %s\n", "Source", "Status")
	fmt.Fprintln(out, strings.Repeat("─", 22))

	enabled := 0
	for _, s := range cfg.Sources {
		status := "disabled"
		if s.Enabled {
			status = "enabled"
			enabled++
		}
		fmt.Fprintf(out, "%-15s %s\n", s.Name, status)
	}

	fmt.Fprintf(out, "\nTotal: %d sources (%d enabled)\n", len(cfg.Sources), enabled)
	return nil
}
