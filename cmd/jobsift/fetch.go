package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jobsift/jobsift/internal/config"
	"github.com/jobsift/jobsift/internal/model"
	"github.com/jobsift/jobsift/internal/output"
	"github.com/jobsift/jobsift/internal/pipeline"
	"github.com/jobsift/jobsift/internal/retry"
	"github.com/jobsift/jobsift/internal/source"
	"github.com/spf13/cobra"
)

var (
	outPath        string
	limit          int
	query          string
	filterRelevant bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch jobs from all enabled sources and write a JSON file",
	RunE:  runFetch,
}

func init() {
	addFetchFlags(fetchCmd)
	rootCmd.AddCommand(fetchCmd)
}

// addFetchFlags registers the fetch flags; the root command carries the same
// set so `jobsift` with no subcommand behaves like `jobsift fetch`.
func addFetchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outPath, "out", "o", "jobs.json", "output JSON file path")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "max jobs to output (soft cap)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "optional search query passed to sources")
	cmd.Flags().BoolVar(&filterRelevant, "filter-relevant", false, "keep only hardware/electronics roles (default is to keep all)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sources, err := buildSources(cfg, logger)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(sources, logger)
	jobs, err := runner.Run(cmd.Context(), model.FetchOptions{
		Query:          query,
		Limit:          limit,
		FilterRelevant: filterRelevant,
	})
	if err != nil {
		return err
	}

	size, err := output.WriteJSON(outPath, jobs)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.Summary(len(jobs), outPath, size))
	return nil
}

// buildSources instantiates a connector for every enabled source, preserving
// config order since it decides interleave turns in the merge.
func buildSources(cfg *config.Config, logger *slog.Logger) ([]model.Source, error) {
	client := &http.Client{Timeout: cfg.HTTP.Timeout}
	policy := retry.Policy{MaxRetries: cfg.Retry.MaxRetries, BaseDelay: cfg.Retry.BaseDelay}

	var sources []model.Source
	for _, sc := range cfg.Sources {
		if !sc.Enabled {
			continue
		}
		switch sc.Name {
		case "remotive":
			sources = append(sources, source.NewRemotive(client, policy, logger))
		case "arbeitnow":
			sources = append(sources, source.NewArbeitnow(client, policy, logger))
		default:
			return nil, fmt.Errorf("unknown source %q", sc.Name)
		}
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no sources enabled")
	}
	return sources, nil
}
