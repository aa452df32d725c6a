package main

import (
	"log/slog"
	"os"

	"github.com/jobsift/jobsift/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "jobsift",
	Short: "Fetch and normalize job postings from multiple sources",
	Long:  "jobsift fetches postings from public job-listing APIs, normalizes them into one stable schema and writes a merged, deduplicated JSON file.",
	// Default to `fetch` so that `jobsift --out jobs.json` just works.
	RunE: runFetch,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: JOBSIFT_CONFIG env var, else built-in defaults)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	addFetchFlags(rootCmd)
}

// loadConfig resolves the config path and parses it. Without an explicit
// path or JOBSIFT_CONFIG env var the built-in defaults are used.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = os.Getenv("JOBSIFT_CONFIG")
	}
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}
