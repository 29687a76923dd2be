// Command zwrename is the entrypoint for the registry device renamer CLI.
// It parses flags, validates config, and either runs diagnostics (--check)
// or the plan/execute rename pipeline.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/backmassage/zwrename/internal/check"
	"github.com/backmassage/zwrename/internal/config"
	"github.com/backmassage/zwrename/internal/display"
	"github.com/backmassage/zwrename/internal/logging"
	"github.com/backmassage/zwrename/internal/pipeline"
)

// version is set at build time via -ldflags (e.g. Makefile).
var version = "1.0.0-dev"

func main() {
	// 1. Load config from defaults and CLI flags; exit on parse or validation error.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "zwrename: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "zwrename: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zwrename: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	display.PrintBanner()
	ctx := context.Background()

	// 2. If user asked for diagnostics, run them and exit successfully.
	if cfg.CheckOnly {
		check.RunCheck(ctx, &cfg, log)
		os.Exit(0)
	}

	log.Info("=== zwrename v%s ===", version)
	log.Info("Export:   %s", cfg.ExportPath)
	log.Info("Registry: %s", cfg.DatabasePath)
	if cfg.DryRun {
		log.Warn("DRY RUN")
	}
	log.Info("")

	// 3. Run the pipeline; phase failures (resolution, snapshot, mutation)
	// surface here as a non-zero exit.
	if err := pipeline.Run(ctx, &cfg, log); err != nil {
		os.Exit(1)
	}
}
