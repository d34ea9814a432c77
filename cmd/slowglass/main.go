// Command slowglass is the CLI entrypoint for the slow-motion batch renderer.
//
// It parses flags, validates configuration, and either runs toolchain
// diagnostics (--check) or the collect → manifest → probe → render pipeline.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Strawby/slowglass/internal/check"
	"github.com/Strawby/slowglass/internal/config"
	"github.com/Strawby/slowglass/internal/display"
	"github.com/Strawby/slowglass/internal/logging"
	"github.com/Strawby/slowglass/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build", these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	config.ApplyEnv(&cfg)
	if err := config.ParseFlags(&cfg, version, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "slowglass: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "slowglass: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "slowglass: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available; all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(log) {
			return 1
		}
		return 0
	}

	inputAbs, err := filepath.Abs(cfg.InputDir)
	if err != nil {
		log.Error("Input not found: %s", cfg.InputDir)
		return 1
	}
	if fi, err := os.Stat(inputAbs); err != nil || !fi.IsDir() {
		log.Error("Input directory not found: %s", cfg.InputDir)
		return 1
	}
	cfg.InputDir = inputAbs

	log.Info("=== slowglass v%s (%s) ===", version, commit)
	log.Info("In:  %s", cfg.InputDir)
	log.Info("Out: %s", filepath.Join(cfg.InputDir, cfg.OutputName))
	log.Info("")

	// Fail fast if ffmpeg/ffprobe or the needed filters are unavailable.
	if err := check.CheckDeps(&cfg); err != nil {
		log.Error("%v", err)
		return 1
	}

	// Phase 3: Signal handling: cancel context on SIGINT/SIGTERM so the
	// encoder child is terminated; any partial output stays for inspection.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, stopping render...")
		cancel()
	}()

	// Phase 4: Run pipeline (collect → manifest → probe → render).
	if _, err := pipeline.Run(ctx, &cfg, log); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("Render interrupted")
		} else {
			log.Error("%v", err)
		}
		return 1
	}
	return 0
}
