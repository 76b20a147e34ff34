// Command wallplanner is a thin JSON-in/JSON-out harness around the
// core solver: it reads a case+envelope document from stdin or a file
// argument, calls planner.Solve, and writes the resulting placements,
// wall sections, diagnostics, and violations as JSON to stdout. It is a
// producer/consumer of the solver, not part of it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/BudgetAppV2/truck-load-planner/internal/model"
	"github.com/BudgetAppV2/truck-load-planner/internal/planner"
	"github.com/BudgetAppV2/truck-load-planner/internal/project"
)

// inputDoc is the wire-level document this harness accepts.
type inputDoc struct {
	Cases        []model.CaseInput `json:"cases"`
	Envelope     model.TruckEnvelope `json:"envelope"`
	DeptPriority map[string]int    `json:"dept_priority,omitempty"`
	KBPatterns   []model.KBPattern `json:"kb_patterns,omitempty"`
	Config       *model.Config     `json:"config,omitempty"`
}

func main() {
	var verbose bool
	var configPath string
	var saveConfig bool
	flag.BoolVar(&verbose, "v", false, "emit debug-level diagnostics to stderr")
	flag.StringVar(&configPath, "config", "", "load persisted tuning config from this JSON file (defaults to project.DefaultConfigPath() when unset)")
	flag.BoolVar(&saveConfig, "save-config", false, "persist the effective config to -config (or the default path) before solving")
	flag.Parse()

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, configPath, saveConfig); err != nil {
		fmt.Fprintln(os.Stderr, "wallplanner:", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, configPath string, saveConfig bool) error {
	var r io.Reader = os.Stdin
	if args := flag.Args(); len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var doc inputDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse input: %w", err)
	}

	path := configPath
	if path == "" {
		path = project.DefaultConfigPath()
	}

	cfg, err := project.LoadConfig(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if doc.Config != nil {
		cfg = *doc.Config
	}
	if doc.Envelope.Width > 0 {
		cfg.Envelope = doc.Envelope
	}
	if doc.DeptPriority != nil {
		cfg.DeptPriority = doc.DeptPriority
	}
	if doc.KBPatterns != nil {
		cfg.KBPatterns = doc.KBPatterns
	}

	if saveConfig {
		if err := project.SaveConfig(path, cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
	}

	cases := model.NormalizeCases(doc.Cases)

	result, err := planner.Solve(cases, cfg, logger)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
