// Package pipeline orchestrates one rename run: load the export and rules,
// snapshot the registry, build the plan, execute (or dry-run) it, emit the
// undo script, and report the summary.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/backmassage/zwrename/internal/config"
	"github.com/backmassage/zwrename/internal/display"
	"github.com/backmassage/zwrename/internal/logging"
	"github.com/backmassage/zwrename/internal/naming"
	"github.com/backmassage/zwrename/internal/planner"
	"github.com/backmassage/zwrename/internal/registry"
	"github.com/backmassage/zwrename/internal/zwave"
)

// Run is the top-level batch entry point. It returns a non-nil error only
// for phase failures (resolution, snapshot, mutation); per-value conditions
// (missing, unchanged, excluded, collisions) are counters in the plan stats.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	// --- Load inputs ---
	exp, err := zwave.LoadExport(cfg.ExportPath)
	if err != nil {
		log.Error("%v", err)
		return err
	}
	log.Info("Export: %d entries, %d values", len(exp.Entries), exp.ValueCount())

	rules, ruleErr := naming.LoadRules(cfg.RulesFile)
	if ruleErr != nil {
		log.Warn("%v; using built-in rules", ruleErr)
	}
	log.Debug(cfg.Verbose, "Rules: %s", display.FormatCount(len(rules), "rule"))

	// --- Snapshot the registry ---
	st, err := registry.Open(cfg.DatabasePath)
	if err != nil {
		log.Error("%v", err)
		return err
	}
	defer st.Close()

	snapshot, err := st.Snapshot(ctx)
	if err != nil {
		log.Error("%v", err)
		return err
	}
	log.Info("Registry: %s in snapshot", display.FormatCount(len(snapshot), "device"))

	// --- Plan ---
	plan, err := planner.Build(exp, snapshot, rules, planner.Options{
		ExcludeIDs:     cfg.ExcludeSet(),
		ExcludePattern: cfg.ExcludeRegexp,
	})
	if err != nil {
		log.Error("Planning failed: %v", err)
		return err
	}
	logPlan(cfg, log, plan)

	// --- Execute ---
	res, err := registry.Execute(ctx, st, plan, snapshot, cfg.DryRun)
	if err != nil {
		plan.Stats.Errors++
		log.Error("%v", err)
		logSummary(cfg, log, plan, res)
		return err
	}

	if cfg.UndoScript != "" && !cfg.DryRun && len(plan.Decisions) > 0 {
		if err := writeUndoScript(cfg.UndoScript, plan); err != nil {
			log.Warn("Undo script: %v", err)
		} else {
			log.Info("Undo script: %s", cfg.UndoScript)
		}
	}

	logSummary(cfg, log, plan, res)
	return nil
}

// writeUndoScript renders the plan's inverse statements to path.
func writeUndoScript(path string, plan *planner.Plan) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := registry.WriteUndoScript(f, registry.UndoFor(plan)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// logPlan prints per-decision lines and collision warnings.
func logPlan(cfg *config.Config, log *logging.Logger, plan *planner.Plan) {
	log.Info("Base id: %s", plan.BaseID)

	verb := "Rename"
	if cfg.DryRun {
		verb = "[DRY] Would rename"
	}
	for _, d := range plan.Decisions {
		log.Info("%s: %s", verb, display.FormatRename(d.OldName, d.NewName))
		log.Debug(cfg.Verbose, "  device id: %s", d.DeviceID)
	}
	for _, c := range plan.Collisions {
		log.Warn("Collision on %q: %s vs %s (both skipped)", c.Name, c.First, c.Second)
	}
	fmt.Println()
}

// logSummary prints the final statistics breakdown.
func logSummary(cfg *config.Config, log *logging.Logger, plan *planner.Plan, res registry.Result) {
	s := plan.Stats

	log.Info(display.Rule(30))
	switch {
	case s.Errors > 0:
		log.Error("Aborted: no changes committed (%s planned)", display.FormatCount(len(plan.Decisions), "rename"))
	case cfg.DryRun:
		log.Success("[DRY] Would apply %s", display.FormatCount(res.Applied, "rename"))
	case res.Applied == 0:
		log.Success("Nothing to do")
	default:
		log.Success("Applied %s", display.FormatCount(res.Applied, "rename"))
	}

	log.Info("Summary: %d renamed, %d unchanged, %d missing, %d excluded, %d collisions, %d errors",
		s.Renamed, s.Unchanged, s.Missing, s.Excluded, s.Collisions, s.Errors)
}
