// Package check provides --check diagnostics: export readability, base id
// resolution, rule file loading, and registry reachability. Informational
// only; it does not stop on failure and never mutates anything.
package check

import (
	"context"

	"github.com/backmassage/zwrename/internal/config"
	"github.com/backmassage/zwrename/internal/naming"
	"github.com/backmassage/zwrename/internal/registry"
	"github.com/backmassage/zwrename/internal/zwave"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the --check flow: export parse and base id resolution, rule
// file loading, registry connectivity and schema.
func RunCheck(ctx context.Context, cfg *config.Config, log Logger) {
	log.Info("=== System Check ===")

	checkExport(cfg, log)
	checkRules(cfg, log)
	checkRegistry(ctx, cfg, log)
}

// checkExport parses the export and tries base id resolution.
func checkExport(cfg *config.Config, log Logger) {
	exp, err := zwave.LoadExport(cfg.ExportPath)
	if err != nil {
		log.Error("Export: %v", err)
		return
	}
	log.Success("Export: %d entries, %d values (%s)", len(exp.Entries), exp.ValueCount(), cfg.ExportPath)

	baseID, err := zwave.ResolveBaseID(exp)
	if err != nil {
		log.Error("Base id: %v", err)
		return
	}
	log.Success("Base id: %s", baseID)
}

// checkRules loads the rule set, reporting fallback to built-ins.
func checkRules(cfg *config.Config, log Logger) {
	rules, err := naming.LoadRules(cfg.RulesFile)
	if err != nil {
		log.Warn("Rules: %v (falling back to built-in rules)", err)
	}
	source := "built-in"
	if cfg.RulesFile != "" && err == nil {
		source = cfg.RulesFile
	}
	log.Success("Rules: %d loaded (%s)", len(rules), source)
	for _, r := range rules {
		log.Debug(cfg.Verbose, "  rule %s: id ~ %s", r.Name, r.ID.String())
	}
}

// checkRegistry opens the database and verifies the DeviceStatus table.
func checkRegistry(ctx context.Context, cfg *config.Config, log Logger) {
	st, err := registry.Open(cfg.DatabasePath)
	if err != nil {
		log.Error("Registry: %v", err)
		return
	}
	defer st.Close()

	ok, err := st.HasDeviceTable(ctx)
	if err != nil {
		log.Error("Registry: %v", err)
		return
	}
	if !ok {
		log.Error("Registry: DeviceStatus table not found in %s", cfg.DatabasePath)
		return
	}

	snap, err := st.Snapshot(ctx)
	if err != nil {
		log.Error("Registry: %v", err)
		return
	}
	log.Success("Registry: %d devices (%s)", len(snap), cfg.DatabasePath)
}
