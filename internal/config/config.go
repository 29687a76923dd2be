// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. Defaults match the legacy rename script behavior for parity.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths (set from positional args).
	ExportPath   string // Gateway configuration export (JSON).
	DatabasePath string // Registry database (SQLite file).

	// Rule set.
	RulesFile string // Optional YAML rule document; built-in rules when empty.

	// Exclusions.
	ExcludeIDs     []string // Device ids skipped outright.
	ExcludePattern string   // Regex; matching device ids are skipped.

	// Compiled form of ExcludePattern, populated by Validate. Nil when no
	// pattern was given.
	ExcludeRegexp *regexp.Regexp

	// Behavior flags.
	DryRun     bool
	UndoScript string // Optional path for the generated undo SQL script.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults applied. Used as the base
// before [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		DryRun:    false,
		Verbose:   false,
		ColorMode: ColorAuto,
		CheckOnly: false,
	}
}

// ParseExcludeIDs splits a comma-separated id list, trimming whitespace and
// dropping empty items.
func ParseExcludeIDs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}

// ExcludeSet returns the explicit exclusion ids as a set for O(1) lookup.
func (c *Config) ExcludeSet() map[string]struct{} {
	if len(c.ExcludeIDs) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(c.ExcludeIDs))
	for _, id := range c.ExcludeIDs {
		set[id] = struct{}{}
	}
	return set
}

// Validate checks enum fields, compiles the exclude pattern, and requires
// both positional paths.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.ExcludePattern != "" {
		re, err := regexp.Compile(c.ExcludePattern)
		if err != nil {
			return fmt.Errorf("invalid exclude pattern %q: %v", c.ExcludePattern, err)
		}
		c.ExcludeRegexp = re
	}

	if c.ExportPath == "" || c.DatabasePath == "" {
		return errors.New("need exactly export_file and database_file")
	}
	return nil
}
