package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into rules, exclusions, behavior, display, and utility.
// Color overrides (--color / --no-color) are applied after Parse so Config
// defaults hold unless set.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// version is shown in --version and help; override at build time with -ldflags "-X main.version=...".
var version = "1.0.0-dev"

// ParseFlags parses os.Args into cfg. On --help or --version it prints and exits.
// On error it returns non-nil (e.g. unknown flag, missing positional args).
func ParseFlags(cfg *Config) error {
	fs := flag.NewFlagSet("zwrename", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	var over overrideFlags
	var excludeRaw string

	defineRuleFlags(fs, cfg)
	defineExclusionFlags(fs, &excludeRaw, cfg)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &over)
	defineUtilityFlags(fs, cfg, &over)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyOverrideFlags(cfg, &over)
	cfg.ExcludeIDs = ParseExcludeIDs(excludeRaw)

	if over.showHelp {
		printUsage(fs)
		os.Exit(0)
	}
	if over.showVersion {
		fmt.Fprintln(os.Stdout, "zwrename v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// overrideFlags holds boolean flags that are applied after Parse.
// These either override a default (forceColor/noColor) or trigger exit (showHelp, showVersion).
type overrideFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineRuleFlags registers -r/--rules.
func defineRuleFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.RulesFile, "rules", "", "YAML rule document (built-in rules when omitted)")
	fs.StringVar(&cfg.RulesFile, "r", "", "Same as --rules")
}

// defineExclusionFlags registers --exclude and --exclude-pattern.
func defineExclusionFlags(fs *flag.FlagSet, excludeRaw *string, cfg *Config) {
	fs.StringVar(excludeRaw, "exclude", "", "Comma-separated device ids to skip")
	fs.StringVar(&cfg.ExcludePattern, "exclude-pattern", "", "Regex; matching device ids are skipped")
}

// defineBehaviorFlags registers dry-run and undo script output.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; do not touch the database")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.StringVar(&cfg.UndoScript, "undo", "", "Write an undo SQL script to this path")
	fs.StringVar(&cfg.UndoScript, "u", "", "Same as --undo")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, o *overrideFlags) {
	fs.BoolVar(&o.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&o.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, cfg *Config, o *overrideFlags) {
	fs.BoolVar(&o.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&o.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&o.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&o.showHelp, "h", false, "Same as --help")
}

// applyOverrideFlags copies override flag values into cfg.
func applyOverrideFlags(cfg *Config, o *overrideFlags) {
	if o.noColor {
		cfg.ColorMode = ColorNever
	} else if o.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets ExportPath and DatabasePath from the two positional args.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if len(args) != 2 {
		return fmt.Errorf("need exactly export_file and database_file")
	}
	cfg.ExportPath = strings.TrimSpace(args[0])
	cfg.DatabasePath = strings.TrimSpace(args[1])
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "zwrename v" + version + " — registry device renamer"},
		{"", ""},
		{"  zwrename [OPTIONS] <export_file> <database_file>", ""},
		{"", ""},
		{"Rules", ""},
		{"  -r, --rules <path>", "YAML rule document (default: built-in rules)"},
		{"", ""},
		{"Exclusions", ""},
		{"  --exclude <id,id,...>", "Skip these device ids"},
		{"  --exclude-pattern <re>", "Skip device ids matching regex"},
		{"", ""},
		{"Behavior", ""},
		{"  -d, --dry-run", "Preview only; do not touch the database"},
		{"  -u, --undo <path>", "Write an undo SQL script after applying"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Diagnostics (export, rules, database) and exit"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
