package naming

import (
	"regexp"
	"strings"
)

// Outcome classifies the result of composing one value's name.
type Outcome int

const (
	// Renamed means the candidate differs from the stored name.
	Renamed Outcome = iota
	// Unchanged means stored and candidate names are equal after
	// normalization; nothing to do.
	Unchanged
	// Missing means the device id is absent from the registry snapshot.
	Missing
)

// ComposeResult is the decision for one value. OldName and NewName are set
// only for Renamed.
type ComposeResult struct {
	Outcome Outcome
	OldName string
	NewName string
}

var reWhitespaceRun = regexp.MustCompile(`\s{2,}`)

// Normalize collapses runs of whitespace to single spaces and trims the
// ends. Used both while building candidates and for name comparison.
func Normalize(s string) string {
	return strings.TrimSpace(reWhitespaceRun.ReplaceAllString(s, " "))
}

// Candidate synthesizes the raw display name for one value: the non-blank
// parts of {location, device name, value label} joined with " - ".
// Whitespace-only parts are dropped entirely, never kept as empty segments.
func Candidate(loc, name, label string) string {
	var parts []string
	for _, p := range []string{loc, name, label} {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return Normalize(strings.Join(parts, " - "))
}

// Compose runs the full per-value naming decision:
//
//	candidate := rules(Candidate(loc, name, label))
//
// then reconciles against the stored name. found reports whether deviceID
// was present in the registry snapshot; stored is its current name. A
// leading "$" on the stored name is a registry convention marker (hidden
// device) and survives the rename. Comparison is on normalized forms; the
// returned NewName keeps the candidate as composed (post "$" fix).
func Compose(deviceID, loc, name, label string, rules []Rule, stored string, found bool) ComposeResult {
	candidate := Candidate(loc, name, label)
	candidate = Apply(deviceID, candidate, rules)

	if !found {
		return ComposeResult{Outcome: Missing}
	}

	if strings.HasPrefix(stored, "$") && !strings.HasPrefix(candidate, "$") {
		candidate = "$" + candidate
	}

	if Normalize(stored) == Normalize(candidate) {
		return ComposeResult{Outcome: Unchanged}
	}
	return ComposeResult{Outcome: Renamed, OldName: stored, NewName: candidate}
}
