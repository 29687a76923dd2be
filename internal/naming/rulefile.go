package naming

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// ruleDoc is one rule object in an external YAML rule document.
type ruleDoc struct {
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"` // Device-id regex.
	Replace     string `yaml:"replace"` // Text regex matched in the candidate name.
	With        string `yaml:"with"`    // Replacement for matches.
	Description string `yaml:"description"`
}

// LoadRules loads an ordered rule list from a YAML document. Any failure
// (missing path given, unreadable file, malformed YAML, uncompilable
// pattern, empty list) is non-fatal: the built-in table is returned together
// with an error describing the fallback reason, which the caller reports as
// a warning. A nil error means the file loaded cleanly. An empty path means
// "no file": the built-in table is returned with no error.
func LoadRules(path string) ([]Rule, error) {
	if path == "" {
		return DefaultRules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultRules, fmt.Errorf("rule file: %w", err)
	}

	var docs []ruleDoc
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return DefaultRules, fmt.Errorf("rule file %s: %w", path, err)
	}
	if len(docs) == 0 {
		return DefaultRules, errors.New("rule file " + path + ": no rules defined")
	}

	rules := make([]Rule, 0, len(docs))
	for i, d := range docs {
		idRe, err := regexp.Compile(d.Pattern)
		if err != nil {
			return DefaultRules, fmt.Errorf("rule %d (%s): id pattern: %w", i+1, d.Name, err)
		}
		textRe, err := regexp.Compile(d.Replace)
		if err != nil {
			return DefaultRules, fmt.Errorf("rule %d (%s): text pattern: %w", i+1, d.Name, err)
		}
		rules = append(rules, Rule{
			Name:    d.Name,
			ID:      idRe,
			Text:    textRe,
			Replace: d.With,
		})
	}
	return rules, nil
}
