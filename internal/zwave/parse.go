package zwave

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadExport reads and parses a gateway export file. The export is a JSON
// array of entries; node-id gaps appear as nulls and are dropped so that
// Entries holds only real records, in file order.
func LoadExport(path string) (*Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}
	return ParseExport(data)
}

// ParseExport parses raw export JSON. Split from LoadExport so tests and
// callers holding bytes can parse directly.
func ParseExport(data []byte) (*Export, error) {
	var raw []*Entry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}

	exp := &Export{}
	for _, e := range raw {
		if e == nil {
			continue
		}
		exp.Entries = append(exp.Entries, *e)
	}
	return exp, nil
}
