package registry

import (
	"fmt"
	"io"
	"strings"

	"github.com/backmassage/zwrename/internal/planner"
)

// UndoStatement restores one device's pre-run name.
type UndoStatement struct {
	DeviceID string
	Name     string
}

// UndoFor derives the inverse instruction set for a plan, in decision order.
// Replaying the statements in order against the post-run registry restores
// the pre-run names exactly (each device id appears at most once per plan).
func UndoFor(plan *planner.Plan) []UndoStatement {
	if len(plan.Decisions) == 0 {
		return nil
	}
	stmts := make([]UndoStatement, 0, len(plan.Decisions))
	for _, d := range plan.Decisions {
		stmts = append(stmts, UndoStatement{DeviceID: d.DeviceID, Name: d.OldName})
	}
	return stmts
}

// WriteUndoScript renders undo statements as a runnable SQL script.
func WriteUndoScript(w io.Writer, stmts []UndoStatement) error {
	if _, err := fmt.Fprintf(w, "-- zwrename undo script: %d statement(s)\nBEGIN TRANSACTION;\n", len(stmts)); err != nil {
		return err
	}
	for _, s := range stmts {
		_, err := fmt.Fprintf(w, "UPDATE DeviceStatus SET Name = '%s' WHERE DeviceID = '%s';\n",
			sqlQuote(s.Name), sqlQuote(s.DeviceID))
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "COMMIT;")
	return err
}

// sqlQuote doubles single quotes for SQL string literals.
func sqlQuote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
