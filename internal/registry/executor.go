package registry

import (
	"context"
	"fmt"

	"github.com/backmassage/zwrename/internal/planner"
)

// NameStore is the mutation capability the executor needs. *Store satisfies
// it; tests substitute an in-memory implementation.
type NameStore interface {
	Apply(ctx context.Context, decisions []planner.Decision) (int, error)
}

// Result is the outcome of one execution pass. A dry run reports every
// decision as hypothetically applied; a failed real run reports zero applied
// together with a non-nil error from Execute, keeping "nothing needed
// changing" and "changes planned but aborted" distinguishable.
type Result struct {
	Applied int
	DryRun  bool
}

// Execute applies the plan's decisions to the store as one all-or-nothing
// unit, or simulates the same in dry-run mode. On success the in-memory
// snapshot is updated so later same-key lookups in this run see the new
// names; on failure the store is rolled back and the snapshot is left
// exactly as it was.
func Execute(ctx context.Context, st NameStore, plan *planner.Plan, snapshot map[string]string, dryRun bool) (Result, error) {
	if dryRun {
		return Result{Applied: len(plan.Decisions), DryRun: true}, nil
	}

	applied, err := st.Apply(ctx, plan.Decisions)
	if err != nil {
		return Result{}, fmt.Errorf("rename batch aborted: %w", err)
	}

	if snapshot != nil {
		for _, d := range plan.Decisions {
			snapshot[d.DeviceID] = d.NewName
		}
	}
	return Result{Applied: applied}, nil
}
