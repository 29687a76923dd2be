package planner

import (
	"regexp"

	"github.com/backmassage/zwrename/internal/naming"
	"github.com/backmassage/zwrename/internal/zwave"
)

// Options holds the exclusion inputs for one planning pass.
type Options struct {
	ExcludeIDs     map[string]struct{} // Device ids skipped outright.
	ExcludePattern *regexp.Regexp      // Device ids matching are skipped. Nil disables.
}

func (o *Options) excluded(deviceID string) bool {
	if _, ok := o.ExcludeIDs[deviceID]; ok {
		return true
	}
	return o.ExcludePattern != nil && o.ExcludePattern.MatchString(deviceID)
}

// Build produces the rename plan for one run.
//
// Flow:
//  1. Resolve the shared base id once; its failure fails the whole pass
//  2. Walk every value of every entry in export order, derive the device id,
//     apply exclusions, compose the candidate name against the snapshot
//  3. Track proposed normalized names; a repeat proposal from a different id
//     records a collision pair against the first-seen id
//  4. Drop every decision on either side of any collision
//
// snapshot is mutated as decisions are drafted so a repeated device id later
// in the walk composes against the already-proposed name. Its lifetime is
// one planning+execution run.
func Build(exp *zwave.Export, snapshot map[string]string, rules []naming.Rule, opts Options) (*Plan, error) {
	baseID, err := zwave.ResolveBaseID(exp)
	if err != nil {
		return nil, err
	}

	plan := &Plan{BaseID: baseID}
	proposed := make(map[string]string)    // normalized name -> first device id
	colliding := make(map[string]struct{}) // device ids on either side of a collision

	for _, entry := range exp.Entries {
		for _, val := range entry.Values {
			id := naming.DeviceID(baseID, val.ID)

			if opts.excluded(id) {
				plan.Stats.Excluded++
				continue
			}

			stored, found := snapshot[id]
			res := naming.Compose(id, entry.Loc, entry.Name, val.Label, rules, stored, found)

			switch res.Outcome {
			case naming.Missing:
				plan.Stats.Missing++
			case naming.Unchanged:
				plan.Stats.Unchanged++
			case naming.Renamed:
				norm := naming.Normalize(res.NewName)
				if firstID, taken := proposed[norm]; taken && firstID != id {
					plan.Collisions = append(plan.Collisions, Collision{
						Name:   norm,
						First:  firstID,
						Second: id,
					})
					plan.Stats.Collisions++
					colliding[firstID] = struct{}{}
					colliding[id] = struct{}{}
					continue
				}
				proposed[norm] = id
				plan.Decisions = append(plan.Decisions, Decision{
					DeviceID: id,
					OldName:  res.OldName,
					NewName:  res.NewName,
				})
				snapshot[id] = res.NewName
			}
		}
	}

	if len(colliding) > 0 {
		kept := plan.Decisions[:0]
		for _, d := range plan.Decisions {
			if _, hit := colliding[d.DeviceID]; hit {
				continue
			}
			kept = append(kept, d)
		}
		plan.Decisions = kept
	}
	plan.Stats.Renamed = len(plan.Decisions)

	return plan, nil
}
