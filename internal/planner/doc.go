// Package planner builds the batch rename plan: it walks every value of
// every export entry in order, derives device ids, applies exclusions and
// name composition, detects target-name collisions across the whole batch,
// and returns the collision-free decision list plus run statistics.
package planner
