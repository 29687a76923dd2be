package planner

// Decision is one planned rename for a single device id.
type Decision struct {
	DeviceID string
	OldName  string
	NewName  string
}

// Collision records two device ids whose candidate names normalize to the
// same target. Both sides are dropped from the final plan; First is the id
// that proposed the name first and stays authoritative in the proposed-name
// bookkeeping.
type Collision struct {
	Name   string // Normalized target name both ids proposed.
	First  string
	Second string
}

// Stats aggregates per-value outcomes across one planning pass.
type Stats struct {
	Renamed    int // Decisions surviving collision removal.
	Unchanged  int
	Missing    int
	Excluded   int
	Collisions int // Collision pairs recorded.
	Errors     int // Incremented by the caller on execution failure.
}

// Plan is the complete result of one planning pass. Decisions appear in
// discovery order (entry order, then value order within the entry), which
// fixes the order of log lines and undo statements downstream.
type Plan struct {
	BaseID     string
	Decisions  []Decision
	Collisions []Collision
	Stats      Stats
}
