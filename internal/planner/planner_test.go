package planner

import (
	"errors"
	"reflect"
	"regexp"
	"testing"

	"github.com/backmassage/zwrename/internal/naming"
	"github.com/backmassage/zwrename/internal/zwave"
)

// discovery returns metadata resolving to the given base id.
func discovery(base string) map[string]zwave.HassDevice {
	return map[string]zwave.HassDevice{
		"main": {
			DiscoveryPayload: zwave.DiscoveryPayload{
				Device: zwave.DeviceInfo{Identifiers: []string{base + "_node1"}},
			},
		},
	}
}

func lightEntry() zwave.Entry {
	return zwave.Entry{
		Loc:  "Room A",
		Name: "Light",
		Values: []zwave.Value{
			{ID: "38-1-currentValue", Label: "Current value"},
		},
		HassDevices: discovery("base"),
	}
}

func TestBuild_RenameWithRule(t *testing.T) {
	exp := &zwave.Export{Entries: []zwave.Entry{lightEntry()}}
	snapshot := map[string]string{"base_38-1-currentValue": "Old"}

	plan, err := Build(exp, snapshot, naming.DefaultRules, Options{})
	if err != nil {
		t.Fatal(err)
	}

	if plan.BaseID != "base" {
		t.Errorf("BaseID = %q, want %q", plan.BaseID, "base")
	}
	want := []Decision{{
		DeviceID: "base_38-1-currentValue",
		OldName:  "Old",
		NewName:  "Room A - Light",
	}}
	if !reflect.DeepEqual(plan.Decisions, want) {
		t.Errorf("Decisions = %+v, want %+v", plan.Decisions, want)
	}
	if plan.Stats.Renamed != 1 || plan.Stats.Unchanged != 0 {
		t.Errorf("Stats = %+v", plan.Stats)
	}
}

func TestBuild_MissingAndUnchanged(t *testing.T) {
	exp := &zwave.Export{Entries: []zwave.Entry{
		{
			Loc:  "Room A",
			Name: "Light",
			Values: []zwave.Value{
				{ID: "38-1-currentValue", Label: "Current value"}, // unchanged
				{ID: "38-1-targetValue", Label: "Target value"},   // missing
			},
			HassDevices: discovery("base"),
		},
	}}
	snapshot := map[string]string{"base_38-1-currentValue": "Room A - Light"}

	plan, err := Build(exp, snapshot, naming.DefaultRules, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Decisions) != 0 {
		t.Errorf("Decisions = %+v, want none", plan.Decisions)
	}
	if plan.Stats.Unchanged != 1 || plan.Stats.Missing != 1 || plan.Stats.Renamed != 0 {
		t.Errorf("Stats = %+v, want 1 unchanged / 1 missing", plan.Stats)
	}
}

func TestBuild_Exclusions(t *testing.T) {
	exp := &zwave.Export{Entries: []zwave.Entry{
		{
			Name: "Sensor",
			Values: []zwave.Value{
				{ID: "49-0-Air_temperature", Label: "Air temperature"},
				{ID: "49-0-Illuminance", Label: "Illuminance"},
				{ID: "38-1-currentValue", Label: "Current value"},
			},
			HassDevices: discovery("base"),
		},
	}}
	snapshot := map[string]string{
		"base_49-0-Air_temperature": "x",
		"base_49-0-Illuminance":     "y",
		"base_38-1-currentValue":    "z",
	}
	opts := Options{
		ExcludeIDs:     map[string]struct{}{"base_38-1-currentValue": {}},
		ExcludePattern: regexp.MustCompile(`_49-[0-9]+-Illuminance$`),
	}

	plan, err := Build(exp, snapshot, naming.DefaultRules, opts)
	if err != nil {
		t.Fatal(err)
	}
	if plan.Stats.Excluded != 2 {
		t.Errorf("Excluded = %d, want 2", plan.Stats.Excluded)
	}
	if len(plan.Decisions) != 1 || plan.Decisions[0].DeviceID != "base_49-0-Air_temperature" {
		t.Errorf("Decisions = %+v, want only the temperature value", plan.Decisions)
	}
}

func TestBuild_CollisionSymmetry(t *testing.T) {
	exp := &zwave.Export{Entries: []zwave.Entry{
		{
			Loc:  "Kitchen",
			Name: "Sensor",
			Values: []zwave.Value{
				{ID: "49-0-Temp", Label: "Temp"},
				{ID: "49-1-Temp", Label: "Temp"},
			},
			HassDevices: discovery("base"),
		},
	}}
	snapshot := map[string]string{
		"base_49-0-Temp": "old a",
		"base_49-1-Temp": "old b",
	}

	plan, err := Build(exp, snapshot, naming.DefaultRules, Options{})
	if err != nil {
		t.Fatal(err)
	}

	if len(plan.Decisions) != 0 {
		t.Errorf("Decisions = %+v, want none (both collision sides dropped)", plan.Decisions)
	}
	if len(plan.Collisions) != 1 {
		t.Fatalf("Collisions = %+v, want exactly one record", plan.Collisions)
	}
	c := plan.Collisions[0]
	if c.Name != "Kitchen - Sensor - Temp" || c.First != "base_49-0-Temp" || c.Second != "base_49-1-Temp" {
		t.Errorf("Collision = %+v", c)
	}
	if plan.Stats.Renamed != 0 || plan.Stats.Collisions != 1 {
		t.Errorf("Stats = %+v", plan.Stats)
	}
}

func TestBuild_ThreeWayCollision(t *testing.T) {
	exp := &zwave.Export{Entries: []zwave.Entry{
		{
			Name: "Dup",
			Values: []zwave.Value{
				{ID: "1-0-a", Label: "Same"},
				{ID: "1-0-b", Label: "Same"},
				{ID: "1-0-c", Label: "Same"},
			},
			HassDevices: discovery("base"),
		},
	}}
	snapshot := map[string]string{
		"base_1-0-a": "old a",
		"base_1-0-b": "old b",
		"base_1-0-c": "old c",
	}

	plan, err := Build(exp, snapshot, naming.DefaultRules, Options{})
	if err != nil {
		t.Fatal(err)
	}

	// Every proposal after the first is recorded against the first-seen id;
	// all three are excluded.
	if len(plan.Collisions) != 2 {
		t.Fatalf("Collisions = %+v, want 2 records", plan.Collisions)
	}
	for i, c := range plan.Collisions {
		if c.First != "base_1-0-a" {
			t.Errorf("collision %d recorded against %q, want first-seen base_1-0-a", i, c.First)
		}
	}
	if len(plan.Decisions) != 0 {
		t.Errorf("Decisions = %+v, want none", plan.Decisions)
	}
}

func TestBuild_CollisionDoesNotDropUnrelated(t *testing.T) {
	exp := &zwave.Export{Entries: []zwave.Entry{
		{
			Name: "Mixed",
			Values: []zwave.Value{
				{ID: "1-0-a", Label: "Same"},
				{ID: "1-0-unique", Label: "Unique"},
				{ID: "1-0-b", Label: "Same"},
			},
			HassDevices: discovery("base"),
		},
	}}
	snapshot := map[string]string{
		"base_1-0-a":      "old a",
		"base_1-0-unique": "old u",
		"base_1-0-b":      "old b",
	}

	plan, err := Build(exp, snapshot, naming.DefaultRules, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Decisions) != 1 || plan.Decisions[0].DeviceID != "base_1-0-unique" {
		t.Errorf("Decisions = %+v, want only the unique value", plan.Decisions)
	}
	if plan.Stats.Renamed != 1 {
		t.Errorf("Renamed = %d, want 1 (collision sides not counted)", plan.Stats.Renamed)
	}
}

// Planning against a snapshot already holding the first plan's results must
// produce an empty second plan.
func TestBuild_Idempotent(t *testing.T) {
	exp := &zwave.Export{Entries: []zwave.Entry{
		lightEntry(),
		{
			Loc:  "Kitchen",
			Name: "Sensor",
			Values: []zwave.Value{
				{ID: "49-0-Air_temperature", Label: "Air temperature"},
			},
			HassDevices: discovery("base"),
		},
	}}
	snapshot := map[string]string{
		"base_38-1-currentValue":    "Old light",
		"base_49-0-Air_temperature": "Old sensor",
	}

	first, err := Build(exp, snapshot, naming.DefaultRules, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if first.Stats.Renamed != 2 {
		t.Fatalf("first pass Renamed = %d, want 2", first.Stats.Renamed)
	}

	// Build mutates the snapshot as it drafts decisions, so the same map
	// already reflects the first plan.
	second, err := Build(exp, snapshot, naming.DefaultRules, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(second.Decisions) != 0 {
		t.Errorf("second pass Decisions = %+v, want none", second.Decisions)
	}
	if second.Stats.Unchanged != 2 {
		t.Errorf("second pass Stats = %+v, want 2 unchanged", second.Stats)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	exp := &zwave.Export{Entries: []zwave.Entry{
		lightEntry(),
		{
			Name: "Dup",
			Values: []zwave.Value{
				{ID: "1-0-a", Label: "Same"},
				{ID: "1-0-b", Label: "Same"},
			},
		},
	}}
	base := map[string]string{
		"base_38-1-currentValue": "Old",
		"base_1-0-a":             "old a",
		"base_1-0-b":             "old b",
	}

	clone := func() map[string]string {
		m := make(map[string]string, len(base))
		for k, v := range base {
			m[k] = v
		}
		return m
	}

	first, err := Build(exp, clone(), naming.DefaultRules, Options{})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		got, err := Build(exp, clone(), naming.DefaultRules, Options{})
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, first) {
			t.Fatalf("plan differs between runs:\n%+v\nvs\n%+v", got, first)
		}
	}
}

func TestBuild_ResolutionFailure(t *testing.T) {
	exp := &zwave.Export{Entries: []zwave.Entry{
		{Name: "No discovery", Values: []zwave.Value{{ID: "1-0-a", Label: "X"}}},
	}}

	_, err := Build(exp, map[string]string{}, naming.DefaultRules, Options{})
	if !errors.Is(err, zwave.ErrNoIdentifier) {
		t.Errorf("Build() error = %v, want ErrNoIdentifier", err)
	}
}

// Decisions must come out in discovery order: entry order, then value order.
func TestBuild_OrderPreserved(t *testing.T) {
	exp := &zwave.Export{Entries: []zwave.Entry{
		{
			Name:        "B",
			Values:      []zwave.Value{{ID: "2-0-x", Label: "X"}, {ID: "2-0-y", Label: "Y"}},
			HassDevices: discovery("base"),
		},
		{
			Name:   "A",
			Values: []zwave.Value{{ID: "1-0-x", Label: "X"}},
		},
	}}
	snapshot := map[string]string{
		"base_2-0-x": "old1",
		"base_2-0-y": "old2",
		"base_1-0-x": "old3",
	}

	plan, err := Build(exp, snapshot, naming.DefaultRules, Options{})
	if err != nil {
		t.Fatal(err)
	}
	wantOrder := []string{"base_2-0-x", "base_2-0-y", "base_1-0-x"}
	if len(plan.Decisions) != len(wantOrder) {
		t.Fatalf("got %d decisions, want %d", len(plan.Decisions), len(wantOrder))
	}
	for i, id := range wantOrder {
		if plan.Decisions[i].DeviceID != id {
			t.Errorf("decision %d = %q, want %q", i, plan.Decisions[i].DeviceID, id)
		}
	}
}
