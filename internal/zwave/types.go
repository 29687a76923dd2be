// Package zwave models the gateway configuration export: an ordered list of
// device entries with their values and MQTT discovery metadata. The export
// is read-only input; nothing here writes it back.
package zwave

// Export is the parsed configuration export.
type Export struct {
	Entries []Entry
}

// Entry is one device record from the export. Loc and Name are optional;
// absent fields decode to the empty string.
type Entry struct {
	Loc         string                `json:"loc"`
	Name        string                `json:"name"`
	Values      []Value               `json:"values"`
	HassDevices map[string]HassDevice `json:"hassDevices"`
}

// Value is one property of an entry. ID is the property id (e.g.
// "38-1-currentValue"); Label is the human-readable property label.
type Value struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// HassDevice is one MQTT discovery object attached to an entry. Only the
// device identifiers are used here (for base id resolution).
type HassDevice struct {
	DiscoveryPayload DiscoveryPayload `json:"discovery_payload"`
}

// DiscoveryPayload is the discovery message body.
type DiscoveryPayload struct {
	Device DeviceInfo `json:"device"`
}

// DeviceInfo carries the gateway-assigned identifiers, typically
// ["<gateway>_<homeid>_node<n>"].
type DeviceInfo struct {
	Identifiers []string `json:"identifiers"`
}

// ValueCount returns the total number of values across all entries.
func (e *Export) ValueCount() int {
	n := 0
	for _, entry := range e.Entries {
		n += len(entry.Values)
	}
	return n
}
