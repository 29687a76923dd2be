package zwave

import (
	"errors"
	"regexp"
	"sort"
)

// ErrNoIdentifier is returned when no entry in the export exposes a device
// identifier, making base id resolution impossible.
var ErrNoIdentifier = errors.New("no device identifier found in export")

// reNodeSuffix matches the per-node suffix the gateway appends to its
// identifiers (e.g. "zwavegw_0xd6a2f7e3_node12" -> "_node12").
var reNodeSuffix = regexp.MustCompile(`_node[0-9]+$`)

// ResolveBaseID discovers the base identifier shared by every entry in one
// export. Entries are scanned in order; within an entry, discovery objects
// are scanned in sorted key order so resolution is deterministic. The first
// non-empty identifier found anywhere wins; its trailing node suffix is
// stripped. Returns ErrNoIdentifier when the scan finds nothing.
func ResolveBaseID(exp *Export) (string, error) {
	for _, entry := range exp.Entries {
		if len(entry.HassDevices) == 0 {
			continue
		}
		keys := make([]string, 0, len(entry.HassDevices))
		for k := range entry.HassDevices {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			ids := entry.HassDevices[k].DiscoveryPayload.Device.Identifiers
			if len(ids) == 0 || ids[0] == "" {
				continue
			}
			return reNodeSuffix.ReplaceAllString(ids[0], ""), nil
		}
	}
	return "", ErrNoIdentifier
}
