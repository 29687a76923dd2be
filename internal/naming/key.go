package naming

import "strings"

// DeviceID derives the registry key for one value: "<base>_<valueID>" with
// every space replaced by an underscore. This is the key space the registry
// snapshot is loaded under, so the derivation must stay in lockstep with
// what the gateway writes into the database.
func DeviceID(baseID, valueID string) string {
	return strings.ReplaceAll(baseID+"_"+valueID, " ", "_")
}
