package naming

import "regexp"

// Rule pairs an id-scoping regex with a text substitution. Rules are
// evaluated in order by [Apply]; the first rule whose ID pattern matches the
// device id fires, and evaluation stops. Rules are mutually exclusive per
// device, not cumulative.
type Rule struct {
	Name    string
	ID      *regexp.Regexp // Scopes the rule to matching device ids.
	Text    *regexp.Regexp // Applied to the candidate name.
	Replace string         // Literal replacement for Text matches.
}

// --- Compiled id patterns (command-class scoped) ---

var (
	reIDDimmerCurrent = regexp.MustCompile(`_38-[0-9]+-currentValue$`)
	reIDSwitchCurrent = regexp.MustCompile(`_37-[0-9]+-currentValue$`)
	reIDMeterWatts    = regexp.MustCompile(`_50-[0-9]+-value-66049$`)
	reIDMeterKWh      = regexp.MustCompile(`_50-[0-9]+-value-65537$`)
	reIDTemperature   = regexp.MustCompile(`_49-[0-9]+-Air_temperature$`)
	reIDIlluminance   = regexp.MustCompile(`_49-[0-9]+-Illuminance$`)
	reIDMotion        = regexp.MustCompile(`_113-[0-9]+-Home_Security-Motion_sensor_status$`)
)

// --- Compiled text patterns ---

var (
	reTextCurrentValue = regexp.MustCompile(` - Current value$`)
	reTextMeterWatts   = regexp.MustCompile(` - Electric Consumption \[W\]$`)
	reTextMeterKWh     = regexp.MustCompile(` - Electric Consumption \[kWh\]$`)
	reTextTemperature  = regexp.MustCompile(` - Air temperature$`)
	reTextIlluminance  = regexp.MustCompile(` - Illuminance$`)
	reTextMotion       = regexp.MustCompile(` - Motion sensor status$`)
)

// DefaultRules is the built-in ordered rule table. Dimmer and switch
// "Current value" labels are redundant and dropped outright; meter, sensor,
// and notification labels are shortened to their conventional abbreviations.
// Callers must treat the table as read-only.
var DefaultRules = []Rule{
	{"dimmer-current-value", reIDDimmerCurrent, reTextCurrentValue, ""},
	{"switch-current-value", reIDSwitchCurrent, reTextCurrentValue, ""},
	{"meter-watts", reIDMeterWatts, reTextMeterWatts, " [W]"},
	{"meter-kwh", reIDMeterKWh, reTextMeterKWh, " [kWh]"},
	{"air-temperature", reIDTemperature, reTextTemperature, " Temp"},
	{"illuminance", reIDIlluminance, reTextIlluminance, " Lux"},
	{"motion-sensor", reIDMotion, reTextMotion, " Motion"},
}

// Apply runs the first-match-wins rule loop: the first rule whose ID pattern
// matches deviceID has its Text->Replace substitution applied to name, and
// the result is returned immediately. When no rule matches, name is returned
// unchanged. At most one rule fires per device.
func Apply(deviceID, name string, rules []Rule) string {
	for _, r := range rules {
		if r.ID.MatchString(deviceID) {
			return r.Text.ReplaceAllString(name, r.Replace)
		}
	}
	return name
}
