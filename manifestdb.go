// This package contains all the types for the passenger manifest database.
// No HTTP or cloud imports; those live in source/, report/ and ui/.
package manifestdb

// The single-letter boarding-port codes found in raw manifests, and the
// city names they normalize to. Any other non-blank value passes through
// unchanged.
var PortNames = map[string]string{
	"S": "Southampton",
	"C": "Cherbourg",
	"Q": "Queenstown",
}

// Labels for the three passenger classes, keyed by class number.
var ClassLabels = map[int64]string{
	1: "1st Class",
	2: "2nd Class",
	3: "3rd Class",
}

// An AgeBand is a half-open interval [Min,Max) of ages.
type AgeBand struct {
	Label    string
	Min, Max float64
}

// The fixed age bands used by the by-age-group breakdown, in display order.
// The final band is open-ended.
var AgeBands = []AgeBand{
	{"Child (0–12)", 0, 12},
	{"Teen (13–18)", 12, 18},
	{"Young Adult (19–35)", 18, 35},
	{"Adult (36–60)", 35, 60},
	{"Senior (61+)", 60, 1e9},
}

func (b AgeBand) Contains(age float64) bool {
	return age >= b.Min && age < b.Max
}
