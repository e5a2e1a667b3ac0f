package report

import (
	"sort"

	mdb "github.com/skypies/manifestdb"
)

// Survival percentages in the breakdowns use the count of rows with a
// non-null survived value as the denominator (mirroring a mean that skips
// nulls), and are 0 when a group has no such rows.

type ClassBreakdown struct {
	Class    int64  `json:"class"`
	Label    string `json:"label"`
	Total    int    `json:"total"`
	Survived int    `json:"survived"`
	Pct      int    `json:"pct"`
}

type GenderBreakdown struct {
	Sex      string `json:"sex"`
	Label    string `json:"label"`
	Survived int    `json:"survived"`
	Lost     int    `json:"lost"`
}

type PortBreakdown struct {
	Port  string `json:"port"`
	Count int    `json:"count"`
	Pct   int    `json:"pct"` // of the whole table, not just rows with a port
}

type AgeGroupBreakdown struct {
	Group    string `json:"group"`
	Total    int    `json:"total"`
	Survived int    `json:"survived"`
	Pct      int    `json:"pct"`
}

// {{{ survivalPct

func survivalPct(survived, known int) int {
	if known == 0 {
		return 0
	}
	return roundPct(float64(survived) / float64(known) * 100)
}

// }}}

// {{{ ByClass

// One entry per class {1,2,3} that has at least one row, ascending.
func ByClass(t *mdb.Table) []ClassBreakdown {
	out := []ClassBreakdown{}
	if !t.Cols.Pclass {
		return out
	}

	for _, cls := range []int64{1, 2, 3} {
		total, survived, known := 0, 0, 0
		for _, p := range t.Rows {
			if p.Pclass == nil || *p.Pclass != cls {
				continue
			}
			total++
			if p.Survived != nil {
				known++
				if *p.Survived == 1 {
					survived++
				}
			}
		}
		if total == 0 {
			continue
		}
		out = append(out, ClassBreakdown{
			Class:    cls,
			Label:    mdb.ClassLabels[cls],
			Total:    total,
			Survived: survived,
			Pct:      survivalPct(survived, known),
		})
	}

	return out
}

// }}}
// {{{ ByGender

// Female first, then male; other/missing sex values are excluded.
func ByGender(t *mdb.Table) []GenderBreakdown {
	out := []GenderBreakdown{}
	if !t.Cols.Sex {
		return out
	}

	for _, group := range []struct{ sex, label string }{{"female", "Female"}, {"male", "Male"}} {
		total, survived := 0, 0
		for _, p := range t.Rows {
			if p.Sex == nil || *p.Sex != group.sex {
				continue
			}
			total++
			if p.DidSurvive() {
				survived++
			}
		}
		if total == 0 {
			continue
		}
		out = append(out, GenderBreakdown{
			Sex:      group.sex,
			Label:    group.label,
			Survived: survived,
			Lost:     total - survived,
		})
	}

	return out
}

// }}}
// {{{ ByPort

// Grouped by normalized boarding port, descending by count (port name
// breaks ties, to keep output deterministic). Rows with no port are
// excluded from the groups but still count in the percentage denominator.
func ByPort(t *mdb.Table) []PortBreakdown {
	out := []PortBreakdown{}
	if !t.Cols.Boarded {
		return out
	}

	counts := map[string]int{}
	for _, p := range t.Rows {
		if p.Boarded == nil || *p.Boarded == "" {
			continue
		}
		counts[*p.Boarded]++
	}

	total := t.NumRows()
	for port, n := range counts {
		out = append(out, PortBreakdown{
			Port:  port,
			Count: n,
			Pct:   roundPct(float64(n) / float64(total) * 100),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Port < out[j].Port
	})

	return out
}

// }}}
// {{{ ByAgeGroup

// Buckets non-null ages into the fixed half-open age bands, preserving
// band order and omitting empty bands.
func ByAgeGroup(t *mdb.Table) []AgeGroupBreakdown {
	out := []AgeGroupBreakdown{}
	if !t.Cols.Age {
		return out
	}

	for _, band := range mdb.AgeBands {
		total, survived, known := 0, 0, 0
		for _, p := range t.Rows {
			if p.Age == nil || !band.Contains(*p.Age) {
				continue
			}
			total++
			if p.Survived != nil {
				known++
				if *p.Survived == 1 {
					survived++
				}
			}
		}
		if total == 0 {
			continue
		}
		out = append(out, AgeGroupBreakdown{
			Group:    band.Label,
			Total:    total,
			Survived: survived,
			Pct:      survivalPct(survived, known),
		})
	}

	return out
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
