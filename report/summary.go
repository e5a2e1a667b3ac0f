package report

import (
	mdb "github.com/skypies/manifestdb"
)

// Summary is the headline KPI block for the dashboard. Averages are nil
// when the source column is absent or contains no values at all; they
// serialize as JSON null, never NaN.
type Summary struct {
	Total     int      `json:"total"`
	Survivors int      `json:"survivors"`
	Lost      int      `json:"lost"`
	SurvRate  float64  `json:"surv_rate"` // percent, 1 decimal; 0 for an empty table
	AvgAge    *float64 `json:"avg_age"`   // 1 decimal
	AvgFare   *float64 `json:"avg_fare"`  // 2 decimals
	MaxFare   *float64 `json:"max_fare"`  // 2 decimals
}

// {{{ Summarize

func Summarize(t *mdb.Table) Summary {
	out := Summary{
		Total:     t.NumRows(),
		Survivors: t.Survivors(),
	}
	out.Lost = out.Total - out.Survivors

	if out.Total > 0 {
		out.SurvRate = roundTo(float64(out.Survivors)/float64(out.Total)*100, 1)
	}

	if t.Cols.Age {
		if mean, ok := meanOf(t, func(p mdb.Passenger) *float64 { return p.Age }); ok {
			out.AvgAge = roundToPtr(mean, 1)
		}
	}
	if t.Cols.Fare {
		if mean, ok := meanOf(t, func(p mdb.Passenger) *float64 { return p.Fare }); ok {
			out.AvgFare = roundToPtr(mean, 2)
		}
		if max, ok := maxOf(t, func(p mdb.Passenger) *float64 { return p.Fare }); ok {
			out.MaxFare = roundToPtr(max, 2)
		}
	}

	return out
}

// }}}
// {{{ meanOf, maxOf

// Mean over non-null values; ok==false if every value was null.
func meanOf(t *mdb.Table, get func(mdb.Passenger) *float64) (float64, bool) {
	sum, n := 0.0, 0
	for _, p := range t.Rows {
		if v := get(p); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

func maxOf(t *mdb.Table, get func(mdb.Passenger) *float64) (float64, bool) {
	max, found := 0.0, false
	for _, p := range t.Rows {
		if v := get(p); v != nil {
			if !found || *v > max {
				max, found = *v, true
			}
		}
	}
	return max, found
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
