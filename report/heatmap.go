package report

import (
	"sort"

	mdb "github.com/skypies/manifestdb"
)

const (
	MaxHeatmapPoints     = 500
	DefaultHeatmapPoints = 200
)

type HeatmapPoint struct {
	Fare     float64 `json:"fare"` // 2 decimals
	Survived *int64  `json:"survived"`
	Class    *int64  `json:"class"`
}

// {{{ HeatmapSample

// HeatmapSample takes every row with a known fare, sorts ascending by fare
// (stable, so rows sharing a fare keep their original order), and
// downsamples to at most n points by picking indices floor(i*len/n).
// Deterministic: the same table and n always give the same points.
// Sorting happens on the raw fare; rounding to 2dp is display-only.
func HeatmapSample(t *mdb.Table, n int) []HeatmapPoint {
	if n > MaxHeatmapPoints {
		n = MaxHeatmapPoints
	}
	if n < 0 {
		n = 0
	}

	if !t.Cols.Fare {
		return []HeatmapPoint{}
	}

	rows := []mdb.Passenger{}
	for _, p := range t.Rows {
		if p.Fare != nil {
			rows = append(rows, p)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool { return *rows[i].Fare < *rows[j].Fare })

	if len(rows) > n {
		sampled := make([]mdb.Passenger, 0, n)
		for i := 0; i < n; i++ {
			sampled = append(sampled, rows[i*len(rows)/n])
		}
		rows = sampled
	}

	points := make([]HeatmapPoint, 0, len(rows))
	for _, p := range rows {
		points = append(points, HeatmapPoint{
			Fare:     roundTo(*p.Fare, 2),
			Survived: p.Survived,
			Class:    p.Pclass,
		})
	}
	return points
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
