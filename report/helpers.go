// Package report implements the read-only queries over the manifest table:
// aggregate stats, grouped breakdowns, the fare heatmap sample, and the
// filtered/sorted/paginated passenger listing. Everything here is a pure
// read; the table is never mutated.
package report

import "math"

// All percentage/currency rounding in this package is round-half-away-
// from-zero (Go's math.Round), so exact .5 boundaries round up in
// magnitude.

func roundTo(f float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(f*shift) / shift
}

func roundToPtr(f float64, places int) *float64 {
	r := roundTo(f, places)
	return &r
}

func roundPct(f float64) int {
	return int(math.Round(f))
}
