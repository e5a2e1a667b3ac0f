package ui

import (
	"net/http"

	"golang.org/x/net/context"

	mdb "github.com/skypies/manifestdb"
	"github.com/skypies/manifestdb/report"
	"github.com/skypies/manifestdb/source"
)

// The aggregation endpoints. Each one is a pure read over the cached
// table; the first request after process start pays for the load.

// {{{ StatsHandler

// /api/stats
func StatsHandler(ctx context.Context, cache *source.Cache, w http.ResponseWriter, r *http.Request) {
	t, err := cache.Table(ctx)
	if err != nil {
		writeLoadError(w, err)
		return
	}
	writeJson(w, report.Summarize(t))
}

// }}}
// {{{ ByClassHandler

// /api/by-class
func ByClassHandler(ctx context.Context, cache *source.Cache, w http.ResponseWriter, r *http.Request) {
	t, err := cache.Table(ctx)
	if err != nil {
		writeLoadError(w, err)
		return
	}
	writeJson(w, report.ByClass(t))
}

// }}}
// {{{ ByGenderHandler

// /api/by-gender
func ByGenderHandler(ctx context.Context, cache *source.Cache, w http.ResponseWriter, r *http.Request) {
	t, err := cache.Table(ctx)
	if err != nil {
		writeLoadError(w, err)
		return
	}
	writeJson(w, report.ByGender(t))
}

// }}}
// {{{ ByPortHandler

// /api/by-port
func ByPortHandler(ctx context.Context, cache *source.Cache, w http.ResponseWriter, r *http.Request) {
	t, err := cache.Table(ctx)
	if err != nil {
		writeLoadError(w, err)
		return
	}
	writeJson(w, report.ByPort(t))
}

// }}}
// {{{ ByAgeGroupHandler

// /api/by-age-group
func ByAgeGroupHandler(ctx context.Context, cache *source.Cache, w http.ResponseWriter, r *http.Request) {
	t, err := cache.Table(ctx)
	if err != nil {
		writeLoadError(w, err)
		return
	}
	writeJson(w, report.ByAgeGroup(t))
}

// }}}
// {{{ HeatmapHandler

// /api/heatmap?n=200
func HeatmapHandler(ctx context.Context, cache *source.Cache, w http.ResponseWriter, r *http.Request) {
	t, err := cache.Table(ctx)
	if err != nil {
		writeLoadError(w, err)
		return
	}
	writeJson(w, report.HeatmapSample(t, report.FormValueHeatmapN(r)))
}

// }}}
// {{{ RouteHandler

// /api/route - the voyage legs, for the dashboard's route map. Static
// data; no table required.
func RouteHandler(ctx context.Context, cache *source.Cache, w http.ResponseWriter, r *http.Request) {
	writeJson(w, mdb.VoyageLegs())
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
