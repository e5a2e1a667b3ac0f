package ui

import (
	"net/http"

	"golang.org/x/net/context"

	"github.com/skypies/manifestdb/report"
	"github.com/skypies/manifestdb/source"
)

// {{{ PassengersHandler

// /api/passengers?q=&survived=all&cls=all&page=1&per_page=50&sort_by=PassengerId&sort_dir=asc
//
// Bad pages clamp rather than error; only an oversized per_page is
// rejected outright.
func PassengersHandler(ctx context.Context, cache *source.Cache, w http.ResponseWriter, r *http.Request) {
	opt, err := report.FormValueListOptions(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := cache.Table(ctx)
	if err != nil {
		writeLoadError(w, err)
		return
	}

	writeJson(w, report.ListPassengers(t, opt))
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
