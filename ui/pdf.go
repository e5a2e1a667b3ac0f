package ui

import (
	"net/http"

	"golang.org/x/net/context"

	"github.com/skypies/manifestdb/fpdf"
	"github.com/skypies/manifestdb/source"
)

// {{{ SummaryPDFHandler

// /report/summary.pdf
func SummaryPDFHandler(ctx context.Context, cache *source.Cache, w http.ResponseWriter, r *http.Request) {
	t, err := cache.Table(ctx)
	if err != nil {
		writeLoadError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	if err := fpdf.WriteSummary(w, t); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
