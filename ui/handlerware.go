package ui

import (
	"net/http"
	"time"

	"golang.org/x/net/context"

	"github.com/skypies/util/widget"

	"github.com/skypies/manifestdb/source"
)

// Rather than stash/retrieve the table cache from the context, we pass it
// directly to a new handler type, used throughout ui/.
type ManifestHandler func(context.Context, *source.Cache, http.ResponseWriter, *http.Request)

// WithManifest wraps a ManifestHandler into something http.HandleFunc will
// take: builds a context, parses the form, answers CORS preflights, and
// records the handler's latency.
func WithManifest(f widget.CtxMaker, cache *source.Cache, mh ManifestHandler) widget.BaseHandler {
	return widget.WithCtx(f, func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		addCORSHeaders(w)
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		tStart := time.Now()
		mh(ctx, cache, w, r)
		recordLatency(r.URL.Path, time.Since(tStart))
	})
}

// Everything under /api/ is fair game for any origin; the dashboard is
// just one consumer among several.
func addCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "*")
}
