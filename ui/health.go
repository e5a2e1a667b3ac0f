package ui

import (
	"net/http"

	"golang.org/x/net/context"

	"github.com/skypies/manifestdb/source"
)

// {{{ HealthHandler

// HealthHandler reports whether the manifest table can be served. It
// never echoes credential values; just whether they were configured.
func HealthHandler(cfg source.Config) ManifestHandler {
	return func(ctx context.Context, cache *source.Cache, w http.ResponseWriter, r *http.Request) {
		t, err := cache.Table(ctx)
		if err != nil {
			tableID := cfg.TableID
			if tableID == "" {
				tableID = "(not set)"
			}
			writeJson(w, map[string]interface{}{
				"status":        "error",
				"error":         err.Error(),
				"kbc_token_set": cfg.Token != "",
				"table_id":      tableID,
			})
			return
		}

		out := map[string]interface{}{
			"status": "ok",
			"rows":   t.NumRows(),
		}
		if r.FormValue("debug") != "" {
			out["latencies_micros"] = latencyStats()
		}
		writeJson(w, out)
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
