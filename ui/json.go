package ui

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skypies/manifestdb/source"
)

// {{{ writeJson

func writeJson(w http.ResponseWriter, data interface{}) {
	jsonBytes, err := json.MarshalIndent(data, "", " ")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(jsonBytes)
}

// }}}
// {{{ writeLoadError

// A missing/unreachable source is the operator's problem, not the
// caller's; say so with a 503 rather than a generic 500.
func writeLoadError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, source.ErrDataUnavailable) {
		status = http.StatusServiceUnavailable
	}
	http.Error(w, err.Error(), status)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
