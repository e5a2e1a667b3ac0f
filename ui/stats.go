package ui

import (
	"sync"
	"time"

	"github.com/skypies/util/histogram"
)

// Per-endpoint latency counters, exposed via /api/health?debug=1.

var (
	statsMutex   sync.Mutex
	handlerStats = histogram.NewSet(200000) // maxval, in micros; most handlers land well under 200ms
)

// {{{ recordLatency

func recordLatency(path string, d time.Duration) {
	statsMutex.Lock()
	defer statsMutex.Unlock()
	handlerStats.RecordValue(path, d.Nanoseconds()/1000)
}

// }}}
// {{{ latencyStats

func latencyStats() string {
	statsMutex.Lock()
	defer statsMutex.Unlock()
	return handlerStats.String()
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
