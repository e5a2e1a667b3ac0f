package ui

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/skypies/util/widget"
)

// {{{ TemplateFuncMap

func TemplateFuncMap() template.FuncMap {
	return template.FuncMap{
		"add": templateAdd,
		"pct": templatePct, // {{pct .Survived .Total}}
	}
}

func templateAdd(a int, b int) int { return a + b }

func templatePct(a, b int) string {
	if b == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", 100.0*float64(a)/float64(b))
}

// }}}
// {{{ DashboardHandler

// DashboardHandler serves the single-page dashboard; everything else
// it sees is a miss.
func DashboardHandler(tmpl *template.Template) widget.BaseHandler {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if err := tmpl.ExecuteTemplate(w, "manifest-dashboard", nil); err != nil {
			http.Error(w, fmt.Sprintf("dashboard template: %v", err), http.StatusInternalServerError)
		}
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
