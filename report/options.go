package report

// The listing options are all parsed off the http.Request. Out-of-range
// values are clamped or ignored rather than treated as fatal, except for a
// page size above the hard maximum, which is rejected outright.

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/skypies/util/widget"
)

const (
	DefaultPerPage = 50
	MaxPerPage     = 200
)

type ListOptions struct {
	Query    string // case-insensitive substring, OR'd across name/hometown/destination
	Survived string // all|survived|lost
	Class    string // all|1|2|3
	SortBy   string
	SortDir  string // asc|desc
	Page     int    // >= 1
	PerPage  int    // 1..MaxPerPage
}

// {{{ FormValueListOptions

func FormValueListOptions(r *http.Request) (ListOptions, error) {
	opt := ListOptions{
		Query:    strings.TrimSpace(r.FormValue("q")),
		Survived: r.FormValue("survived"),
		Class:    r.FormValue("cls"),
		SortBy:   r.FormValue("sort_by"),
		SortDir:  r.FormValue("sort_dir"),
		Page:     widget.FormValueIntWithDefault(r, "page", 1),
		PerPage:  widget.FormValueIntWithDefault(r, "per_page", DefaultPerPage),
	}

	if opt.SortBy == "" {
		opt.SortBy = "PassengerId"
	}
	if opt.SortDir != "desc" {
		opt.SortDir = "asc"
	}
	if opt.Survived != "survived" && opt.Survived != "lost" {
		opt.Survived = "all"
	}

	// "all", garbage, and out-of-range classes all mean no class filter
	if classFilterOf(opt.Class) == 0 {
		opt.Class = "all"
	}

	if opt.PerPage > MaxPerPage {
		return opt, fmt.Errorf("per_page %d exceeds maximum %d", opt.PerPage, MaxPerPage)
	}
	if opt.PerPage < 1 {
		opt.PerPage = DefaultPerPage
	}
	if opt.Page < 1 {
		opt.Page = 1
	}

	return opt, nil
}

// }}}
// {{{ FormValueHeatmapN

func FormValueHeatmapN(r *http.Request) int {
	n := widget.FormValueIntWithDefault(r, "n", DefaultHeatmapPoints)
	if n > MaxHeatmapPoints {
		n = MaxHeatmapPoints
	}
	return n
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
