package report

import (
	"net/http/httptest"
	"testing"

	mdb "github.com/skypies/manifestdb"
)

// {{{ TestListFilters

func TestListSurvivedFilter(t *testing.T) {
	tbl := &mdb.Table{
		Rows: []mdb.Passenger{
			{PassengerId: ip(1), Survived: ip(1)},
			{PassengerId: ip(2), Survived: ip(0)},
			{PassengerId: ip(3), Survived: nil},
			{PassengerId: ip(4), Survived: ip(1)},
		},
		Cols: mdb.Columns{PassengerId: true, Survived: true},
	}

	out := ListPassengers(tbl, ListOptions{Survived: "survived"})
	if out.Total != 2 {
		t.Errorf("survived filter - expected 2, got %d", out.Total)
	}

	out = ListPassengers(tbl, ListOptions{Survived: "lost"})
	if out.Total != 1 {
		t.Errorf("lost filter - expected 1 (nulls are neither), got %d", out.Total)
	}

	out = ListPassengers(tbl, ListOptions{Survived: "all"})
	if out.Total != 4 {
		t.Errorf("all - expected 4, got %d", out.Total)
	}
}

func TestListQueryFilter(t *testing.T) {
	tbl := fixtureTable()

	// Query ORs across name, hometown and destination, case-insensitively
	out := ListPassengers(tbl, ListOptions{Query: "new york"})
	if out.Total != 2 {
		t.Errorf("query 'new york' - expected 2, got %d", out.Total)
	}

	out = ListPassengers(tbl, ListOptions{Query: "ENGLAND"})
	if out.Total != 3 {
		t.Errorf("query 'ENGLAND' - expected 3, got %d", out.Total)
	}

	out = ListPassengers(tbl, ListOptions{Query: "atlantis"})
	if out.Total != 0 {
		t.Errorf("query 'atlantis' - expected 0, got %d", out.Total)
	}
}

func TestListClassFilter(t *testing.T) {
	out := ListPassengers(fixtureTable(), ListOptions{Class: "3"})
	if out.Total != 4 {
		t.Errorf("class 3 - expected 4, got %d", out.Total)
	}

	// Garbage class means no filter
	out = ListPassengers(fixtureTable(), ListOptions{Class: "first"})
	if out.Total != 7 {
		t.Errorf("bad class value should not filter, got %d", out.Total)
	}
}

// }}}
// {{{ TestListSorting

func TestListSortNullsLast(t *testing.T) {
	tbl := &mdb.Table{
		Rows: []mdb.Passenger{
			{PassengerId: ip(1), Age: fp(40)},
			{PassengerId: ip(2), Age: nil},
			{PassengerId: ip(3), Age: fp(20)},
		},
		Cols: mdb.Columns{PassengerId: true, Age: true},
	}

	out := ListPassengers(tbl, ListOptions{SortBy: "age", SortDir: "asc"})
	ids := []int64{*out.Rows[0].Id, *out.Rows[1].Id, *out.Rows[2].Id}
	if ids[0] != 3 || ids[1] != 1 || ids[2] != 2 {
		t.Errorf("asc: expected [3 1 2], got %v", ids)
	}

	// Null still last when descending
	out = ListPassengers(tbl, ListOptions{SortBy: "age", SortDir: "desc"})
	ids = []int64{*out.Rows[0].Id, *out.Rows[1].Id, *out.Rows[2].Id}
	if ids[0] != 1 || ids[1] != 3 || ids[2] != 2 {
		t.Errorf("desc: expected [1 3 2], got %v", ids)
	}
}

func TestListSortUnknownFieldKeepsOrder(t *testing.T) {
	tbl := fixtureTable()
	out := ListPassengers(tbl, ListOptions{SortBy: "cabin"})
	for i, row := range out.Rows {
		if *row.Id != int64(i+1) {
			t.Errorf("unknown sort field should keep table order: row %d has id %d", i, *row.Id)
		}
	}
}

func TestListSortByName(t *testing.T) {
	out := ListPassengers(fixtureTable(), ListOptions{SortBy: "name"})
	if out.Rows[0].Name != "Abbott, Mrs. Rosa" {
		t.Errorf("expected Abbott first, got %q", out.Rows[0].Name)
	}
}

// }}}
// {{{ TestListPagination

func TestListPagination(t *testing.T) {
	rows := make([]mdb.Passenger, 0, 25)
	for i := int64(1); i <= 25; i++ {
		rows = append(rows, mdb.Passenger{PassengerId: ip(i)})
	}
	tbl := &mdb.Table{Rows: rows, Cols: mdb.Columns{PassengerId: true}}

	out := ListPassengers(tbl, ListOptions{Page: 1, PerPage: 10})
	if out.Total != 25 || out.TotalPages != 3 || len(out.Rows) != 10 {
		t.Errorf("page 1: total=%d pages=%d rows=%d", out.Total, out.TotalPages, len(out.Rows))
	}

	// Last page is a partial page
	out = ListPassengers(tbl, ListOptions{Page: 3, PerPage: 10})
	if len(out.Rows) != 5 {
		t.Errorf("page 3 should have 5 rows, got %d", len(out.Rows))
	}

	// Too-big page clamps to the last page
	out = ListPassengers(tbl, ListOptions{Page: 99, PerPage: 10})
	if out.Page != 3 || len(out.Rows) != 5 {
		t.Errorf("page 99 should clamp to page 3, got page %d with %d rows", out.Page, len(out.Rows))
	}

	// Paging through reproduces the whole set exactly, in order
	seen := []int64{}
	for page := 1; page <= 3; page++ {
		out := ListPassengers(tbl, ListOptions{Page: page, PerPage: 10})
		for _, row := range out.Rows {
			seen = append(seen, *row.Id)
		}
	}
	if len(seen) != 25 {
		t.Fatalf("concatenated pages should cover all 25 rows, got %d", len(seen))
	}
	for i, id := range seen {
		if id != int64(i+1) {
			t.Errorf("concatenated pages out of order at %d: %d", i, id)
		}
	}
}

func TestListEmptyTable(t *testing.T) {
	out := ListPassengers(emptyTable(), ListOptions{})
	if out.Total != 0 || out.TotalPages != 1 || out.Page != 1 || len(out.Rows) != 0 {
		t.Errorf("empty table: %+v", out)
	}
}

func TestListIdempotent(t *testing.T) {
	tbl := fixtureTable()
	opt := ListOptions{SortBy: "fare", SortDir: "desc", PerPage: 3, Page: 2}

	a := ListPassengers(tbl, opt)
	b := ListPassengers(tbl, opt)
	if len(a.Rows) != len(b.Rows) {
		t.Fatalf("row counts differ")
	}
	for i := range a.Rows {
		if a.Rows[i].Name != b.Rows[i].Name {
			t.Errorf("row %d differs between identical queries", i)
		}
	}

	// And the table itself is untouched
	if *tbl.Rows[0].PassengerId != 1 {
		t.Errorf("listing must not reorder the table")
	}
}

// }}}
// {{{ TestListDisplay

func TestListDisplayRow(t *testing.T) {
	tbl := &mdb.Table{
		Rows: []mdb.Passenger{{Fare: fp(71.2833)}},
		Cols: mdb.Columns{Fare: true},
	}
	out := ListPassengers(tbl, ListOptions{})
	row := out.Rows[0]

	if row.Name != "Unknown" {
		t.Errorf("nameless row should display as Unknown, got %q", row.Name)
	}
	if row.Fare == nil || *row.Fare != 71.28 {
		t.Errorf("fare should round to 2dp, got %v", row.Fare)
	}
}

// }}}
// {{{ TestFormValueListOptions

func TestFormValueListOptions(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/passengers?q=+york+&survived=bogus&cls=9&page=0&per_page=-5&sort_dir=sideways", nil)
	opt, err := FormValueListOptions(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if opt.Query != "york" {
		t.Errorf("query should be trimmed, got %q", opt.Query)
	}
	if opt.Survived != "all" {
		t.Errorf("bogus survived - expected all, got %q", opt.Survived)
	}
	if opt.Class != "all" {
		t.Errorf("out-of-range cls - expected all, got %q", opt.Class)
	}
	if opt.Page != 1 {
		t.Errorf("page 0 - expected 1, got %d", opt.Page)
	}
	if opt.PerPage != DefaultPerPage {
		t.Errorf("negative per_page - expected default, got %d", opt.PerPage)
	}
	if opt.SortBy != "PassengerId" || opt.SortDir != "asc" {
		t.Errorf("sort defaults wrong: %q %q", opt.SortBy, opt.SortDir)
	}
}

func TestFormValueListOptionsPerPageTooBig(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/passengers?per_page=5000", nil)
	if _, err := FormValueListOptions(r); err == nil {
		t.Errorf("per_page over the maximum should be rejected")
	}
}

func TestFormValueHeatmapN(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/heatmap", nil)
	if n := FormValueHeatmapN(r); n != DefaultHeatmapPoints {
		t.Errorf("default n - expected %d, got %d", DefaultHeatmapPoints, n)
	}

	r = httptest.NewRequest("GET", "/api/heatmap?n=12345", nil)
	if n := FormValueHeatmapN(r); n != MaxHeatmapPoints {
		t.Errorf("capped n - expected %d, got %d", MaxHeatmapPoints, n)
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
