package report

import (
	"sort"
	"strconv"
	"strings"

	mdb "github.com/skypies/manifestdb"
)

// PassengerRow is the display shape for one listed passenger. Field names
// follow the dashboard's wire contract.
type PassengerRow struct {
	Id       *int64   `json:"id"`
	Name     string   `json:"name"` // "Unknown" when missing
	Sex      string   `json:"sex"`  // "" when missing
	Age      *float64 `json:"age"`
	Class    *int64   `json:"cls"`
	Boarded  *string  `json:"boarded"`
	Dest     *string  `json:"dest"`
	Lifeboat *string  `json:"lifeboat"`
	Fare     *float64 `json:"fare"` // 2 decimals
	Survived *int64   `json:"survived"`
	Hometown *string  `json:"hometown"`
}

type PassengerList struct {
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
	TotalPages int            `json:"total_pages"`
	Rows       []PassengerRow `json:"rows"`
}

// {{{ classFilterOf

// 0 means no class filter: "all", garbage and out-of-range all land there.
func classFilterOf(s string) int64 {
	if cls, err := strconv.ParseInt(s, 10, 64); err == nil && cls >= 1 && cls <= 3 {
		return cls
	}
	return 0
}

// }}}
// {{{ opt.matches

func (opt ListOptions) matches(p mdb.Passenger, cols mdb.Columns, classFilter int64) bool {
	if opt.Query != "" {
		q := strings.ToLower(opt.Query)
		hit := false
		for _, field := range []struct {
			present bool
			val     *string
		}{
			{cols.Name, p.Name},
			{cols.Hometown, p.Hometown},
			{cols.Destination, p.Destination},
		} {
			if field.present && field.val != nil &&
				strings.Contains(strings.ToLower(*field.val), q) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	switch opt.Survived {
	case "survived":
		if !p.DidSurvive() {
			return false
		}
	case "lost":
		if !p.WasLost() {
			return false
		}
	}

	if classFilter > 0 && (p.Pclass == nil || *p.Pclass != classFilter) {
		return false
	}

	return true
}

// }}}
// {{{ sortKeyFor

// The sortable fields, by display name and by raw column name. Returns a
// key-extractor, or nil if the field isn't sortable or its column is
// absent — in which case no sort is applied at all.
//
// Keys are (null, numeric, string); nulls always sort last, regardless of
// direction.
type sortKey struct {
	null  bool
	num   float64
	str   string
	isStr bool
}

func sortKeyFor(field string, cols mdb.Columns) func(mdb.Passenger) sortKey {
	numKey := func(v *int64) sortKey {
		if v == nil {
			return sortKey{null: true}
		}
		return sortKey{num: float64(*v)}
	}
	floatKey := func(v *float64) sortKey {
		if v == nil {
			return sortKey{null: true}
		}
		return sortKey{num: *v}
	}
	strKey := func(v *string) sortKey {
		if v == nil {
			return sortKey{null: true, isStr: true}
		}
		return sortKey{str: strings.ToLower(*v), isStr: true}
	}

	switch field {
	case "id", "PassengerId":
		if cols.PassengerId {
			return func(p mdb.Passenger) sortKey { return numKey(p.PassengerId) }
		}
	case "survived", "Survived":
		if cols.Survived {
			return func(p mdb.Passenger) sortKey { return numKey(p.Survived) }
		}
	case "cls", "Pclass":
		if cols.Pclass {
			return func(p mdb.Passenger) sortKey { return numKey(p.Pclass) }
		}
	case "age", "Age":
		if cols.Age {
			return func(p mdb.Passenger) sortKey { return floatKey(p.Age) }
		}
	case "fare", "Fare":
		if cols.Fare {
			return func(p mdb.Passenger) sortKey { return floatKey(p.Fare) }
		}
	case "name", "Name":
		if cols.Name {
			return func(p mdb.Passenger) sortKey { return strKey(p.Name) }
		}
	case "sex", "Sex":
		if cols.Sex {
			return func(p mdb.Passenger) sortKey { return strKey(p.Sex) }
		}
	case "boarded", "Boarded", "Embarked":
		if cols.Boarded {
			return func(p mdb.Passenger) sortKey { return strKey(p.Boarded) }
		}
	}
	return nil
}

func (k sortKey) lessThan(other sortKey, ascending bool) (less, equal bool) {
	// Nulls last, whatever the direction
	if k.null || other.null {
		return !k.null && other.null, k.null == other.null
	}

	var cmp int
	if k.isStr {
		cmp = strings.Compare(k.str, other.str)
	} else if k.num < other.num {
		cmp = -1
	} else if k.num > other.num {
		cmp = 1
	}

	if !ascending {
		cmp = -cmp
	}
	return cmp < 0, cmp == 0
}

// }}}

// {{{ ListPassengers

// ListPassengers filters, sorts, and paginates. A requested page beyond
// the end clamps to the last page rather than erroring; an unknown or
// absent sort column leaves the table order untouched. Sorting is stable,
// so paging through with a fixed sort reproduces the filtered set exactly.
func ListPassengers(t *mdb.Table, opt ListOptions) PassengerList {
	if opt.PerPage < 1 {
		opt.PerPage = DefaultPerPage
	}
	if opt.Page < 1 {
		opt.Page = 1
	}
	classFilter := classFilterOf(opt.Class)

	filtered := []mdb.Passenger{}
	for _, p := range t.Rows {
		if opt.matches(p, t.Cols, classFilter) {
			filtered = append(filtered, p)
		}
	}

	if keyFn := sortKeyFor(opt.SortBy, t.Cols); keyFn != nil {
		asc := opt.SortDir != "desc"
		sort.SliceStable(filtered, func(i, j int) bool {
			less, _ := keyFn(filtered[i]).lessThan(keyFn(filtered[j]), asc)
			return less
		})
	}

	total := len(filtered)
	totalPages := (total + opt.PerPage - 1) / opt.PerPage
	if totalPages < 1 {
		totalPages = 1
	}
	page := opt.Page
	if page > totalPages {
		page = totalPages
	}

	lo := (page - 1) * opt.PerPage
	hi := lo + opt.PerPage
	if lo > total {
		lo = total
	}
	if hi > total {
		hi = total
	}

	out := PassengerList{
		Total:      total,
		Page:       page,
		PerPage:    opt.PerPage,
		TotalPages: totalPages,
		Rows:       make([]PassengerRow, 0, hi-lo),
	}
	for _, p := range filtered[lo:hi] {
		out.Rows = append(out.Rows, displayRow(p))
	}

	return out
}

// }}}
// {{{ displayRow

func displayRow(p mdb.Passenger) PassengerRow {
	row := PassengerRow{
		Id:       p.PassengerId,
		Name:     p.DisplayName(),
		Sex:      p.DisplaySex(),
		Age:      p.Age,
		Class:    p.Pclass,
		Boarded:  p.Boarded,
		Dest:     p.Destination,
		Lifeboat: p.Lifeboat,
		Survived: p.Survived,
		Hometown: p.Hometown,
	}
	if p.Fare != nil {
		row.Fare = roundToPtr(*p.Fare, 2)
	}
	return row
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
