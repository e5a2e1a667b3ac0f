// Package csvdata parses raw manifest CSVs into the canonical Table.
// Coercion failures become nulls, never errors; garbage rows survive
// as rows full of nils.
package csvdata

import (
	"io"
	"math"
	"strconv"
	"strings"

	mdb "github.com/skypies/manifestdb"
)

// {{{ coerceFloat, coerceInt

// Returns nil for anything that doesn't parse as a finite number.
func coerceFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// Integral columns are stored as nullable ints; a fractional value is
// truncated toward zero, matching a plain numeric cast.
func coerceInt(s string) *int64 {
	f := coerceFloat(s)
	if f == nil {
		return nil
	}
	i := int64(*f)
	return &i
}

// }}}
// {{{ coerceString, coerceSex, coercePort

func coerceString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func coerceSex(s string) *string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil
	}
	return &s
}

// Single-letter port codes map to full city names; anything else passes
// through (trimmed) unchanged.
func coercePort(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if name, exists := mdb.PortNames[s]; exists {
		return &name
	}
	return &s
}

// }}}

// {{{ columnsFromHeaders

func columnsFromHeaders(headers []string) mdb.Columns {
	has := map[string]bool{}
	for _, h := range headers {
		has[h] = true
	}

	cols := mdb.Columns{
		PassengerId: has["PassengerId"],
		Survived:    has["Survived"],
		Pclass:      has["Pclass"],
		Name:        has["Name"],
		Sex:         has["Sex"],
		Age:         has["Age"],
		AgeWiki:     has["Age_wiki"],
		SibSp:       has["SibSp"],
		Parch:       has["Parch"],
		Fare:        has["Fare"],
		Hometown:    has["Hometown"],
		Destination: has["Destination"],
		Lifeboat:    has["Lifeboat"],
	}

	// Prefer "Boarded" over "Embarked" when both exist
	if has["Boarded"] {
		cols.Boarded, cols.PortSource = true, "Boarded"
	} else if has["Embarked"] {
		cols.Boarded, cols.PortSource = true, "Embarked"
	}

	return cols
}

// }}}
// {{{ normalizeRow

func normalizeRow(row Row, cols mdb.Columns) mdb.Passenger {
	p := mdb.Passenger{}

	if cols.PassengerId {
		p.PassengerId = coerceInt(row["PassengerId"])
	}
	if cols.Survived {
		p.Survived = coerceInt(row["Survived"])
	}
	if cols.Pclass {
		p.Pclass = coerceInt(row["Pclass"])
	}
	if cols.Name {
		p.Name = coerceString(row["Name"])
	}
	if cols.Sex {
		p.Sex = coerceSex(row["Sex"])
	}
	if cols.Age {
		p.Age = coerceFloat(row["Age"])
	}
	if cols.AgeWiki {
		p.AgeWiki = coerceFloat(row["Age_wiki"])
	}
	if cols.SibSp {
		p.SibSp = coerceInt(row["SibSp"])
	}
	if cols.Parch {
		p.Parch = coerceInt(row["Parch"])
	}
	if cols.Fare {
		p.Fare = coerceFloat(row["Fare"])
	}
	if cols.Boarded {
		p.Boarded = coercePort(row[cols.PortSource])
	}
	if cols.Hometown {
		p.Hometown = coerceString(row["Hometown"])
	}
	if cols.Destination {
		p.Destination = coerceString(row["Destination"])
	}
	if cols.Lifeboat {
		p.Lifeboat = coerceString(row["Lifeboat"])
	}

	return p
}

// }}}

// {{{ Normalize

// Normalize applies the per-column coercion rules and returns the
// canonical table. Pure function; the input rows are not modified.
func Normalize(headers []string, rows []Row) *mdb.Table {
	cols := columnsFromHeaders(headers)

	t := mdb.Table{
		Rows: make([]mdb.Passenger, 0, len(rows)),
		Cols: cols,
	}
	for _, row := range rows {
		t.Rows = append(t.Rows, normalizeRow(row, cols))
	}

	return &t
}

// }}}
// {{{ ReadTable

// ReadTable parses and normalizes a whole CSV in one go.
func ReadTable(rdr io.Reader) (*mdb.Table, error) {
	rowReader := NewRowReader(rdr)
	rows, err := rowReader.ReadAll()
	if err != nil {
		return nil, err
	}
	return Normalize(rowReader.Headers(), rows), nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
