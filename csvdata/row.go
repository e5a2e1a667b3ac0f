package csvdata

import (
	"encoding/csv"
	"fmt"
	"io"
)

// {{{ notes

/* Manifest data comes in CSV rows.

The headers vary depending on the dump; so we turn each row into a map
from header name to value. The classic Kaggle-style dump looks like:

[0]PassengerId, [1]Survived, [2]Pclass, [3]Name, [4]Sex, [5]Age,
  [6]SibSp, [7]Parch, [8]Ticket, [9]Fare, [10]Cabin, [11]Embarked

The wiki-enriched dump replaces Embarked with Boarded, and adds
Hometown, Destination, Lifeboat and Age_wiki columns.

 */

// }}}

type Row map[string]string

type RowReader struct {
	csvreader *csv.Reader
	headers   []string
}

func NewRowReader(ioreader io.Reader) *RowReader {
	rdr := RowReader{
		csvreader: csv.NewReader(ioreader),
	}
	rdr.headers, _ = rdr.csvreader.Read() // Discard err, we'll get it when we try to get next row
	return &rdr
}

func (r *RowReader) Headers() []string { return r.headers }

// {{{ rdr.Read()

func (r *RowReader) Read() (Row, error) {
	m := Row{}

	vals, err := r.csvreader.Read()
	if err != nil {
		return m, err
	} else if len(r.headers) != len(vals) {
		return m, fmt.Errorf("header/val mismatch (%d/%d)", len(r.headers), len(vals))
	}

	for i := range vals {
		m[r.headers[i]] = vals[i]
	}

	return m, nil
}

// }}}
// {{{ rdr.ReadAll()

func (r *RowReader) ReadAll() ([]Row, error) {
	rows := []Row{}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return rows, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
