package csvdata

// go test -v github.com/skypies/manifestdb/csvdata

import (
	"strings"
	"testing"
)

type portTest struct {
	Raw      string
	Expected string // "" means nil
}

var portTests = []portTest{
	{"S", "Southampton"},
	{"C", "Cherbourg"},
	{"Q", "Queenstown"},
	{" S ", "Southampton"}, // codes get trimmed first
	{"Southampton", "Southampton"},
	{"Belfast", "Belfast"}, // unknown values pass through
	{"", ""},
	{"   ", ""},
}

func TestCoercePort(t *testing.T) {
	for _, test := range portTests {
		got := coercePort(test.Raw)
		if test.Expected == "" {
			if got != nil {
				t.Errorf("'%s' - expected nil, got %q", test.Raw, *got)
			}
		} else if got == nil {
			t.Errorf("'%s' - expected %q, got nil", test.Raw, test.Expected)
		} else if *got != test.Expected {
			t.Errorf("'%s' - expected %q, got %q", test.Raw, test.Expected, *got)
		}
	}
}

func TestCoerceSex(t *testing.T) {
	tests := []struct{ Raw, Expected string }{
		{"Male", "male"},
		{" FEMALE ", "female"},
		{"male", "male"},
		{"", ""},
	}
	for _, test := range tests {
		got := coerceSex(test.Raw)
		if test.Expected == "" {
			if got != nil {
				t.Errorf("'%s' - expected nil, got %q", test.Raw, *got)
			}
		} else if got == nil || *got != test.Expected {
			t.Errorf("'%s' - expected %q, got %v", test.Raw, test.Expected, got)
		}
	}
}

func TestCoerceNumbers(t *testing.T) {
	if f := coerceFloat("34.5"); f == nil || *f != 34.5 {
		t.Errorf("coerceFloat(34.5) failed: %v", f)
	}
	for _, junk := range []string{"", "  ", "abc", "NaN", "Inf", "-Inf", "12abc"} {
		if f := coerceFloat(junk); f != nil {
			t.Errorf("coerceFloat(%q) - expected nil, got %v", junk, *f)
		}
	}

	if i := coerceInt("3"); i == nil || *i != 3 {
		t.Errorf("coerceInt(3) failed: %v", i)
	}
	if i := coerceInt("2.9"); i == nil || *i != 2 {
		t.Errorf("coerceInt(2.9) - expected truncation to 2, got %v", i)
	}
	if i := coerceInt("-2.9"); i == nil || *i != -2 {
		t.Errorf("coerceInt(-2.9) - expected truncation to -2, got %v", i)
	}
	if i := coerceInt("x"); i != nil {
		t.Errorf("coerceInt(x) - expected nil, got %v", *i)
	}
}

func TestBoardedPreferredOverEmbarked(t *testing.T) {
	headers := []string{"Name", "Boarded", "Embarked"}
	rows := []Row{{"Name": "Dawson, Jack", "Boarded": "S", "Embarked": "C"}}

	tbl := Normalize(headers, rows)
	if tbl.Cols.PortSource != "Boarded" {
		t.Errorf("expected port source Boarded, got %q", tbl.Cols.PortSource)
	}
	if p := tbl.Rows[0].Boarded; p == nil || *p != "Southampton" {
		t.Errorf("expected Southampton (from Boarded), got %v", p)
	}

	// Embarked alone still works
	tbl = Normalize([]string{"Name", "Embarked"}, []Row{{"Name": "x", "Embarked": "Q"}})
	if tbl.Cols.PortSource != "Embarked" {
		t.Errorf("expected port source Embarked, got %q", tbl.Cols.PortSource)
	}
	if p := tbl.Rows[0].Boarded; p == nil || *p != "Queenstown" {
		t.Errorf("expected Queenstown (from Embarked), got %v", p)
	}
}

func TestMissingColumnsStayNil(t *testing.T) {
	tbl := Normalize([]string{"Name"}, []Row{{"Name": "solo"}})
	p := tbl.Rows[0]
	if p.Age != nil || p.Fare != nil || p.Survived != nil || p.Boarded != nil {
		t.Errorf("columns absent from headers should yield nil fields: %s", p)
	}
	if tbl.Cols.Age || tbl.Cols.Boarded {
		t.Errorf("column presence flags wrong: %+v", tbl.Cols)
	}
}

var csvFixture = `PassengerId,Survived,Pclass,Name,Sex,Age,SibSp,Parch,Ticket,Fare,Cabin,Embarked
1,0,3,"Braund, Mr. Owen Harris",male,22,1,0,A/5 21171,7.25,,S
2,1,1,"Cumings, Mrs. John Bradley",female,38,1,0,PC 17599,71.2833,C85,C
3,1,3,"Heikkinen, Miss. Laina",female,,0,0,STON/O2,7.925,,
`

func TestReadTable(t *testing.T) {
	tbl, err := ReadTable(strings.NewReader(csvFixture))
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if tbl.NumRows() != 3 {
		t.Fatalf("expected 3 rows, got %d", tbl.NumRows())
	}

	p := tbl.Rows[1]
	if p.PassengerId == nil || *p.PassengerId != 2 {
		t.Errorf("row 2 id: %v", p.PassengerId)
	}
	if p.Fare == nil || *p.Fare != 71.2833 {
		t.Errorf("row 2 fare: %v", p.Fare)
	}
	if p.Boarded == nil || *p.Boarded != "Cherbourg" {
		t.Errorf("row 2 port: %v", p.Boarded)
	}

	// Empty age and port stay null
	if tbl.Rows[2].Age != nil {
		t.Errorf("row 3 should have nil age")
	}
	if tbl.Rows[2].Boarded != nil {
		t.Errorf("row 3 should have nil port")
	}
}

func TestRowReaderMismatch(t *testing.T) {
	rdr := NewRowReader(strings.NewReader("A,B\n1,2,3\n"))
	if _, err := rdr.Read(); err == nil {
		t.Errorf("expected header/val mismatch error")
	}
}
