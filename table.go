package manifestdb

// Columns records which columns were present in the raw dump. It is decided
// once at normalization time; queries branch on these flags rather than
// re-probing rows.
type Columns struct {
	PassengerId bool
	Survived    bool
	Pclass      bool
	Name        bool
	Sex         bool
	Age         bool
	AgeWiki     bool
	SibSp       bool
	Parch       bool
	Fare        bool
	Boarded     bool // true if either "Boarded" or "Embarked" was present
	Hometown    bool
	Destination bool
	Lifeboat    bool

	// Which raw column fed the Boarded field ("Boarded" or "Embarked");
	// empty if neither was present.
	PortSource string
}

// A Table is the normalized, immutable in-memory manifest. It is loaded
// once per process and only ever read after that.
type Table struct {
	Rows []Passenger
	Cols Columns
}

func (t *Table) NumRows() int { return len(t.Rows) }

// Survivors counts rows with a non-null survived value of 1.
func (t *Table) Survivors() int {
	n := 0
	for _, p := range t.Rows {
		if p.DidSurvive() {
			n++
		}
	}
	return n
}
