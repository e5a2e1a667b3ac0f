package report

// go test -v github.com/skypies/manifestdb/report

// Shared fixtures for the report tests.

import (
	mdb "github.com/skypies/manifestdb"
)

func ip(v int64) *int64      { return &v }
func fp(v float64) *float64  { return &v }
func sp(v string) *string    { return &v }

// A small hand-rolled manifest with every column present.
func fixtureTable() *mdb.Table {
	rows := []mdb.Passenger{
		{PassengerId: ip(1), Survived: ip(1), Pclass: ip(1), Name: sp("Astor, Col. John"),
			Sex: sp("male"), Age: fp(47), Fare: fp(227.525), Boarded: sp("Cherbourg"),
			Hometown: sp("New York"), Destination: sp("New York"), Lifeboat: nil},
		{PassengerId: ip(2), Survived: ip(0), Pclass: ip(1), Name: sp("Guggenheim, Mr. Benjamin"),
			Sex: sp("male"), Age: fp(46), Fare: fp(79.2), Boarded: sp("Cherbourg"),
			Hometown: sp("New York"), Destination: sp("New York")},
		{PassengerId: ip(3), Survived: ip(1), Pclass: ip(3), Name: sp("Dahl, Mr. Karl"),
			Sex: sp("male"), Age: fp(45), Fare: fp(8.05), Boarded: sp("Southampton"),
			Hometown: sp("Australia"), Destination: sp("San Francisco"), Lifeboat: sp("15")},
		{PassengerId: ip(4), Survived: ip(1), Pclass: ip(3), Name: sp("Abbott, Mrs. Rosa"),
			Sex: sp("female"), Age: fp(39), Fare: fp(20.25), Boarded: sp("Southampton"),
			Hometown: sp("England"), Destination: sp("Providence"), Lifeboat: sp("A")},
		{PassengerId: ip(5), Survived: ip(0), Pclass: ip(3), Name: sp("Sage, Miss. Stella"),
			Sex: sp("female"), Age: fp(20), Fare: fp(69.55), Boarded: sp("Southampton"),
			Hometown: sp("England"), Destination: sp("Jacksonville")},
		{PassengerId: ip(6), Survived: ip(0), Pclass: ip(3), Name: sp("Unknown stowaway"),
			Sex: nil, Age: nil, Fare: nil, Boarded: nil},
		{PassengerId: ip(7), Survived: nil, Pclass: ip(2), Name: sp("Hart, Miss. Eva"),
			Sex: sp("female"), Age: fp(7), Fare: fp(26.25), Boarded: sp("Southampton"),
			Hometown: sp("England"), Destination: sp("Winnipeg"), Lifeboat: sp("14")},
	}

	return &mdb.Table{
		Rows: rows,
		Cols: mdb.Columns{
			PassengerId: true, Survived: true, Pclass: true, Name: true,
			Sex: true, Age: true, Fare: true, Boarded: true,
			Hometown: true, Destination: true, Lifeboat: true,
			PortSource: "Boarded",
		},
	}
}

func emptyTable() *mdb.Table {
	return &mdb.Table{Rows: []mdb.Passenger{}, Cols: mdb.Columns{}}
}
