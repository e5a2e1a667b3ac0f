package manifestdb

import "fmt"

// PassengerForBigQuery is a flattened representation of a Passenger,
// designed for import into BigQuery for ad-hoc SQL. Nullable fields stay
// as pointers so absent values load as NULL rather than zero.
type PassengerForBigQuery struct {
	PassengerId *int64
	Survived    *int64
	Pclass      *int64
	ClassLabel  string // "1st Class" etc; empty if class unknown
	Name        string
	Sex         string
	Age         *float64
	SibSp       *int64
	Parch       *int64
	Fare        *float64
	Boarded     *string
	Hometown    *string
	Destination *string
	Lifeboat    *string
}

func (pbq PassengerForBigQuery) String() string {
	return fmt.Sprintf("%s (%s)", pbq.Name, pbq.ClassLabel)
}

func (p Passenger) ForBigQuery() *PassengerForBigQuery {
	pbq := PassengerForBigQuery{
		PassengerId: p.PassengerId,
		Survived:    p.Survived,
		Pclass:      p.Pclass,
		Name:        p.DisplayName(),
		Sex:         p.DisplaySex(),
		Age:         p.Age,
		SibSp:       p.SibSp,
		Parch:       p.Parch,
		Fare:        p.Fare,
		Boarded:     p.Boarded,
		Hometown:    p.Hometown,
		Destination: p.Destination,
		Lifeboat:    p.Lifeboat,
	}
	if p.Pclass != nil {
		pbq.ClassLabel = ClassLabels[*p.Pclass]
	}
	return &pbq
}
