package manifestdb

import "fmt"

// A Passenger is one normalized row of the manifest. Every field is
// nullable; a nil pointer means the raw value was absent or failed numeric
// coercion. Values are never mutated after normalization.
type Passenger struct {
	PassengerId *int64
	Survived    *int64 // 0 or 1
	Pclass      *int64 // 1, 2 or 3
	Name        *string
	Sex         *string // trimmed, lowercased
	Age         *float64
	AgeWiki     *float64 // secondary age column, when the dump carries one
	SibSp       *int64
	Parch       *int64
	Fare        *float64
	Boarded     *string // normalized port name (or raw passthrough)
	Hometown    *string
	Destination *string
	Lifeboat    *string
}

// DisplayName never returns an empty string; unnamed rows show as "Unknown".
func (p Passenger) DisplayName() string {
	if p.Name == nil || *p.Name == "" {
		return "Unknown"
	}
	return *p.Name
}

func (p Passenger) DisplaySex() string {
	if p.Sex == nil {
		return ""
	}
	return *p.Sex
}

func (p Passenger) DidSurvive() bool { return p.Survived != nil && *p.Survived == 1 }
func (p Passenger) WasLost() bool    { return p.Survived != nil && *p.Survived == 0 }

func (p Passenger) String() string {
	id := int64(-1)
	if p.PassengerId != nil {
		id = *p.PassengerId
	}
	return fmt.Sprintf("[%d] %s", id, p.DisplayName())
}

// Small helpers for building records by hand (tests, mostly).
func IntPtr(i int64) *int64       { return &i }
func FloatPtr(f float64) *float64 { return &f }
func StrPtr(s string) *string     { return &s }
