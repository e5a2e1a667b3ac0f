package manifestdb

import (
	"github.com/skypies/geo"
)

// The planned route of the voyage, in sailing order. The final two points
// were never reached; the sinking position splits the Atlantic crossing.
var RoutePoints = []geo.NamedLatlong{
	{Name: "Southampton", Latlong: geo.Latlong{Lat: 50.8998, Long: -1.4044}},
	{Name: "Cherbourg", Latlong: geo.Latlong{Lat: 49.6445, Long: -1.6221}},
	{Name: "Queenstown", Latlong: geo.Latlong{Lat: 51.8503, Long: -8.2943}},
	{Name: "Sinking Site", Latlong: geo.Latlong{Lat: 41.7325, Long: -49.9469}},
	{Name: "New York", Latlong: geo.Latlong{Lat: 40.7128, Long: -74.0060}},
}

type RouteLeg struct {
	From, To geo.NamedLatlong
	DistKM   float64
	DistNM   float64
}

// VoyageLegs returns the great-circle legs between consecutive route
// points. Distances are straight great-circle values, not sailed distance.
func VoyageLegs() []RouteLeg {
	legs := []RouteLeg{}
	for i := 0; i < len(RoutePoints)-1; i++ {
		from, to := RoutePoints[i], RoutePoints[i+1]
		km := from.Latlong.DistKM(to.Latlong)
		legs = append(legs, RouteLeg{
			From:   from,
			To:     to,
			DistKM: km,
			DistNM: km * geo.KNauticalMilePerKM,
		})
	}
	return legs
}
