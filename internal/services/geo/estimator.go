package geo

import (
	"math"

	"fraudguard/internal/config"
)

// TravelEstimator supplies the minimum feasible travel time between two
// locations. Implementations may be backed by a distance service; the checker
// only depends on this interface.
type TravelEstimator interface {
	// MinimumTravelMinutes returns the minimum feasible travel time between
	// the two locations, and whether an estimate is available at all.
	MinimumTravelMinutes(from, to string) (float64, bool)
}

const (
	earthRadiusKm = 6371.0

	// cruiseSpeedKmh approximates the fastest commercially available hop
	// between two cities.
	cruiseSpeedKmh = 800.0

	// groundOverheadMinutes covers airport access, boarding and egress, the
	// floor below which no inter-city trip completes.
	groundOverheadMinutes = 90.0
)

// AirTravelEstimator estimates minimum travel time as a great-circle flight
// between known cities plus a fixed ground overhead. Locations missing from
// the city table produce no estimate and are never flagged.
type AirTravelEstimator struct {
	cities map[string]config.City
}

// NewAirTravelEstimator builds an estimator over the configured city table.
func NewAirTravelEstimator(cities map[string]config.City) *AirTravelEstimator {
	return &AirTravelEstimator{cities: cities}
}

// MinimumTravelMinutes implements TravelEstimator.
func (e *AirTravelEstimator) MinimumTravelMinutes(from, to string) (float64, bool) {
	a, ok := e.cities[from]
	if !ok {
		return 0, false
	}
	b, ok := e.cities[to]
	if !ok {
		return 0, false
	}
	if from == to {
		return 0, true
	}
	distance := haversineKm(a, b)
	return distance/cruiseSpeedKmh*60 + groundOverheadMinutes, true
}

func haversineKm(a, b config.City) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
