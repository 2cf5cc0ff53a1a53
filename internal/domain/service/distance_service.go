package service

// DistanceCalculator derives the display distances of a location from its
// coordinates. The reference points (beach, city center) are configuration.
type DistanceCalculator interface {
	// BeachDistance returns the distance in meters from the given point to
	// the configured beach reference point.
	BeachDistance(lat, lon float64) float64

	// CenterDistance returns the distance in meters from the given point to
	// the configured city-center reference point.
	CenterDistance(lat, lon float64) float64
}
