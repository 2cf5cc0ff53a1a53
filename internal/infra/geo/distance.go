// Package geo derives display distances for project locations.
package geo

import (
	"homio/config"
	"homio/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

type distanceCalculator struct {
	beach  orb.Point
	center orb.Point
}

// NewDistanceCalculator builds a haversine distance calculator against the
// configured beach and city-center reference points.
func NewDistanceCalculator(cfg *config.Config) service.DistanceCalculator {
	var geoCfg config.GeoConfig
	if cfg.Geo != nil {
		geoCfg = *cfg.Geo
	}

	return &distanceCalculator{
		// orb points are (lon, lat).
		beach:  orb.Point{geoCfg.BeachLon, geoCfg.BeachLat},
		center: orb.Point{geoCfg.CenterLon, geoCfg.CenterLat},
	}
}

// BeachDistance returns the great-circle distance in meters to the beach
// reference point.
func (c *distanceCalculator) BeachDistance(lat, lon float64) float64 {
	return geo.Distance(orb.Point{lon, lat}, c.beach)
}

// CenterDistance returns the great-circle distance in meters to the
// city-center reference point.
func (c *distanceCalculator) CenterDistance(lat, lon float64) float64 {
	return geo.Distance(orb.Point{lon, lat}, c.center)
}
