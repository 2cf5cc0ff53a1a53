package geo

import (
	"testing"

	"homio/config"

	"github.com/stretchr/testify/assert"
)

func TestDistanceCalculator(t *testing.T) {
	// Dubai Marina beach vs. downtown reference points.
	calc := NewDistanceCalculator(&config.Config{
		Geo: &config.GeoConfig{
			BeachLat:  25.0785,
			BeachLon:  55.1330,
			CenterLat: 25.1972,
			CenterLon: 55.2744,
		},
	})

	t.Run("zero at the reference point", func(t *testing.T) {
		assert.InDelta(t, 0, calc.BeachDistance(25.0785, 55.1330), 1)
		assert.InDelta(t, 0, calc.CenterDistance(25.1972, 55.2744), 1)
	})

	t.Run("between the reference points", func(t *testing.T) {
		// The two reference points are roughly 19 km apart.
		d := calc.CenterDistance(25.0785, 55.1330)
		assert.Greater(t, d, 15000.0)
		assert.Less(t, d, 25000.0)
	})
}
