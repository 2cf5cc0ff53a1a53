package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFeature_KnownTokens(t *testing.T) {
	assert.Equal(t, []string{"pet_friendly", "Pet Friendly", "hasPets"}, NormalizeFeature("pet_friendly"))
	assert.Equal(t, []string{"sea_view", "Sea View"}, NormalizeFeature("sea_view"))
	assert.Equal(t, []string{"smart_home", "Smart Home", "hasSmartHome"}, NormalizeFeature("smart_home"))
}

func TestNormalizeFeature_UnknownTokenFallsBackToItself(t *testing.T) {
	// The normalizer is total: novel feature names keep working without a
	// table update.
	assert.Equal(t, []string{"wine_cellar"}, NormalizeFeature("wine_cellar"))
}
