package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuerySpec_ClampsBounds(t *testing.T) {
	tests := []struct {
		name           string
		radiusKm       float64
		maxResults     int
		wantRadius     float64
		wantMaxResults int
	}{
		{"below minimums", 0, 0, 1, 1},
		{"negative", -3, -5, 1, 1},
		{"above maximums", 50, 100, 20, 20},
		{"in range", 5, 12, 5, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := NewQuerySpec(19.2, 72.97, tt.radiusKm, tt.maxResults, nil, false, ModeBalanced, MealNone, false)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRadius, spec.RadiusKm)
			assert.Equal(t, tt.wantMaxResults, spec.MaxResults)
		})
	}
}

func TestNewQuerySpec_RejectsNonFiniteCoordinates(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := NewQuerySpec(bad, 72.97, 5, 10, nil, false, ModeBalanced, MealNone, false)
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = NewQuerySpec(19.2, bad, 5, 10, nil, false, ModeBalanced, MealNone, false)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestNewQuerySpec_UnknownModeFallsBackToBalanced(t *testing.T) {
	spec, err := NewQuerySpec(19.2, 72.97, 5, 10, nil, false, DiscoveryMode("wild"), MealTag("brunch"), false)
	require.NoError(t, err)
	assert.Equal(t, ModeBalanced, spec.Mode)
	assert.Equal(t, MealNone, spec.Meal)
}

func TestCacheKey_CuisineOrderIndependent(t *testing.T) {
	a, err := NewQuerySpec(19.2, 72.97, 5, 10, []string{"Maharashtrian", "Chinese"}, true, ModeFamous, MealDinner, true)
	require.NoError(t, err)
	b, err := NewQuerySpec(19.2, 72.97, 5, 10, []string{"chinese", " maharashtrian "}, true, ModeFamous, MealDinner, true)
	require.NoError(t, err)

	assert.Equal(t, a.CacheKey("kw"), b.CacheKey("kw"))
}

func TestCacheKey_SensitiveToEveryInput(t *testing.T) {
	base, err := NewQuerySpec(19.2, 72.97, 5, 10, []string{"chinese"}, false, ModeBalanced, MealNone, false)
	require.NoError(t, err)

	famous := base
	famous.Mode = ModeFamous
	veg := base
	veg.PureVeg = true
	open := base
	open.OpenNow = true

	keys := map[string]struct{}{
		base.CacheKey("kw"):   {},
		famous.CacheKey("kw"): {},
		veg.CacheKey("kw"):    {},
		open.CacheKey("kw"):   {},
		base.CacheKey("kw2"):  {},
	}
	assert.Len(t, keys, 5, "each differing input must produce a distinct key")
}

func TestCacheKey_RoundsNearIdenticalOrigins(t *testing.T) {
	a, err := NewQuerySpec(19.20001, 72.97002, 5, 10, nil, false, ModeBalanced, MealNone, false)
	require.NoError(t, err)
	b, err := NewQuerySpec(19.20004, 72.96998, 5, 10, nil, false, ModeBalanced, MealNone, false)
	require.NoError(t, err)

	assert.Equal(t, a.CacheKey(""), b.CacheKey(""))
}
