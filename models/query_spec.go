package models

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// DiscoveryMode is the ranking bias: balanced trades proximity against
// popularity evenly, famous shifts weight toward popularity.
type DiscoveryMode string

const (
	ModeBalanced DiscoveryMode = "balanced"
	ModeFamous   DiscoveryMode = "famous"
)

// MealTag is an optional meal-time context contributing one search keyword.
type MealTag string

const (
	MealNone      MealTag = ""
	MealBreakfast MealTag = "breakfast"
	MealLunch     MealTag = "lunch"
	MealSnack     MealTag = "snack"
	MealDinner    MealTag = "dinner"
)

// Bounds enforced on every QuerySpec regardless of how it was built.
const (
	RADIUS_KM_MIN   = 1.0
	RADIUS_KM_MAX   = 20.0
	MAX_RESULTS_MIN = 1
	MAX_RESULTS_MAX = 20
)

// Coordinates in the canonical cache key are rounded to this many decimals
// (~11m) so near-identical origins share an entry.
const CACHE_KEY_COORD_DECIMALS = 4

// QuerySpec is one inbound discovery request, immutable once constructed.
type QuerySpec struct {
	Lat        float64
	Lng        float64
	RadiusKm   float64
	MaxResults int
	Cuisines   []string
	PureVeg    bool
	Mode       DiscoveryMode
	Meal       MealTag
	OpenNow    bool
}

// NewQuerySpec validates coordinates and clamps radius and result count into
// their documented bounds. Unknown modes fall back to balanced.
func NewQuerySpec(lat, lng, radiusKm float64, maxResults int, cuisines []string,
	pureVeg bool, mode DiscoveryMode, meal MealTag, openNow bool) (QuerySpec, error) {

	if !isFinite(lat) || !isFinite(lng) {
		return QuerySpec{}, fmt.Errorf("%w: coordinates must be finite numbers", ErrInvalidInput)
	}
	if mode != ModeFamous {
		mode = ModeBalanced
	}
	switch meal {
	case MealBreakfast, MealLunch, MealSnack, MealDinner:
	default:
		meal = MealNone
	}

	return QuerySpec{
		Lat:        lat,
		Lng:        lng,
		RadiusKm:   clampFloat(radiusKm, RADIUS_KM_MIN, RADIUS_KM_MAX),
		MaxResults: clampInt(maxResults, MAX_RESULTS_MIN, MAX_RESULTS_MAX),
		Cuisines:   cuisines,
		PureVeg:    pureVeg,
		Mode:       mode,
		Meal:       meal,
		OpenNow:    openNow,
	}, nil
}

// CacheKey derives the canonical cache key for this spec plus the exact
// keyword string the expander produced. Cuisines are normalized and sorted so
// "A,B" and "B,A" hit the same entry.
func (s QuerySpec) CacheKey(keywordSignature string) string {
	cuisines := make([]string, 0, len(s.Cuisines))
	for _, c := range s.Cuisines {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" {
			cuisines = append(cuisines, c)
		}
	}
	sort.Strings(cuisines)

	return fmt.Sprintf("%.*f|%.*f|%.1f|%d|%s|%t|%s|%s|%t|%s",
		CACHE_KEY_COORD_DECIMALS, s.Lat,
		CACHE_KEY_COORD_DECIMALS, s.Lng,
		s.RadiusKm,
		s.MaxResults,
		strings.Join(cuisines, ","),
		s.PureVeg,
		s.Mode,
		s.Meal,
		s.OpenNow,
		keywordSignature,
	)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
