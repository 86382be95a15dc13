package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eatscout-server/models"
)

func scoredVenue(t *testing.T, mode models.DiscoveryMode, rating float64, reviews int, lat, lng float64) models.Venue {
	t.Helper()
	spec := models.QuerySpec{Lat: 19.2, Lng: 72.97, Mode: mode}
	venues := []models.Venue{{ID: "v", Rating: rating, Reviews: reviews, Lat: &lat, Lng: &lng}}
	NewScorer().ScoreVenues(spec, venues)
	return venues[0]
}

func TestScoreVenues_MonotonicInRating(t *testing.T) {
	low := scoredVenue(t, models.ModeBalanced, 3.0, 100, 19.21, 72.97)
	high := scoredVenue(t, models.ModeBalanced, 4.5, 100, 19.21, 72.97)
	assert.Greater(t, high.Score, low.Score)
}

func TestScoreVenues_MonotonicInReviews(t *testing.T) {
	few := scoredVenue(t, models.ModeBalanced, 4.0, 10, 19.21, 72.97)
	many := scoredVenue(t, models.ModeBalanced, 4.0, 10000, 19.21, 72.97)
	assert.Greater(t, many.Score, few.Score)
}

func TestScoreVenues_NonIncreasingInDistance(t *testing.T) {
	// ~1km vs ~5km north of origin, same quality
	near := scoredVenue(t, models.ModeBalanced, 4.0, 100, 19.209, 72.97)
	far := scoredVenue(t, models.ModeBalanced, 4.0, 100, 19.245, 72.97)
	assert.Greater(t, near.Score, far.Score)
}

func TestScoreVenues_BonusCappedBeyondSixKm(t *testing.T) {
	// both beyond the bonus range: distance stops mattering
	a := scoredVenue(t, models.ModeBalanced, 4.0, 100, 19.29, 72.97)
	b := scoredVenue(t, models.ModeBalanced, 4.0, 100, 19.35, 72.97)
	assert.InDelta(t, a.Score, b.Score, 1e-9)
}

func TestScoreVenues_FamousWeighsPopularityOverProximity(t *testing.T) {
	// popular but far vs mediocre but close
	popularFar := models.Venue{ID: "a", Rating: 4.8, Reviews: 5000}
	closeMediocre := models.Venue{ID: "b", Rating: 3.2, Reviews: 40}
	lat1, lng1 := 19.245, 72.97 // ~5km
	lat2, lng2 := 19.205, 72.97 // ~0.5km
	popularFar.Lat, popularFar.Lng = &lat1, &lng1
	closeMediocre.Lat, closeMediocre.Lng = &lat2, &lng2

	famous := []models.Venue{popularFar, closeMediocre}
	balanced := []models.Venue{popularFar, closeMediocre}
	NewScorer().ScoreVenues(models.QuerySpec{Lat: 19.2, Lng: 72.97, Mode: models.ModeFamous}, famous)
	NewScorer().ScoreVenues(models.QuerySpec{Lat: 19.2, Lng: 72.97, Mode: models.ModeBalanced}, balanced)

	famousGap := famous[0].Score - famous[1].Score
	balancedGap := balanced[0].Score - balanced[1].Score
	assert.Greater(t, famousGap, balancedGap, "famous mode widens the popularity lead")
}

func TestScoreVenues_MissingGeometryUsesSentinel(t *testing.T) {
	spec := models.QuerySpec{Lat: 19.2, Lng: 72.97, Mode: models.ModeBalanced}
	venues := []models.Venue{{ID: "nogeo", Rating: 4.0, Reviews: 100}}
	NewScorer().ScoreVenues(spec, venues)

	require.Nil(t, venues[0].DistanceKm)
	// sentinel distance means zero proximity bonus: score is pure popularity
	withGeo := scoredVenue(t, models.ModeBalanced, 4.0, 100, 19.5, 72.97)
	assert.InDelta(t, withGeo.Score, venues[0].Score, 1e-9)
}

func TestHaversineKm(t *testing.T) {
	// one degree of latitude is ~111km
	d := HaversineKm(19.0, 72.97, 20.0, 72.97)
	assert.InDelta(t, 111.2, d, 1.0)

	assert.InDelta(t, 0, HaversineKm(19.2, 72.97, 19.2, 72.97), 1e-9)
}
