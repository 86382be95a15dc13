package service

import (
	"math"

	"eatscout-server/models"
)

// DISTANCE_SENTINEL_KM stands in when a venue has no geometry, pushing it
// past the bonus range without excluding it.
const DISTANCE_SENTINEL_KM = 999.0

// DISTANCE_BONUS_CAP_KM bounds the proximity bonus so very close, low-quality
// venues cannot dominate purely on distance.
const DISTANCE_BONUS_CAP_KM = 6.0

const (
	FAMOUS_POPULARITY_WEIGHT   = 1.35
	FAMOUS_DISTANCE_WEIGHT     = 0.6
	BALANCED_POPULARITY_WEIGHT = 1.0
	BALANCED_DISTANCE_WEIGHT   = 1.1
)

type Scorer struct{}

func NewScorer() *Scorer {
	return &Scorer{}
}

// ScoreVenues computes each venue's distance from the origin and its
// mode-weighted relevance score in place. Popularity is rating * ln(1+n);
// ln dampens extreme review counts while still rewarding them.
func (s *Scorer) ScoreVenues(spec models.QuerySpec, venues []models.Venue) {
	for i := range venues {
		v := &venues[i]

		d := DISTANCE_SENTINEL_KM
		if v.Lat != nil && v.Lng != nil {
			d = HaversineKm(spec.Lat, spec.Lng, *v.Lat, *v.Lng)
			dist := d
			v.DistanceKm = &dist
		}

		popularity := v.Rating * math.Log1p(float64(v.Reviews))
		bonus := math.Max(0, DISTANCE_BONUS_CAP_KM-math.Min(DISTANCE_BONUS_CAP_KM, d))

		switch spec.Mode {
		case models.ModeFamous:
			v.Score = popularity*FAMOUS_POPULARITY_WEIGHT + bonus*FAMOUS_DISTANCE_WEIGHT
		default:
			v.Score = popularity*BALANCED_POPULARITY_WEIGHT + bonus*BALANCED_DISTANCE_WEIGHT
		}
	}
}

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two points in km.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degToRad(lat2 - lat1)
	dLng := degToRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degToRad(lat1))*math.Cos(degToRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
