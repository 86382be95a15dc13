package models

import "fmt"

// Venue is one ranked discovery result. Score drives ranking inside the
// engine and is never serialized to the caller.
type Venue struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	City       string   `json:"city"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
	Rating     float64  `json:"rating"`
	Reviews    int      `json:"reviews"`
	PriceLevel int      `json:"price_level"`
	Categories []string `json:"categories"`
	OpenNow    *bool    `json:"open_now"`
	DistanceKm *float64 `json:"distance_km,omitempty"`

	Score float64 `json:"-"`
}

func (v *Venue) ToString() string {
	return fmt.Sprintf("Venue(id=%s, name=%s, rating=%.1f, reviews=%d)",
		v.ID, v.Name, v.Rating, v.Reviews)
}

// DiscoveryResponse is the cached and returned payload for one search.
type DiscoveryResponse struct {
	Venues []Venue `json:"venues"`
	Count  int     `json:"count"`
}
