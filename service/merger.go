package service

import (
	"eatscout-server/models"
	"eatscout-server/models/place"
)

type Merger struct{}

func NewMerger() *Merger {
	return &Merger{}
}

// Merge unions per-sub-query result batches in issue order into unique domain
// venues. The first occurrence of a place id wins wholesale; later duplicates
// are discarded without field merging. Records without an id are dropped
// since they can neither be deduplicated nor looked up later.
func (m *Merger) Merge(batches [][]place.Result) []models.Venue {
	seen := make(map[string]struct{})
	var venues []models.Venue
	for _, batch := range batches {
		for _, r := range batch {
			if r.PlaceID == "" {
				continue
			}
			if _, dup := seen[r.PlaceID]; dup {
				continue
			}
			seen[r.PlaceID] = struct{}{}
			venues = append(venues, venueFromResult(r))
		}
	}
	return venues
}

func venueFromResult(r place.Result) models.Venue {
	v := models.Venue{
		ID:         r.PlaceID,
		Name:       r.Name,
		Address:    r.Vicinity,
		Categories: r.Types,
	}
	if v.Categories == nil {
		v.Categories = []string{}
	}
	if r.Rating != nil {
		v.Rating = *r.Rating
	}
	if r.UserRatingsTotal != nil {
		v.Reviews = *r.UserRatingsTotal
	}
	if r.PriceLevel != nil {
		v.PriceLevel = *r.PriceLevel
	}
	if r.Geometry != nil {
		lat := r.Geometry.Location.Lat
		lng := r.Geometry.Location.Lng
		v.Lat = &lat
		v.Lng = &lng
	}
	if r.OpeningHours != nil {
		v.OpenNow = r.OpeningHours.OpenNow
	}
	return v
}
