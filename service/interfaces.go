package service

import "eatscout-server/models"

// ResultCache is the TTL-keyed store the engine writes computed payloads
// into. Implementations must be safe for concurrent use; the payload is a
// pure function of the key, so last-writer-wins on concurrent sets is fine.
type ResultCache interface {
	GetSearchResults(key string) (*models.DiscoveryResponse, bool)
	SetSearchResults(key string, resp *models.DiscoveryResponse) error
	GetVenueDetail(venueID string) (*models.VenueDetail, bool)
	SetVenueDetail(detail *models.VenueDetail) error
}
