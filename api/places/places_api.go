package places

import (
	"context"

	"eatscout-server/models"
	"eatscout-server/models/place"
)

// PlacesAPI defines the interface for interacting with the places provider
type PlacesAPI interface {
	NearbySearch(ctx context.Context, q models.SubQuery) (*place.NearbySearchResponse, error)
	PlaceDetails(ctx context.Context, placeID string) (*place.DetailsResponse, error)
	SetCredentials(apiKey string)
	HasCredentials() bool
}
