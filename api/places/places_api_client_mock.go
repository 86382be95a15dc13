package places

import (
	"context"
	"fmt"

	"eatscout-server/config"
	"eatscout-server/models"
	"eatscout-server/models/place"
	"eatscout-server/util"
)

// PlacesApiClientMock serves canned provider responses from resources/ so the
// server runs without credentials in dev environments.
type PlacesApiClientMock struct {
}

// NewPlacesApiClientMock creates a new instance of PlacesApiClientMock
func NewPlacesApiClientMock() *PlacesApiClientMock {
	return &PlacesApiClientMock{}
}

// NearbySearch returns the canned Nearby Search fixture for every sub-query.
func (c *PlacesApiClientMock) NearbySearch(ctx context.Context, q models.SubQuery) (*place.NearbySearchResponse, error) {
	response, err := util.ReadNearbySearchResponseFromJSON(
		config.GetResourcePath(config.NEARBY_SEARCH_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read nearby search response from json")
		return nil, err
	}
	return response, nil
}

// PlaceDetails returns the canned Place Details fixture for any place id.
func (c *PlacesApiClientMock) PlaceDetails(ctx context.Context, placeID string) (*place.DetailsResponse, error) {
	response, err := util.ReadDetailsResponseFromJSON(
		config.GetResourcePath(config.PLACE_DETAILS_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read place details response from json")
		return nil, err
	}
	return response, nil
}

// SetCredentials is a no-op on the mock.
func (c *PlacesApiClientMock) SetCredentials(apiKey string) {}

// HasCredentials always reports true so the pipeline never fails fast in dev.
func (c *PlacesApiClientMock) HasCredentials() bool {
	return true
}
