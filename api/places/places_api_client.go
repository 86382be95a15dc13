package places

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"eatscout-server/api"
	"eatscout-server/models"
	"eatscout-server/models/place"
)

// PlacesApiClient embeds the common HTTPClient
type PlacesApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	apiKey          string
}

// NewPlacesApiClient creates a new instance of PlacesApiClient
func NewPlacesApiClient(httpClient *api.HTTPClient) *PlacesApiClient {
	return &PlacesApiClient{
		HTTPClient: httpClient,
	}
}

// SetCredentials stores the provider API key used on every request.
func (c *PlacesApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

// HasCredentials reports whether an API key is configured.
func (c *PlacesApiClient) HasCredentials() bool {
	return c.apiKey != ""
}

// NearbySearch issues one sub-query against the Nearby Search endpoint.
func (c *PlacesApiClient) NearbySearch(ctx context.Context, q models.SubQuery) (*place.NearbySearchResponse, error) {
	if !c.HasCredentials() {
		return nil, models.ErrMissingAPIKey
	}

	vals := url.Values{}
	vals.Set("location", fmt.Sprintf("%f,%f", q.Lat, q.Lng))
	vals.Set("radius", strconv.Itoa(q.RadiusMeters))
	vals.Set("type", q.CategoryType)
	if q.Keyword != "" {
		vals.Set("keyword", q.Keyword)
	}
	if q.OpenNow {
		vals.Set("opennow", "true")
	}
	vals.Set("key", c.apiKey)

	var response place.NearbySearchResponse
	if err := c.GetJSON(ctx, "/nearbysearch/json", vals, &response); err != nil {
		return nil, &models.UpstreamTransportError{Op: "nearby search", Err: err}
	}
	return &response, nil
}

// PlaceDetails fetches the extended record for a single place id.
func (c *PlacesApiClient) PlaceDetails(ctx context.Context, placeID string) (*place.DetailsResponse, error) {
	if !c.HasCredentials() {
		return nil, models.ErrMissingAPIKey
	}

	vals := url.Values{}
	vals.Set("place_id", placeID)
	vals.Set("fields", "place_id,name,formatted_address,url,website,rating,user_ratings_total,opening_hours,reviews")
	vals.Set("key", c.apiKey)

	var response place.DetailsResponse
	if err := c.GetJSON(ctx, "/details/json", vals, &response); err != nil {
		return nil, &models.UpstreamTransportError{Op: "place details", Err: err}
	}
	return &response, nil
}
