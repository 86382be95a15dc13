package util

import (
	"encoding/json"
	"fmt"
	"os"

	"eatscout-server/models/place"
)

// ReadNearbySearchResponseFromJSON loads a NearbySearchResponse from JSON on disk.
func ReadNearbySearchResponseFromJSON(filePath string) (*place.NearbySearchResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp place.NearbySearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal NearbySearchResponse: %w", err)
	}
	return &resp, nil
}

// ReadDetailsResponseFromJSON loads a DetailsResponse from JSON on disk.
func ReadDetailsResponseFromJSON(filePath string) (*place.DetailsResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp place.DetailsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal DetailsResponse: %w", err)
	}
	return &resp, nil
}
