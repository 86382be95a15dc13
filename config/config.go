package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Places API
const PLACES_ENDPOINT_BASE_V1 = "https://maps.googleapis.com/maps/api/place"
const PLACES_API_KEY_ENV = "PLACES_API_KEY"
const PLACES_RESTAURANT_TYPE = "restaurant"

// Cache TTLs, independently configurable per payload kind.
const SEARCH_CACHE_TTL_MINUTES = 10
const DETAIL_CACHE_TTL_MINUTES = 30

// Fan-out caps and the per-request deadline for the search pipeline.
const MAX_SUB_QUERIES = 8
const MAX_KEYWORD_TOKENS = 8
const SEARCH_REQUEST_TIMEOUT_SECONDS = 10

// Request defaults. Clamp bounds live next to QuerySpec in models.
const DEFAULT_RADIUS_KM = 5.0
const DEFAULT_MAX_RESULTS = 15

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const NEARBY_SEARCH_RESPONSE_RESOURCE = "nearby_search_response.json"
const PLACE_DETAILS_RESPONSE_RESOURCE = "place_details_response.json"
const DISCOVERY_MAP_OUTPUT_PATH = "discovery_result_map.html"

// PlacesAPIKey returns the provider credential, empty when unset.
func PlacesAPIKey() string {
	return os.Getenv(PLACES_API_KEY_ENV)
}

// RedisAddress returns the Redis address, overridable via REDIS_ADDRESS.
func RedisAddress() string {
	if addr := os.Getenv("REDIS_ADDRESS"); addr != "" {
		return addr
	}
	return REDIS_DB_ADDRESS
}

// Environment returns the deployment environment, defaulting to prod.
func Environment() string {
	if env := os.Getenv("EATSCOUT_ENV"); env != "" {
		return env
	}
	return "prod"
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
