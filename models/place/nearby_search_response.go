package place

// Provider status codes the engine distinguishes. Anything else is terminal
// for the sub-query that saw it.
const (
	StatusOK          = "OK"
	StatusZeroResults = "ZERO_RESULTS"
)

// NearbySearchResponse is the raw Nearby Search payload.
type NearbySearchResponse struct {
	Results      []Result `json:"results"`
	Status       string   `json:"status"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

// Result is one raw venue record from a Nearby Search.
type Result struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	Vicinity         string        `json:"vicinity,omitempty"`
	Geometry         *Geometry     `json:"geometry,omitempty"`
	Rating           *float64      `json:"rating,omitempty"`
	UserRatingsTotal *int          `json:"user_ratings_total,omitempty"`
	PriceLevel       *int          `json:"price_level,omitempty"`
	Types            []string      `json:"types,omitempty"`
	OpeningHours     *OpeningHours `json:"opening_hours,omitempty"`
}

type Geometry struct {
	Location Location `json:"location"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// OpeningHours carries the tri-state open-now indicator: nil means unknown.
type OpeningHours struct {
	OpenNow *bool `json:"open_now,omitempty"`
}
