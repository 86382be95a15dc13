package models

// VenueDetail is the extended per-venue payload served by the detail lookup
// and cached independently of search results.
type VenueDetail struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Address      string        `json:"address"`
	MapURL       string        `json:"map_url"`
	Website      string        `json:"website"`
	Rating       float64       `json:"rating"`
	ReviewCount  int           `json:"review_count"`
	OpenNow      *bool         `json:"open_now"`
	OpeningHours []string      `json:"opening_hours"`
	Reviews      []VenueReview `json:"reviews"`
}

// VenueReview is one provider review, trimmed for the response.
type VenueReview struct {
	Author string `json:"author"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
	When   string `json:"when"`
}
