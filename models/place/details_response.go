package place

// DetailsResponse is the raw Place Details payload.
type DetailsResponse struct {
	Result       *Details `json:"result,omitempty"`
	Status       string   `json:"status"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

// Details is the extended record for a single place.
type Details struct {
	PlaceID          string               `json:"place_id"`
	Name             string               `json:"name"`
	FormattedAddress string               `json:"formatted_address,omitempty"`
	URL              string               `json:"url,omitempty"`
	Website          string               `json:"website,omitempty"`
	Rating           *float64             `json:"rating,omitempty"`
	UserRatingsTotal *int                 `json:"user_ratings_total,omitempty"`
	OpeningHours     *DetailsOpeningHours `json:"opening_hours,omitempty"`
	Reviews          []Review             `json:"reviews,omitempty"`
}

type DetailsOpeningHours struct {
	OpenNow     *bool    `json:"open_now,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

// Review is one provider-sourced review.
type Review struct {
	AuthorName              string `json:"author_name"`
	Rating                  int    `json:"rating"`
	Text                    string `json:"text"`
	RelativeTimeDescription string `json:"relative_time_description,omitempty"`
}
