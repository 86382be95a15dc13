package models

// SubQuery is one concrete provider request produced by the query planner.
// Keyword is empty for a broad (keyword-less) search.
type SubQuery struct {
	Lat          float64
	Lng          float64
	RadiusMeters int
	CategoryType string
	Keyword      string
	OpenNow      bool
}
