package service

import (
	"strings"

	"eatscout-server/models"
)

// VegHints is the fixed, case-insensitive substring table consulted against a
// venue's name and address. The match is a heuristic signal, not a
// certification: false negatives and rare false positives are accepted.
var VegHints = []string{
	"pure veg",
	"pure-veg",
	"pureveg",
	"vegetarian",
	"shuddh shakahari",
	"shakahari",
	"veg only",
	"only veg",
	"jain",
}

// VegCategory is the provider category for vegetarian-only establishments.
const VegCategory = "vegetarian_restaurant"

type DietaryFilter struct{}

func NewDietaryFilter() *DietaryFilter {
	return &DietaryFilter{}
}

// FilterPureVeg retains venues whose name, address, or categories carry a
// vegetarian hint. Applied after scoring and before truncation.
func (f *DietaryFilter) FilterPureVeg(venues []models.Venue) []models.Venue {
	var kept []models.Venue
	for _, v := range venues {
		if f.matches(v) {
			kept = append(kept, v)
		}
	}
	return kept
}

func (f *DietaryFilter) matches(v models.Venue) bool {
	text := strings.ToLower(v.Name + " " + v.Address)
	for _, hint := range VegHints {
		if strings.Contains(text, hint) {
			return true
		}
	}
	for _, c := range v.Categories {
		if c == VegCategory {
			return true
		}
	}
	return false
}
