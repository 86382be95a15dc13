package service

import (
	"strings"

	"eatscout-server/models"
)

// CuisineTag identifies a cuisine grouping. Tags outside the static table are
// treated as literal provider keywords, so new cuisines work without a
// release.
type CuisineTag string

const (
	CuisineMaharashtrian CuisineTag = "maharashtrian"
	CuisineSouthIndian   CuisineTag = "south indian"
	CuisineNorthIndian   CuisineTag = "north indian"
	CuisineChinese       CuisineTag = "chinese"
	CuisineStreetFood    CuisineTag = "street food"
)

// cuisineGroups maps an umbrella cuisine to its regional sub-cuisines. The
// umbrella token itself is always kept as a keyword alongside its subs.
var cuisineGroups = map[CuisineTag][]string{
	CuisineMaharashtrian: {"malvani", "kolhapuri", "varhadi", "khandeshi", "puneri", "konkani"},
	CuisineSouthIndian:   {"udupi", "chettinad", "andhra", "kerala"},
	CuisineNorthIndian:   {"punjabi", "mughlai", "awadhi"},
	CuisineChinese:       {"indo chinese", "sichuan", "cantonese"},
	CuisineStreetFood:    {"chaat", "vada pav", "pav bhaji"},
}

// mealKeywords maps a meal-time tag to the single keyword it contributes.
var mealKeywords = map[models.MealTag]string{
	models.MealBreakfast: "breakfast",
	models.MealLunch:     "lunch",
	models.MealSnack:     "snacks",
	models.MealDinner:    "dinner",
}

type CuisineExpander struct{}

func NewCuisineExpander() *CuisineExpander {
	return &CuisineExpander{}
}

// ExpandKeywords turns the spec's cuisine and meal tags into an ordered,
// deduplicated keyword list. Insertion order is stable for identical input,
// and expanding an already-expanded list is a no-op, which keeps cache keys
// deterministic.
func (e *CuisineExpander) ExpandKeywords(spec models.QuerySpec) []string {
	seen := make(map[string]struct{})
	var keywords []string
	add := func(kw string) {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			return
		}
		if _, dup := seen[kw]; dup {
			return
		}
		seen[kw] = struct{}{}
		keywords = append(keywords, kw)
	}

	for _, c := range spec.Cuisines {
		tag := CuisineTag(strings.ToLower(strings.TrimSpace(c)))
		add(string(tag))
		for _, sub := range cuisineGroups[tag] {
			add(sub)
		}
	}

	if kw, ok := mealKeywords[spec.Meal]; ok {
		add(kw)
	}

	return keywords
}
