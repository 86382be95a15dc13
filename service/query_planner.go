package service

import (
	"strings"

	"eatscout-server/config"
	"eatscout-server/models"
)

const KEYWORD_SEPARATOR = ", "
const FAMOUS_KEYWORD = "famous restaurants"

// pureVegTokens are appended to every keyword-bearing composite when the
// dietary flag is set. They never form a sub-query of their own.
var pureVegTokens = []string{"pure veg", "vegetarian"}

type QueryPlanner struct{}

func NewQueryPlanner() *QueryPlanner {
	return &QueryPlanner{}
}

// PlanSubQueries turns the expanded keyword list into a bounded, ordered list
// of provider sub-queries. Without keywords the plan is a single broad search,
// plus a popularity-biased one in famous mode. With keywords the plan keeps
// the first MAX_SUB_QUERIES in expansion order.
func (p *QueryPlanner) PlanSubQueries(spec models.QuerySpec, keywords []string) []models.SubQuery {
	base := models.SubQuery{
		Lat:          spec.Lat,
		Lng:          spec.Lng,
		RadiusMeters: int(spec.RadiusKm * 1000),
		CategoryType: config.PLACES_RESTAURANT_TYPE,
		OpenNow:      spec.OpenNow,
	}

	if len(keywords) == 0 {
		queries := []models.SubQuery{base}
		if spec.Mode == models.ModeFamous {
			famous := base
			famous.Keyword = compositeKeyword(FAMOUS_KEYWORD, spec.PureVeg)
			queries = append(queries, famous)
		}
		return queries
	}

	if len(keywords) > config.MAX_SUB_QUERIES {
		keywords = keywords[:config.MAX_SUB_QUERIES]
	}

	queries := make([]models.SubQuery, 0, len(keywords))
	for _, kw := range keywords {
		q := base
		q.Keyword = compositeKeyword(kw, spec.PureVeg)
		queries = append(queries, q)
	}
	return queries
}

// compositeKeyword joins at most MAX_KEYWORD_TOKENS tokens so overlong
// keyword strings never degrade provider matching.
func compositeKeyword(keyword string, pureVeg bool) string {
	tokens := []string{keyword}
	if pureVeg {
		tokens = append(tokens, pureVegTokens...)
	}
	if len(tokens) > config.MAX_KEYWORD_TOKENS {
		tokens = tokens[:config.MAX_KEYWORD_TOKENS]
	}
	return strings.Join(tokens, KEYWORD_SEPARATOR)
}
