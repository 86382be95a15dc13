package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eatscout-server/config"
	"eatscout-server/models"
)

func plannerSpec(mode models.DiscoveryMode, pureVeg bool) models.QuerySpec {
	return models.QuerySpec{
		Lat: 19.2, Lng: 72.97, RadiusKm: 5, MaxResults: 10,
		Mode: mode, PureVeg: pureVeg,
	}
}

func TestPlanSubQueries_NoKeywordsBalanced(t *testing.T) {
	queries := NewQueryPlanner().PlanSubQueries(plannerSpec(models.ModeBalanced, false), nil)

	require.Len(t, queries, 1, "balanced mode without keywords issues exactly one broad sub-query")
	assert.Empty(t, queries[0].Keyword)
	assert.Equal(t, 5000, queries[0].RadiusMeters)
	assert.Equal(t, config.PLACES_RESTAURANT_TYPE, queries[0].CategoryType)
}

func TestPlanSubQueries_NoKeywordsFamousAddsBiasedQuery(t *testing.T) {
	queries := NewQueryPlanner().PlanSubQueries(plannerSpec(models.ModeFamous, false), nil)

	require.Len(t, queries, 2)
	assert.Empty(t, queries[0].Keyword)
	assert.Equal(t, FAMOUS_KEYWORD, queries[1].Keyword)
}

func TestPlanSubQueries_FamousBiasedQueryCarriesPureVegTokens(t *testing.T) {
	queries := NewQueryPlanner().PlanSubQueries(plannerSpec(models.ModeFamous, true), nil)

	require.Len(t, queries, 2)
	assert.Empty(t, queries[0].Keyword, "broad sub-query stays keyword-free")
	assert.True(t, strings.HasPrefix(queries[1].Keyword, FAMOUS_KEYWORD))
	assert.True(t, strings.Contains(queries[1].Keyword, "pure veg"), "composite %q", queries[1].Keyword)
	assert.True(t, strings.Contains(queries[1].Keyword, "vegetarian"), "composite %q", queries[1].Keyword)
}

func TestPlanSubQueries_CapsFanOut(t *testing.T) {
	keywords := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		keywords = append(keywords, fmt.Sprintf("kw%d", i))
	}

	queries := NewQueryPlanner().PlanSubQueries(plannerSpec(models.ModeBalanced, false), keywords)

	require.Len(t, queries, config.MAX_SUB_QUERIES)
	// deterministic truncation: first N in expansion order
	for i, q := range queries {
		assert.Equal(t, fmt.Sprintf("kw%d", i), q.Keyword)
	}
}

func TestPlanSubQueries_PureVegAppendsTokensToEveryComposite(t *testing.T) {
	queries := NewQueryPlanner().PlanSubQueries(plannerSpec(models.ModeBalanced, true), []string{"malvani", "udupi"})

	require.Len(t, queries, 2, "dietary tokens never form their own sub-query")
	for _, q := range queries {
		assert.True(t, strings.Contains(q.Keyword, "pure veg"), "composite %q", q.Keyword)
		assert.True(t, strings.Contains(q.Keyword, "vegetarian"), "composite %q", q.Keyword)
	}
}

func TestPlanSubQueries_CarriesOpenNow(t *testing.T) {
	spec := plannerSpec(models.ModeBalanced, false)
	spec.OpenNow = true

	queries := NewQueryPlanner().PlanSubQueries(spec, []string{"chaat"})
	require.Len(t, queries, 1)
	assert.True(t, queries[0].OpenNow)
}
