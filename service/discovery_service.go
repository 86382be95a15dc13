package service

import (
	"context"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"eatscout-server/api/places"
	"eatscout-server/config"
	"eatscout-server/models"
	"eatscout-server/models/place"
)

// SCORE_EPSILON defines a near-tie: score differences below it fall back to
// ascending distance so the closer venue wins.
const SCORE_EPSILON = 1e-9

// subQueryResult is the explicit outcome of one provider sub-query. Failed
// sub-queries contribute nothing to the merge; they are logged, not escalated.
type subQueryResult struct {
	Results []place.Result
	Err     error
}

func (r subQueryResult) Ok() bool {
	return r.Err == nil
}

// DiscoveryService orchestrates the search pipeline: cache short-circuit,
// keyword expansion, bounded concurrent fan-out, merge, score, dietary
// filter, rank, truncate, cache write.
type DiscoveryService struct {
	expander  *CuisineExpander
	planner   *QueryPlanner
	merger    *Merger
	scorer    *Scorer
	filter    *DietaryFilter
	placesAPI places.PlacesAPI
	cache     ResultCache
	timeout   time.Duration
}

// NewDiscoveryService constructs a DiscoveryService with the provider client
// and cache injected.
func NewDiscoveryService(placesAPI places.PlacesAPI, cache ResultCache) *DiscoveryService {
	return &DiscoveryService{
		expander:  NewCuisineExpander(),
		planner:   NewQueryPlanner(),
		merger:    NewMerger(),
		scorer:    NewScorer(),
		filter:    NewDietaryFilter(),
		placesAPI: placesAPI,
		cache:     cache,
		timeout:   config.SEARCH_REQUEST_TIMEOUT_SECONDS * time.Second,
	}
}

// Discover runs the full pipeline for one query. A cache hit short-circuits
// everything; otherwise every sub-query runs concurrently and individual
// failures are tolerated, except when the plan was a single broad sub-query
// with nothing else to merge.
func (ds *DiscoveryService) Discover(ctx context.Context, spec models.QuerySpec) (*models.DiscoveryResponse, error) {
	keywords := ds.expander.ExpandKeywords(spec)
	key := spec.CacheKey(strings.Join(keywords, ","))

	if cached, ok := ds.cache.GetSearchResults(key); ok {
		log.Printf("[DiscoveryService] Cache hit for key=%s", key)
		return cached, nil
	}

	if !ds.placesAPI.HasCredentials() {
		return nil, models.ErrMissingAPIKey
	}

	queries := ds.planner.PlanSubQueries(spec, keywords)
	log.Printf("[DiscoveryService] Fanning out %d sub-queries for key=%s", len(queries), key)
	results := ds.fetchAll(ctx, queries)

	if len(results) == 1 && !results[0].Ok() {
		return nil, results[0].Err
	}

	batches := make([][]place.Result, 0, len(results))
	for i, r := range results {
		if !r.Ok() {
			log.Printf("[DiscoveryService] Sub-query %d failed: %v", i, r.Err)
			continue
		}
		batches = append(batches, r.Results)
	}

	venues := ds.merger.Merge(batches)
	ds.scorer.ScoreVenues(spec, venues)
	if spec.PureVeg {
		venues = ds.filter.FilterPureVeg(venues)
	}
	rankVenues(venues)
	if len(venues) > spec.MaxResults {
		venues = venues[:spec.MaxResults]
	}
	if venues == nil {
		venues = []models.Venue{}
	}

	resp := &models.DiscoveryResponse{Venues: venues, Count: len(venues)}
	if err := ds.cache.SetSearchResults(key, resp); err != nil {
		log.Printf("[DiscoveryService] Failed to cache results for key=%s: %v", key, err)
	}
	return resp, nil
}

// fetchAll issues every sub-query concurrently and waits for all of them
// under the per-request deadline. No sub-query's failure cancels siblings; a
// sub-query still pending at the deadline counts as failed.
func (ds *DiscoveryService) fetchAll(ctx context.Context, queries []models.SubQuery) []subQueryResult {
	ctx, cancel := context.WithTimeout(ctx, ds.timeout)
	defer cancel()

	results := make([]subQueryResult, len(queries))
	g := new(errgroup.Group)
	g.SetLimit(config.MAX_SUB_QUERIES)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			results[i] = ds.fetchOne(ctx, q)
			return nil
		})
	}
	// Tasks never return errors; failures live in the result slots.
	_ = g.Wait()
	return results
}

// fetchOne performs a single nearby search, folding every failure mode into
// the sub-query result. ZERO_RESULTS is an empty contribution, not a failure.
func (ds *DiscoveryService) fetchOne(ctx context.Context, q models.SubQuery) subQueryResult {
	resp, err := ds.placesAPI.NearbySearch(ctx, q)
	if err != nil {
		return subQueryResult{Err: err}
	}
	switch resp.Status {
	case place.StatusOK:
		return subQueryResult{Results: resp.Results}
	case place.StatusZeroResults:
		return subQueryResult{}
	default:
		return subQueryResult{Err: &models.UpstreamStatusError{
			ProviderStatus: resp.Status,
			Message:        resp.ErrorMessage,
		}}
	}
}

// rankVenues orders by score descending, breaking near-ties by ascending
// distance.
func rankVenues(venues []models.Venue) {
	sort.SliceStable(venues, func(i, j int) bool {
		if math.Abs(venues[i].Score-venues[j].Score) < SCORE_EPSILON {
			return distanceOrSentinel(venues[i]) < distanceOrSentinel(venues[j])
		}
		return venues[i].Score > venues[j].Score
	})
}

func distanceOrSentinel(v models.Venue) float64 {
	if v.DistanceKm != nil {
		return *v.DistanceKm
	}
	return DISTANCE_SENTINEL_KM
}
