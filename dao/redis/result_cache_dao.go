package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"eatscout-server/db"
	"eatscout-server/models"
)

const SEARCH_RESULTS_KEY_FORMAT_V1 = "search_results_v1:%s"
const VENUE_DETAIL_KEY_FORMAT_V1 = "venue_detail_v1:%s"

// ResultCacheDAO stores computed search payloads and venue details in Redis
// under versioned keys, each with its own TTL. Entries are immutable once
// written; expiry is enforced by Redis, so a stale read is just a miss.
type ResultCacheDAO struct {
	client    db.RedisClient
	searchTTL time.Duration
	detailTTL time.Duration
}

// NewResultCacheDAO initializes a ResultCacheDAO with the Redis client.
func NewResultCacheDAO(client db.RedisClient, searchTTL, detailTTL time.Duration) *ResultCacheDAO {
	return &ResultCacheDAO{client: client, searchTTL: searchTTL, detailTTL: detailTTL}
}

// GetSearchResults returns the cached payload for a canonical key, or false
// on a miss. Corrupt entries are dropped and reported as misses.
func (dao *ResultCacheDAO) GetSearchResults(key string) (*models.DiscoveryResponse, bool) {
	redisKey := fmt.Sprintf(SEARCH_RESULTS_KEY_FORMAT_V1, key)
	str, err := dao.client.Get(redisKey)
	if err != nil {
		if !errors.Is(err, db.ErrCacheMiss) {
			log.Printf("[ResultCacheDAO] Failed to read search results: %v", err)
		}
		return nil, false
	}
	var resp models.DiscoveryResponse
	if err := json.Unmarshal([]byte(str), &resp); err != nil {
		log.Printf("[ResultCacheDAO] Dropping corrupt search entry %s: %v", redisKey, err)
		_ = dao.client.Del(redisKey)
		return nil, false
	}
	return &resp, true
}

// SetSearchResults caches the payload for a canonical key with the search TTL.
func (dao *ResultCacheDAO) SetSearchResults(key string, resp *models.DiscoveryResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal search results for key %s: %w", key, err)
	}
	redisKey := fmt.Sprintf(SEARCH_RESULTS_KEY_FORMAT_V1, key)
	if err := dao.client.Set(redisKey, string(data), dao.searchTTL); err != nil {
		return fmt.Errorf("failed to set search results in redis: %w", err)
	}
	return nil
}

// GetVenueDetail returns the cached detail payload for a venue id.
func (dao *ResultCacheDAO) GetVenueDetail(venueID string) (*models.VenueDetail, bool) {
	redisKey := fmt.Sprintf(VENUE_DETAIL_KEY_FORMAT_V1, venueID)
	str, err := dao.client.Get(redisKey)
	if err != nil {
		if !errors.Is(err, db.ErrCacheMiss) {
			log.Printf("[ResultCacheDAO] Failed to read venue detail: %v", err)
		}
		return nil, false
	}
	var detail models.VenueDetail
	if err := json.Unmarshal([]byte(str), &detail); err != nil {
		log.Printf("[ResultCacheDAO] Dropping corrupt detail entry %s: %v", redisKey, err)
		_ = dao.client.Del(redisKey)
		return nil, false
	}
	return &detail, true
}

// SetVenueDetail caches the detail payload per venue id with the detail TTL.
func (dao *ResultCacheDAO) SetVenueDetail(detail *models.VenueDetail) error {
	data, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("failed to marshal detail for venue %s: %w", detail.ID, err)
	}
	redisKey := fmt.Sprintf(VENUE_DETAIL_KEY_FORMAT_V1, detail.ID)
	if err := dao.client.Set(redisKey, string(data), dao.detailTTL); err != nil {
		return fmt.Errorf("failed to set venue detail in redis: %w", err)
	}
	return nil
}
