package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"eatscout-server/api/places"
	"eatscout-server/models"
	"eatscout-server/models/place"
)

// MAX_DETAIL_REVIEWS bounds how many provider reviews a detail payload keeps.
const MAX_DETAIL_REVIEWS = 5

// VenueDetailService resolves extended metadata for one venue id, cached per
// id with its own TTL. No fan-out: one upstream call per miss.
type VenueDetailService struct {
	placesAPI places.PlacesAPI
	cache     ResultCache
}

func NewVenueDetailService(placesAPI places.PlacesAPI, cache ResultCache) *VenueDetailService {
	return &VenueDetailService{placesAPI: placesAPI, cache: cache}
}

// GetVenueDetail returns the detail payload for a venue, serving from cache
// when fresh. Provider statuses other than OK escalate, since there is no
// sibling result to fall back on.
func (vs *VenueDetailService) GetVenueDetail(ctx context.Context, venueID string) (*models.VenueDetail, error) {
	if err := validateVenueID(venueID); err != nil {
		return nil, err
	}

	if cached, ok := vs.cache.GetVenueDetail(venueID); ok {
		log.Printf("[VenueDetailService] Cache hit for venue_id=%s", venueID)
		return cached, nil
	}

	if !vs.placesAPI.HasCredentials() {
		return nil, models.ErrMissingAPIKey
	}

	resp, err := vs.placesAPI.PlaceDetails(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if resp.Status != place.StatusOK || resp.Result == nil {
		return nil, &models.UpstreamStatusError{
			ProviderStatus: resp.Status,
			Message:        resp.ErrorMessage,
		}
	}

	detail := detailFromResult(venueID, resp.Result)
	if err := vs.cache.SetVenueDetail(detail); err != nil {
		log.Printf("[VenueDetailService] Failed to cache detail for venue_id=%s: %v", venueID, err)
	}
	return detail, nil
}

// validateVenueID rejects ids that cannot be a provider place id.
func validateVenueID(venueID string) error {
	venueID = strings.TrimSpace(venueID)
	if venueID == "" {
		return fmt.Errorf("%w: empty venue id", models.ErrInvalidInput)
	}
	for _, r := range venueID {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return fmt.Errorf("%w: malformed venue id %q", models.ErrInvalidInput, venueID)
		}
	}
	return nil
}

func detailFromResult(venueID string, r *place.Details) *models.VenueDetail {
	detail := &models.VenueDetail{
		ID:           venueID,
		Name:         r.Name,
		Address:      r.FormattedAddress,
		MapURL:       r.URL,
		Website:      r.Website,
		OpeningHours: []string{},
		Reviews:      []models.VenueReview{},
	}
	if r.PlaceID != "" {
		detail.ID = r.PlaceID
	}
	if r.Rating != nil {
		detail.Rating = *r.Rating
	}
	if r.UserRatingsTotal != nil {
		detail.ReviewCount = *r.UserRatingsTotal
	}
	if r.OpeningHours != nil {
		detail.OpenNow = r.OpeningHours.OpenNow
		if r.OpeningHours.WeekdayText != nil {
			detail.OpeningHours = r.OpeningHours.WeekdayText
		}
	}
	for i, review := range r.Reviews {
		if i >= MAX_DETAIL_REVIEWS {
			break
		}
		detail.Reviews = append(detail.Reviews, models.VenueReview{
			Author: review.AuthorName,
			Rating: review.Rating,
			Text:   review.Text,
			When:   review.RelativeTimeDescription,
		})
	}
	return detail
}
