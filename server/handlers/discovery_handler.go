package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"eatscout-server/config"
	"eatscout-server/models"
	"eatscout-server/service"
)

const (
	LAT_QUERY_ARG            = "lat"
	LNG_QUERY_ARG            = "lng"
	RADIUS_KM_QUERY_ARG      = "radiusKm"
	MAX_RESULTS_QUERY_ARG    = "maxResults"
	CUISINES_QUERY_ARG       = "cuisines"
	PURE_VEG_QUERY_ARG       = "pureVeg"
	DISCOVERY_MODE_QUERY_ARG = "discoveryMode"
	MEAL_QUERY_ARG           = "meal"
	OPEN_NOW_QUERY_ARG       = "openNow"
)

// errorResponse is the uniform failure shape for every route.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type DiscoveryHandler struct {
	discoveryService *service.DiscoveryService
	detailService    *service.VenueDetailService
}

func NewDiscoveryHandler(
	discoveryService *service.DiscoveryService,
	detailService *service.VenueDetailService) *DiscoveryHandler {

	return &DiscoveryHandler{
		discoveryService: discoveryService,
		detailService:    detailService,
	}
}

// Discover handles GET /v1/discover.
func (h *DiscoveryHandler) Discover(w http.ResponseWriter, r *http.Request) {
	spec, err := parseQuerySpec(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := h.discoveryService.Discover(r.Context(), spec)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetVenueDetail handles GET /v1/venues/{id}.
func (h *DiscoveryHandler) GetVenueDetail(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["id"]

	detail, err := h.detailService.GetVenueDetail(r.Context(), venueID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// Ping handles GET /ping
func (h *DiscoveryHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

// parseQuerySpec builds a validated QuerySpec from query args. Coordinates
// are required; everything else falls back to its documented default.
func parseQuerySpec(vals url.Values) (models.QuerySpec, error) {
	lat, err := parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		return models.QuerySpec{}, fmt.Errorf("%w: missing or invalid %s", models.ErrInvalidInput, LAT_QUERY_ARG)
	}
	lng, err := parseArgFloat64(vals, LNG_QUERY_ARG)
	if err != nil {
		return models.QuerySpec{}, fmt.Errorf("%w: missing or invalid %s", models.ErrInvalidInput, LNG_QUERY_ARG)
	}

	radiusKm := config.DEFAULT_RADIUS_KM
	if v := vals.Get(RADIUS_KM_QUERY_ARG); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			radiusKm = parsed
		}
	}

	maxResults := config.DEFAULT_MAX_RESULTS
	if v := vals.Get(MAX_RESULTS_QUERY_ARG); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			maxResults = parsed
		}
	}

	var cuisines []string
	for _, c := range strings.Split(vals.Get(CUISINES_QUERY_ARG), ",") {
		if c = strings.TrimSpace(c); c != "" {
			cuisines = append(cuisines, c)
		}
	}

	pureVeg := parseArgBool(vals, PURE_VEG_QUERY_ARG)
	openNow := parseArgBool(vals, OPEN_NOW_QUERY_ARG)
	mode := models.DiscoveryMode(vals.Get(DISCOVERY_MODE_QUERY_ARG))
	meal := models.MealTag(vals.Get(MEAL_QUERY_ARG))

	return models.NewQuerySpec(lat, lng, radiusKm, maxResults, cuisines, pureVeg, mode, meal, openNow)
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}

func parseArgBool(vals url.Values, name string) bool {
	v := vals.Get(name)
	if v == "" {
		return false
	}
	parsed, _ := strconv.ParseBool(v)
	return parsed
}

// writeError maps the error taxonomy onto HTTP statuses: 400 for caller
// mistakes, 502 for provider transport/status failures, 500 otherwise.
func writeError(w http.ResponseWriter, err error) {
	var transportErr *models.UpstreamTransportError
	var statusErr *models.UpstreamStatusError

	switch {
	case errors.Is(err, models.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrMissingAPIKey):
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "missing provider credentials"})
	case errors.As(err, &transportErr):
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:   "provider request failed",
			Details: transportErr.Error(),
		})
	case errors.As(err, &statusErr):
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:   "provider returned error status",
			Details: statusErr.Error(),
		})
	default:
		log.Printf("[DiscoveryHandler] Internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}
