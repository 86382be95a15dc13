package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// DiscoveryHandler is what the router needs from the handler layer.
type DiscoveryHandler interface {
	Discover(w http.ResponseWriter, r *http.Request)
	GetVenueDetail(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	discoveryHandler DiscoveryHandler
	router           *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	discoveryHandler DiscoveryHandler,
	router *mux.Router) *Router {
	return &Router{
		discoveryHandler: discoveryHandler,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?lat={latitude}&lng={longitude} plus optional discovery args
	r.router.HandleFunc("/v1/discover", r.discoveryHandler.Discover).Methods("GET")

	r.router.HandleFunc("/v1/venues/{id}", r.discoveryHandler.GetVenueDetail).Methods("GET")

	r.router.HandleFunc("/ping", r.discoveryHandler.Ping).Methods("GET")
}
