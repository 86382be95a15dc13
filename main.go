package main

import (
	"context"
	"log"

	"eatscout-server/config"
	"eatscout-server/di"
	"eatscout-server/models"
	"eatscout-server/util"
)

const debugLat = 19.2183
const debugLng = 72.9781

// plotDiscoveryResult runs a discovery against the container's places client
// and renders the scored result set as an HTML map. Dev-only debug aid.
func plotDiscoveryResult(container *di.Container) {
	log.Println("[Main] Rendering discovery result map")

	spec, err := models.NewQuerySpec(debugLat, debugLng, config.DEFAULT_RADIUS_KM,
		config.DEFAULT_MAX_RESULTS, nil, false, models.ModeBalanced, models.MealNone, false)
	if err != nil {
		log.Printf("[Main] Failed to build debug query: %v", err)
		return
	}

	response, err := container.DiscoveryService.Discover(context.Background(), spec)
	if err != nil {
		log.Printf("[Main] Failed to run debug discovery: %v", err)
		return
	}

	util.PlotVenues(*response, config.DISCOVERY_MAP_OUTPUT_PATH)
}

func main() {
	env := config.Environment()
	container := di.NewContainer(env)

	if env != "prod" {
		plotDiscoveryResult(container)
	}

	log.Printf("starting eatscout server - env: %s", env)
	container.EatScoutHttpServer.Start()
}
