package di

import (
	"context"
	"fmt"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"eatscout-server/api"
	"eatscout-server/api/places"
	"eatscout-server/config"
	"eatscout-server/dao/redis"
	"eatscout-server/db"
	"eatscout-server/server"
	"eatscout-server/server/handlers"
	services "eatscout-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient        db.RedisClient
	ResultCacheDao     *redis.ResultCacheDAO
	PlacesAPI          places.PlacesAPI
	DiscoveryService   *services.DiscoveryService
	DetailService      *services.VenueDetailService
	DiscoveryHandler   *handlers.DiscoveryHandler
	MuxRouter          *mux.Router
	Router             *server.Router
	EatScoutHttpServer *server.EatScoutHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.RedisAddress(),
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	// Initialize Redis client
	redisClient := db.NewCacheRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	// Initialize the result/detail cache DAO with independent TTLs
	resultCacheDao := redis.NewResultCacheDAO(
		redisClient,
		config.SEARCH_CACHE_TTL_MINUTES*time.Minute,
		config.DETAIL_CACHE_TTL_MINUTES*time.Minute,
	)

	// Initialize the places client - mock outside prod
	var placesAPI places.PlacesAPI
	if env != "prod" {
		placesAPI = places.NewPlacesApiClientMock()
		log.Printf("Using mock places api")
	} else {
		log.Printf("Using prod places api")
		httpClient := api.NewHTTPClient(config.PLACES_ENDPOINT_BASE_V1)

		client := places.NewPlacesApiClient(httpClient)
		client.SetCredentials(config.PlacesAPIKey())
		placesAPI = client
	}

	// Initialize service layer
	discoveryService := services.NewDiscoveryService(placesAPI, resultCacheDao)
	detailService := services.NewVenueDetailService(placesAPI, resultCacheDao)

	// Initialize handler and routing
	discoveryHandler := handlers.NewDiscoveryHandler(discoveryService, detailService)
	muxRouter := mux.NewRouter()
	router := server.NewRouter(discoveryHandler, muxRouter)

	eatScoutHttpServer := server.NewEatScoutHttpServer(router, muxRouter)

	return &Container{
		RedisClient:        redisClient,
		ResultCacheDao:     resultCacheDao,
		PlacesAPI:          placesAPI,
		DiscoveryService:   discoveryService,
		DetailService:      detailService,
		DiscoveryHandler:   discoveryHandler,
		MuxRouter:          muxRouter,
		Router:             router,
		EatScoutHttpServer: eatScoutHttpServer,
	}
}
