package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

const SERVER_ADDRESS = ":8080"
const SHUTDOWN_TIMEOUT = 5 * time.Second

type EatScoutHttpServer struct {
	router    *Router
	muxRouter *mux.Router
}

func NewEatScoutHttpServer(router *Router, muxRouter *mux.Router) *EatScoutHttpServer {
	return &EatScoutHttpServer{
		router:    router,
		muxRouter: muxRouter,
	}
}

// Start registers routes and serves until SIGINT/SIGTERM, then drains
// in-flight requests before exiting.
func (s *EatScoutHttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    SERVER_ADDRESS,
		Handler: cors.Default().Handler(s.muxRouter),
	}

	// Channel to listen for interrupt or termination signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start the server in a goroutine so it doesn't block
	go func() {
		fmt.Println("Starting server on " + SERVER_ADDRESS)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for a signal to shut down
	<-stop
	fmt.Println("\nShutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	fmt.Println("Server exiting")
}
