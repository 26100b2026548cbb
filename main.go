package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "aerobook/internal/config"
	router "aerobook/internal/http"
	"aerobook/internal/http/handlers"
	"aerobook/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	var rng *rand.Rand
	if env.SeatPreseed {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	trips, err := store.NewTripStore(store.SeedTrips(time.Now(), rng))
	if err != nil {
		log.Fatalf("failed to seed trips: %v", err)
	}
	sessions := store.NewSessionStore()

	handler := handlers.New(sessions, trips, []byte(env.TokenSecret), env.GeminiAPIKey, env.GeminiModel)

	// Router (Gin engine)
	r := router.NewRouter(env, handler)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}
