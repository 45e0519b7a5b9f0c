package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"resumematch/internal/config"
	"resumematch/internal/db"
	"resumematch/internal/match"
	"resumematch/internal/metrics"
	"resumematch/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Register Prometheus collectors
	metrics.Init(database)

	// Build the stopword set once; the scorer is shared by all requests.
	stopwords := match.LoadStopwords(cfg.StopwordsFile)
	log.Printf("Loaded %d stopwords", len(stopwords))
	scorer := match.NewScorer(stopwords)

	// Ensure the upload staging directory exists
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload dir: %v", err)
	}

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, database, scorer); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
