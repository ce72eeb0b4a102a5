package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"

	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/config"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/store"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/store/dbstore"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/store/filestore"
)

func main() {
	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg := config.Load()

	backend, err := openBackend(cfg)
	if err != nil {
		log.Fatalf("Failed to open storage backend: %v", err)
	}

	appHandler := NewApp(backend, cfg.JWTSecret)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      withLogging(appHandler),
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeout) * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s (backend=%s)", cfg.Port, cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
}

// openBackend constructs the storage backend selected by the
// configuration. Both implementations satisfy the same contract, so
// nothing above this call knows which one is running.
func openBackend(cfg config.Config) (store.Backend, error) {
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		log.Printf("Using PostgreSQL backend")
		return dbstore.Open(postgres.Open(cfg.DatabaseDSN))
	case config.BackendFile:
		log.Printf("Using file backend (dir=%s)", cfg.DataDir)
		return filestore.New(cfg.DataDir)
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}
}

// withLogging adds request logging middleware.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
