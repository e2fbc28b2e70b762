// Command devserver runs the development API server over the in-memory
// client, so HTTP clients have a local target.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vitalog/internal/api/mockapi"
	"vitalog/internal/config"
	"vitalog/internal/devserver"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	opts := []mockapi.Option{mockapi.WithDemoData()}
	if !cfg.MockLatency {
		opts = append(opts, mockapi.WithoutLatency())
	}
	client := mockapi.New(opts...)

	srv := devserver.NewServer(cfg, client)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Dev server starting on port %s...", cfg.Port)
	if err := srv.Listen(); err != nil {
		log.Fatal(err)
	}
}
