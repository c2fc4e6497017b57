package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/arthroviz/andry-engine/internal/application"
)

var (
	Version   string = "dev"
	Commit    string = "unknown"
	BuildTime string = "unknown"
)

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showHelp {
		fmt.Printf("Andry Engine Server\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nEnvironment Variables:\n")
		fmt.Printf("  AUTH_TOKEN            Bearer token for the HTTP API (required)\n")
		fmt.Printf("  PORT                  Server port (default: 8080)\n")
		fmt.Printf("  HOST                  Server host (default: 0.0.0.0)\n")
		fmt.Printf("  STORE_TYPE            Artwork store: memory or cloud-storage (default: memory)\n")
		fmt.Printf("  GCS_BUCKET            Bucket for cloud-storage store\n")
		fmt.Printf("  BATCH_SCHEDULE        Cron expression for batch generation (default: 0 * * * *)\n")
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("Andry Engine Server\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Commit: %s\n", Commit)
		fmt.Printf("Build Time: %s\n", BuildTime)
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := application.New(ctx)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer app.Close()

	// Create HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", app.Config.Host, app.Config.Port),
		Handler:      app.Handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Schedule the batch generation pass
	c := cron.New()
	_, err = c.AddFunc(app.Config.BatchSchedule, func() {
		log.Printf("🕐 Scheduled batch generation starting")
		if err := app.Batch.Process(ctx); err != nil {
			log.Printf("❌ Scheduled batch generation failed: %v", err)
		} else {
			log.Printf("✅ Scheduled batch generation completed")
		}
	})
	if err != nil {
		log.Fatalf("Failed to schedule batch generation: %v", err)
	}
	log.Printf("📅 Scheduled batch generation with cron: %s", app.Config.BatchSchedule)

	c.Start()
	defer c.Stop()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server
	go func() {
		log.Printf("🚀 Starting server on %s:%s", app.Config.Host, app.Config.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Println("🛑 Shutting down server...")

	// Cancel background tasks
	cancel()

	// Stop cron scheduler
	c.Stop()

	// Shutdown HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("✅ Server stopped")
}
