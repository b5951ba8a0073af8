package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scenemover/internal/config"
	"scenemover/internal/handler"
	"scenemover/internal/service"
)

func main() {
	// Command line flags
	addr := flag.String("addr", "", "HTTP listen address (overrides config)")
	configPath := flag.String("config", "", "config file path (overrides search)")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting scenemover server...")

	// Load configuration
	var (
		cfg     *config.Config
		cfgPath string
		err     error
	)
	if *configPath != "" {
		cfg, cfgPath, err = config.LoadFromPath(*configPath)
	} else {
		cfg, cfgPath, err = config.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfgPath != "" {
		log.Printf("Config loaded: %s", cfgPath)
	} else {
		log.Println("No config file found, using defaults")
	}
	if *addr != "" {
		cfg.Listen = *addr
	}
	log.Printf("Device profiles: %d (default %q)", len(cfg.Profiles), cfg.DefaultProfile)

	// Initialize service and handlers
	remapSvc := service.NewRemapService(cfg)
	sceneHandler := handler.NewSceneHandler(remapSvc)

	mux := http.NewServeMux()

	// Scene API
	mux.HandleFunc("POST /api/scene/inspect", sceneHandler.InspectScene)
	mux.HandleFunc("POST /api/scene/remap", sceneHandler.RemapScene)

	// Profile API
	mux.HandleFunc("GET /api/profiles", sceneHandler.ListProfiles)

	// Health
	mux.HandleFunc("GET /api/health", sceneHandler.Health)

	// Apply middleware
	finalHandler := handler.Chain(mux,
		handler.Recover,
		handler.CORS,
		handler.Logger,
	)

	// Create server
	server := &http.Server{
		Addr:         cfg.Listen,
		Handler:      finalHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on %s", cfg.Listen)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
