package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weathermine/api"
	"weathermine/collector"
	"weathermine/datasource"
	"weathermine/preferences"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	// Parse command line arguments
	configFile := flag.String("config", "config.yaml", "Path to configuration file (YAML or JSON)")
	port := flag.Int("port", 0, "Port to run the server on (overrides config)")
	prefsPath := flag.String("prefs", "", "Path to the preferences database (overrides config)")
	flag.Parse()

	// Load configuration
	config, err := datasource.LoadConfig(*configFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("Config file %s not found, using defaults", *configFile)
		config = datasource.DefaultConfig()
	} else if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	config.ApplyEnv()

	if *port != 0 {
		config.Server.Port = *port
	}
	if *prefsPath != "" {
		config.Preferences.Path = *prefsPath
	}

	prefs, closePrefs, err := preferences.Open(config.Preferences.Path)
	if err != nil {
		log.Fatalf("Failed to open preferences: %v", err)
	}
	defer closePrefs()

	c := collector.NewFromConfig(config)
	server := api.NewServer(c, prefs, config.Locations, config.Server.Port)

	// Start the API server in a goroutine
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	// Wait for shutdown signal
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-shutdownChan
	log.Printf("Shutting down due to %s signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Shutdown complete")
}
