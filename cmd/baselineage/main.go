package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/rohitgsuresh/Baselineage/api"
	"github.com/rohitgsuresh/Baselineage/config"
	"github.com/rohitgsuresh/Baselineage/internal/analytics"
	"github.com/rohitgsuresh/Baselineage/internal/engine"
)

func main() {
	// Define command-line flags
	var (
		help       = flag.Bool("help", false, "Show help message")
		version    = flag.Bool("version", false, "Show version information")
		port       = flag.String("port", "8080", "Port to run the server on")
		dataDir    = flag.String("data-dir", "./baselineage_data", "Directory to store snapshots and analytics")
		dataset    = flag.String("dataset", "./features.json", "Path to the feature dataset JSON file")
		configFile = flag.String("config", "", "Optional TOML config file (flags override file values)")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Baselineage - flags web-platform feature usage in source text\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                              # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000                  # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --dataset ./my_features.json # Use a custom feature dataset\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("Baselineage v1.0.0\n")
		fmt.Printf("In-text Baseline feature detection with suggestion fallback\n")
		return
	}

	settings := config.ScannerSettings{}
	serverPort := *port
	serverDataDir := *dataDir
	datasetPath := *dataset

	if *configFile != "" {
		cfg, err := config.LoadServerConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config file: %v", err)
		}
		settings = cfg.Scanner
		if cfg.Port != "" && !flagWasSet("port") {
			serverPort = cfg.Port
		}
		if cfg.DataDir != "" && !flagWasSet("data-dir") {
			serverDataDir = cfg.DataDir
		}
		if cfg.DatasetPath != "" && !flagWasSet("dataset") {
			datasetPath = cfg.DatasetPath
		}
	}
	settings.ApplyDefaults()
	if conflicts := settings.Validate(); len(conflicts) > 0 {
		for _, conflict := range conflicts {
			log.Printf("Config error: %s", conflict)
		}
		log.Fatalf("Invalid scanner settings")
	}

	// Initialize the annotation engine
	log.Printf("Using data directory: %s", serverDataDir)
	annotationEngine := engine.NewEngine(serverDataDir, datasetPath, settings)
	usageTracker := analytics.NewService(serverDataDir)

	// Initialize Gin router
	router := gin.Default()

	// Setup API routes
	api.SetupRoutes(router, annotationEngine, usageTracker)

	// Start the server
	log.Printf("Starting server on port %s...", serverPort)
	if err := router.Run(":" + serverPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// flagWasSet reports whether a flag was explicitly provided on the command line.
func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
