package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/robinsingh-ai/library-api/internal/bookstore"
	"github.com/robinsingh-ai/library-api/internal/config"
	"github.com/robinsingh-ai/library-api/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	// Optional .env file; the environment wins when both are set
	_ = godotenv.Load()

	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	switch os.Args[1] {
	case "seed":
		cfg := config.NewConfig()
		if err := seed(cfg.Database.Path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Seeded %s with sample books\n", cfg.Database.Path)

	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// seed overwrites the data file with the sample catalog.
func seed(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(bookstore.SeedBooks(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal seed books: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command>\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve  Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  seed   Reset the data file to the sample catalog\n")
	fmt.Fprintf(os.Stderr, "\nConfiguration is read from the environment (PORT, HOST, DATABASE_PATH,\n")
	fmt.Fprintf(os.Stderr, "CORS_ALLOW_ORIGINS, SHUTDOWN_TIMEOUT_IN_SECONDS), optionally via a .env file.\n")
}
