// Package main is the entry point for the harmony API server
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/james-see/harmony/pkg/api"
	"github.com/james-see/harmony/pkg/config"
)

func main() {
	configFile := flag.String("config", "", "YAML config file")
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configFile, *port)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting harmony API server on port %d...\n", cfg.Server.Port)
	fmt.Printf("Swagger docs available at http://localhost:%d/swagger/index.html\n", cfg.Server.Port)

	if err := api.StartServer(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies a non-zero port override,
// validating the result
func loadConfig(path string, port int) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if port != 0 {
		cfg.Server.Port = port
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
