package main

import (
	"fmt"

	log "github.com/charmbracelet/log"

	"railroute/app"
	"railroute/pkg/config"
)

// @title Railroute API
// @version 1.0.0
// @description Demo payment-rail routing simulator
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	return app.Serve(cfg)
}
