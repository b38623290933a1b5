package main

import (
	"log"

	"fitapi/config"
	"fitapi/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	db, err := config.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	r := routes.SetupRouter(db, cfg)
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
