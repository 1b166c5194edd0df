package main

import (
	"log"

	"AdminRelay/config"
	"AdminRelay/internal/app"
)

func main() {
	cfg, err := config.NewRelayConfig()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}
	app.Run(cfg)
}
