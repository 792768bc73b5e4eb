package main

import (
	"log"

	"DrawPad/internal/config"
	"DrawPad/internal/state"
	"DrawPad/internal/ui"
)

func main() {
	path, err := config.Path()
	if err != nil {
		log.Printf("No config location: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	session := state.NewSession()
	log.Printf("Starting DrawPad session %s", session.ID)
	if err := ui.RunApp(cfg, session); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
