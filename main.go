package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tatianab/cursed-forest/internal/config"
	"github.com/tatianab/cursed-forest/internal/engine"
	"github.com/tatianab/cursed-forest/internal/game"
	"github.com/tatianab/cursed-forest/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	eng, err := engine.NewEngine(ctx, cfg.GeminiAPIKey, cfg.Model)
	if err != nil {
		fmt.Printf("Error creating engine: %v\n", err)
		os.Exit(1)
	}
	defer eng.Close()

	session := game.NewSession(eng)

	if err := tui.Run(session); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
