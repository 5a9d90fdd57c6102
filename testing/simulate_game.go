// Command simulate_game plays a short scripted game against the real
// Gemini backend and prints the state after each turn. Useful for
// eyeballing interpreter behavior on live generator output.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/tatianab/cursed-forest/internal/config"
	"github.com/tatianab/cursed-forest/internal/engine"
	"github.com/tatianab/cursed-forest/internal/game"
)

var script = []string{
	"take the narrow path deeper into the woods",
	"examine the glowing mushroom near the hollow tree",
	"follow the sound of running water",
	"search the riverbank for anything useful",
	"explore the cave behind the waterfall",
}

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	eng, err := engine.NewEngine(ctx, cfg.GeminiAPIKey, cfg.Model)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}
	defer eng.Close()

	session := game.NewSession(eng)
	fmt.Println("--- Introduction ---")
	fmt.Println(game.Intro)
	fmt.Println()

	for turn, action := range script {
		fmt.Printf("--- Turn %d ---\n", turn+1)
		fmt.Printf("Player: %s\n", action)

		if err := session.SubmitAction(ctx, action); err != nil {
			var genErr *game.GenerationError
			if errors.As(err, &genErr) {
				fmt.Printf("Generator error (turn not advanced): %v\n", genErr)
				continue
			}
			log.Fatalf("Unexpected error: %v", err)
		}

		turns := session.Log().Turns()
		fmt.Printf("Narrator: %s\n", turns[len(turns)-1].Text)

		state := session.State()
		fmt.Printf("State: Health=%d, Inventory=%v, Choices=%d\n", state.Health, state.Inventory, state.ChoicesMade)

		if item := session.PendingItem(); item != "" {
			fmt.Printf("Found: %s (picking it up)\n", item)
			session.ConfirmPickup()
		}

		if session.Phase() == game.PhaseDefeated {
			fmt.Println("Game Ended: You have perished in the Cursed Forest.")
			break
		}
		fmt.Println()
	}
}
