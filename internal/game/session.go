package game

import (
	"context"
	"errors"
	"fmt"
)

// Generator produces the next piece of story. turns is the full ordered
// conversation so far and latest is the message body for this call (the
// player's action plus the ephemeral state summary).
type Generator interface {
	Generate(ctx context.Context, turns []Turn, latest string) (string, error)
}

// GenerationError wraps a generator failure. The turn it interrupted is
// not rolled back from the log, but no game state was mutated and the
// player may simply try again.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("story generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Phase is where a session stands in its turn cycle.
type Phase int

const (
	// PhaseAwaitingInput means the session is ready for a player action.
	PhaseAwaitingInput Phase = iota
	// PhaseGenerating means a generator call is in flight. The caller is
	// responsible for not submitting further actions until it resolves.
	PhaseGenerating
	// PhaseDefeated is terminal: health hit zero. Only Restart leaves it.
	PhaseDefeated
)

// Session owns one player's complete game: state, conversation log, and
// the turn cycle tying them to the generator. Access is single-threaded;
// a session must not be shared across goroutines without external
// serialization, and independent sessions share nothing.
type Session struct {
	gen   Generator
	state *State
	log   *Log
	phase Phase
}

// NewSession starts a fresh game against the given generator.
func NewSession(gen Generator) *Session {
	return &Session{
		gen:   gen,
		state: NewState(),
		log:   NewLog(),
	}
}

// State returns the live game state for rendering. Callers must treat
// it as read-only; mutations go through the Session methods.
func (s *Session) State() *State { return s.state }

// Log returns the conversation log for rendering.
func (s *Session) Log() *Log { return s.log }

// Phase returns the session's current position in the turn cycle.
func (s *Session) Phase() Phase { return s.phase }

// SubmitAction runs one full turn: records the player's action, asks
// the generator to continue the story, interprets the response, and
// applies its effects. Blocks for the duration of the generator call.
//
// On generator failure the player's turn stays in the log but nothing
// else changes; the returned error satisfies errors.As with
// *GenerationError and the player may retry with a new submission.
func (s *Session) SubmitAction(ctx context.Context, action string) error {
	if s.phase == PhaseDefeated {
		return errors.New("the game is over; restart to play again")
	}

	s.log.Append(Turn{Role: RolePlayer, Text: action})
	s.state.RecordChoice()

	s.phase = PhaseGenerating
	turns, latest := s.log.Context(s.state)
	text, err := s.gen.Generate(ctx, turns, latest)
	if err != nil {
		s.phase = PhaseAwaitingInput
		return &GenerationError{Err: err}
	}

	s.log.Append(Turn{Role: RoleNarrator, Text: text})

	in := Interpret(text)
	s.state.ApplyDamage(in.Damage)
	if in.FoundItem != "" && s.state.SetFoundItem(in.FoundItem) {
		// Discovery counts as a choice of its own, on top of the
		// player-action increment above.
		s.state.RecordChoice()
	}

	if s.state.IsDefeated() {
		s.phase = PhaseDefeated
	} else {
		s.phase = PhaseAwaitingInput
	}
	return nil
}

// PendingItem returns the item awaiting pickup confirmation, or the
// empty string if there is none.
func (s *Session) PendingItem() string {
	return s.state.FoundItem
}

// ConfirmPickup accepts the pending found item into the inventory.
// Picking up does not consume a turn. Defeat is terminal: once the
// session is defeated only Restart has any effect, so this is a no-op.
func (s *Session) ConfirmPickup() {
	if s.phase == PhaseDefeated {
		return
	}
	s.state.ConfirmPickup()
}

// UsePotion drinks a carried health potion. Returns ErrItemUnavailable
// if the player has none; state is untouched in that case. Rejected
// outright once the session is defeated.
func (s *Session) UsePotion() error {
	if s.phase == PhaseDefeated {
		return errors.New("the game is over; restart to play again")
	}
	return s.state.ConsumeHealthPotion()
}

// Restart throws away all progress and begins a new game: fresh state,
// fresh log with only the introduction.
func (s *Session) Restart() {
	s.state = NewState()
	s.log = NewLog()
	s.phase = PhaseAwaitingInput
}
