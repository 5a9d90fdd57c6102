package game

import (
	"fmt"
	"strings"
)

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleNarrator Role = "narrator"
	RolePlayer   Role = "player"
)

// Turn is one entry in the conversation: who spoke and what they said.
type Turn struct {
	Role Role
	Text string
}

// Intro is the fixed opening narration every game starts with.
const Intro = "Welcome, brave soul! You are Kaelen, a wanderer who finds yourself lost in the mysterious Cursed Forest. " +
	"Strange creatures, hidden dangers, and an ancient curse lurk in the shadows. Legend has it that the heart " +
	"of the forest holds a powerful artifact, but no one who has ventured deep enough has ever returned.\n\n" +
	"Your adventure begins at the edge of the forest, where an eerie fog hangs in the air. You notice:\n\n" +
	"1. A narrow path leading deeper into the woods\n" +
	"2. A strange glowing mushroom near a hollow tree\n" +
	"3. The sound of running water in the distance\n\n" +
	"What would you like to do?"

// Log is the append-only conversation history. It doubles as the full
// context sent to the generator each turn and as the source for
// rendering the story so far. Entries are never edited or removed.
type Log struct {
	turns []Turn
}

// NewLog returns a log seeded with the introduction narration.
func NewLog() *Log {
	return &Log{turns: []Turn{{Role: RoleNarrator, Text: Intro}}}
}

// Append adds a turn to the end of the log.
func (l *Log) Append(t Turn) {
	l.turns = append(l.turns, t)
}

// Turns returns the full chronological history. The returned slice is
// a copy; mutating it does not affect the log.
func (l *Log) Turns() []Turn {
	out := make([]Turn, len(l.turns))
	copy(out, l.turns)
	return out
}

// Len returns the number of turns recorded.
func (l *Log) Len() int {
	return len(l.turns)
}

// LastPlayerText returns the text of the most recent player turn, or
// the empty string if the player has not spoken yet.
func (l *Log) LastPlayerText() string {
	for i := len(l.turns) - 1; i >= 0; i-- {
		if l.turns[i].Role == RolePlayer {
			return l.turns[i].Text
		}
	}
	return ""
}

// Context produces everything one generator call needs: the full
// ordered turn history, and the outgoing message body — the latest
// player text with the live state summary suffixed. The summary is
// ephemeral; it never enters the log itself.
func (l *Log) Context(s *State) ([]Turn, string) {
	return l.Turns(), l.LastPlayerText() + "\n" + StateSummary(s)
}

// StateSummary renders the live-state instruction block appended to the
// outgoing player message each turn. It is rebuilt fresh per call and
// never stored in the log.
func StateSummary(s *State) string {
	inv := "empty"
	if len(s.Inventory) > 0 {
		inv = strings.Join(s.Inventory, ", ")
	}
	return fmt.Sprintf(`Current game state:
- Health: %d
- Inventory: %s
- Choices made: %d

Please continue the story and provide 2-3 clear choices for the player.
Highlight items the player finds in the story with ** so they are easy to pick up.
Easy to find health_potion when health is lower than 30.`, s.Health, inv, s.ChoicesMade)
}
