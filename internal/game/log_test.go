package game

import (
	"strings"
	"testing"
)

func TestNewLogStartsWithIntro(t *testing.T) {
	l := NewLog()
	turns := l.Turns()
	if len(turns) != 1 {
		t.Fatalf("Expected 1 turn, got %d", len(turns))
	}
	if turns[0].Role != RoleNarrator {
		t.Errorf("Expected narrator intro, got role %q", turns[0].Role)
	}
	if turns[0].Text != Intro {
		t.Error("Expected intro text as first turn")
	}
}

func TestLogAppendPreservesOrder(t *testing.T) {
	l := NewLog()
	l.Append(Turn{Role: RolePlayer, Text: "go north"})
	l.Append(Turn{Role: RoleNarrator, Text: "You head north."})
	l.Append(Turn{Role: RolePlayer, Text: "open the door"})

	turns := l.Turns()
	if len(turns) != 4 {
		t.Fatalf("Expected 4 turns, got %d", len(turns))
	}
	if turns[1].Text != "go north" || turns[3].Text != "open the door" {
		t.Error("Turns out of order")
	}

	// Mutating the returned slice must not touch the log.
	turns[1].Text = "changed"
	if l.Turns()[1].Text != "go north" {
		t.Error("Turns() should return a copy")
	}
}

func TestLastPlayerText(t *testing.T) {
	l := NewLog()
	if got := l.LastPlayerText(); got != "" {
		t.Errorf("Expected empty last player text, got %q", got)
	}

	l.Append(Turn{Role: RolePlayer, Text: "look around"})
	l.Append(Turn{Role: RoleNarrator, Text: "Trees everywhere."})
	if got := l.LastPlayerText(); got != "look around" {
		t.Errorf("Expected %q, got %q", "look around", got)
	}

	l.Append(Turn{Role: RolePlayer, Text: "climb a tree"})
	if got := l.LastPlayerText(); got != "climb a tree" {
		t.Errorf("Expected %q, got %q", "climb a tree", got)
	}
}

func TestLogContext(t *testing.T) {
	l := NewLog()
	l.Append(Turn{Role: RolePlayer, Text: "cross the stream"})

	s := NewState()
	s.Inventory = []string{"key"}

	turns, latest := l.Context(s)
	if len(turns) != 2 {
		t.Fatalf("Expected full history in context, got %d turns", len(turns))
	}
	if !strings.HasPrefix(latest, "cross the stream\n") {
		t.Errorf("Expected latest player text first, got %q", latest)
	}
	if !strings.Contains(latest, "Inventory: key") {
		t.Errorf("Expected state summary suffixed, got %q", latest)
	}
}

func TestStateSummary(t *testing.T) {
	s := NewState()
	summary := StateSummary(s)
	if !strings.Contains(summary, "Health: 100") {
		t.Errorf("Expected health in summary, got:\n%s", summary)
	}
	if !strings.Contains(summary, "Inventory: empty") {
		t.Errorf("Expected empty inventory marker, got:\n%s", summary)
	}

	s.Inventory = []string{"sword", "map"}
	s.ChoicesMade = 3
	summary = StateSummary(s)
	if !strings.Contains(summary, "Inventory: sword, map") {
		t.Errorf("Expected inventory listing, got:\n%s", summary)
	}
	if !strings.Contains(summary, "Choices made: 3") {
		t.Errorf("Expected choice count, got:\n%s", summary)
	}
}
