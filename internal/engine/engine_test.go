package engine

import (
	"testing"

	"github.com/google/generative-ai-go/genai"

	"github.com/tatianab/cursed-forest/internal/game"
)

func TestToHistoryRoleMapping(t *testing.T) {
	turns := []game.Turn{
		{Role: game.RoleNarrator, Text: "The forest stirs."},
		{Role: game.RolePlayer, Text: "go deeper"},
		{Role: game.RoleNarrator, Text: "Shadows close in."},
	}

	history := toHistory(turns)
	if len(history) != 3 {
		t.Fatalf("Expected 3 history entries, got %d", len(history))
	}

	wantRoles := []string{"model", "user", "model"}
	for i, want := range wantRoles {
		if history[i].Role != want {
			t.Errorf("history[%d].Role = %q, want %q", i, history[i].Role, want)
		}
	}

	text, ok := history[1].Parts[0].(genai.Text)
	if !ok || string(text) != "go deeper" {
		t.Errorf("Expected player text preserved, got %v", history[1].Parts[0])
	}
}

func TestResponseText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []genai.Part{genai.Text("You step into "), genai.Text("the clearing.")},
			},
		}},
	}

	text, err := responseText(resp)
	if err != nil {
		t.Fatalf("responseText failed: %v", err)
	}
	if text != "You step into the clearing." {
		t.Errorf("Expected joined parts, got %q", text)
	}
}

func TestResponseTextEmpty(t *testing.T) {
	if _, err := responseText(&genai.GenerateContentResponse{}); err == nil {
		t.Error("Expected error for empty response")
	}

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{genai.Blob{}}}}},
	}
	if _, err := responseText(resp); err == nil {
		t.Error("Expected error for non-text response")
	}
}
