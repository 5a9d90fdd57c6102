// Package engine is the Gemini-backed story generator. It adapts the
// conversation log to the genai chat API and hides everything about the
// backend from the game core, which only sees game.Generator.
package engine

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/tatianab/cursed-forest/internal/game"
)

// DefaultModel is used when the config names no model.
const DefaultModel = "gemini-1.5-flash"

// Engine generates story text with Gemini.
type Engine struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewEngine connects to Gemini and configures a model for narrative
// generation. Close must be called when done.
func NewEngine(ctx context.Context, apiKey, modelName string) (*Engine, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = DefaultModel
	}
	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.8)
	model.SetTopP(0.95)
	model.SetTopK(40)
	model.SetMaxOutputTokens(1024)
	model.ResponseMIMEType = "text/plain"

	return &Engine{client: client, model: model}, nil
}

// Close releases the underlying client.
func (e *Engine) Close() {
	e.client.Close()
}

// Generate implements game.Generator. The full conversation becomes the
// chat history and latest is sent as the new message.
func (e *Engine) Generate(ctx context.Context, turns []game.Turn, latest string) (string, error) {
	chat := e.model.StartChat()
	chat.History = toHistory(turns)

	resp, err := chat.SendMessage(ctx, genai.Text(latest))
	if err != nil {
		return "", err
	}
	return responseText(resp)
}

// toHistory maps conversation turns to genai chat content: narrator
// turns take the "model" role, player turns the "user" role.
func toHistory(turns []game.Turn) []*genai.Content {
	history := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		role := "user"
		if t.Role == game.RoleNarrator {
			role = "model"
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(t.Text)},
		})
	}
	return history
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}
	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text += string(t)
		}
	}
	if text == "" {
		return "", fmt.Errorf("unexpected response type from Gemini")
	}
	return text, nil
}
