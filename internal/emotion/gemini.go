package emotion

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// Gemini classifies sentiment with a single-word completion against a Gemini
// model.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini-backed classifier. model may be empty to use the
// default.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = defaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Classify(ctx context.Context, text string) (string, error) {
	prompt := "Classify the emotional tone of the following text. " +
		"Answer with exactly one word: POSITIVE, NEGATIVE or NEUTRAL.\n\n" + text
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini classify: %w", err)
	}
	label := strings.ToUpper(strings.TrimSpace(result.Text()))
	if i := strings.IndexAny(label, " \t\n"); i >= 0 {
		label = label[:i]
	}
	switch label {
	case Positive, Negative, Neutral:
		return label, nil
	case "":
		return "", fmt.Errorf("gemini classify: empty response")
	default:
		// Unexpected but not useless; pass it through.
		return label, nil
	}
}
