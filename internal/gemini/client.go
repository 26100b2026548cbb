package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultModel = "gemini-2.5-flash"

// Client issues structured-output generation requests against the Gemini
// API. The response schema pins the payload to the two suggestion arrays the
// operator dashboard renders.
type Client struct {
	APIKey string
	Model  string
}

// Generate sends the prompt and returns the raw JSON text of the first
// candidate. Callers own the timeout via ctx.
func (c Client) Generate(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(c.APIKey))
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}
	defer client.Close()

	name := c.Model
	if name == "" {
		name = DefaultModel
	}

	model := client.GenerativeModel(name)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = responseSchema()

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", fmt.Errorf("no text in response")
	}
	return out, nil
}

func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"optimized_schedules": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"route_name":          {Type: genai.TypeString},
						"new_departure_times": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
						"justification":       {Type: genai.TypeString},
					},
					Required: []string{"route_name", "new_departure_times", "justification"},
				},
			},
			"new_route_suggestions": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"from":            {Type: genai.TypeString},
						"to":              {Type: genai.TypeString},
						"suggested_times": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
						"rationale":       {Type: genai.TypeString},
					},
					Required: []string{"from", "to", "suggested_times", "rationale"},
				},
			},
		},
	}
}
