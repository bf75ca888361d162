package summarizer

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"factoryflow/internal/core/model"
	"factoryflow/internal/util"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Gemini summarizes causes through the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini builds a Gemini summarizer. The API key is required; the model
// name falls back to DefaultModel.
func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Gemini{client: client, model: modelName}, nil
}

// Summarize sends up to maxCauses cause strings to the model and decodes its
// structured reply. Callers are expected to wrap failures with Fallback.
func (g *Gemini) Summarize(ctx context.Context, causes []string) (*model.CauseSummary, error) {
	if len(causes) == 0 {
		return Empty(), nil
	}

	sample := causes
	if len(sample) > maxCauses {
		sample = sample[:maxCauses]
	}

	prompt := buildPrompt(sample, len(causes))
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	summary, err := parseReply(resp.Text(), len(causes))
	if err != nil {
		return nil, err
	}
	util.LogDebugf("Cause summary: %d categories, %d recommendations over %d causes",
		len(summary.MainCategories), len(summary.Recommendations), summary.TotalCauses)
	return summary, nil
}
