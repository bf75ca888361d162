// Package summarizer is the boundary to the free-text cause-summarization
// collaborator. The engine hands it a bounded list of cause strings and gets
// back a structured summary; a collaborator failure turns into a fallback
// payload, never an error surfaced to the caller's caller.
package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"

	"factoryflow/internal/core/model"
)

// maxCauses bounds the prompt size; the true total is still reported.
const maxCauses = 20

// Summarizer produces a structured summary of production delay causes.
type Summarizer interface {
	Summarize(ctx context.Context, causes []string) (*model.CauseSummary, error)
}

// Fallback is the degraded payload returned when the collaborator fails.
func Fallback(err error) *model.CauseSummary {
	return &model.CauseSummary{
		Error:           err.Error(),
		Summary:         "Erreur lors de l'analyse IA.",
		TotalCauses:     0,
		MainCategories:  []model.CauseCategory{},
		Recommendations: []model.Recommendation{},
	}
}

// Empty is the payload for a source with no recorded causes at all. Not an
// error: there is simply nothing to analyze.
func Empty() *model.CauseSummary {
	return &model.CauseSummary{
		Summary:         "Aucune cause potentielle trouvée dans les données.",
		TotalCauses:     0,
		MainCategories:  []model.CauseCategory{},
		Recommendations: []model.Recommendation{},
	}
}

// buildPrompt renders the French analysis prompt over a bounded sample of
// causes, reminding the model of the true total.
func buildPrompt(sample []string, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyse ces %d causes de retards de production (échantillon de %d causes totales) et fournis un résumé structuré en français :\n\n", len(sample), total)
	b.WriteString("Causes identifiées :\n")
	for _, cause := range sample {
		fmt.Fprintf(&b, "- %s\n", cause)
	}
	b.WriteString(`
Fournis en JSON :
1. Un résumé général en 2 phrases
2. Les 3-4 catégories principales
3. Les 2-3 recommandations prioritaires

Format JSON strict :
{
  "summary": "résumé court",
  "main_categories": [
    {"category": "nom", "percentage": 30, "description": "1 phrase"},
    ...
  ],
  "recommendations": [
    {"priority": "Haute", "action": "action concrète"},
    ...
  ]
}`)
	return b.String()
}

// reply mirrors the JSON shape the prompt demands from the model.
type reply struct {
	Summary        string `json:"summary"`
	MainCategories []struct {
		Category    string  `json:"category"`
		Percentage  float64 `json:"percentage"`
		Description string  `json:"description"`
	} `json:"main_categories"`
	Recommendations []struct {
		Priority string `json:"priority"`
		Action   string `json:"action"`
	} `json:"recommendations"`
}

// parseReply strips markdown code fences if present and decodes the model's
// JSON into the summary contract.
func parseReply(text string, totalCauses int) (*model.CauseSummary, error) {
	raw := stripFences(strings.TrimSpace(text))

	var r reply
	if err := sonic.UnmarshalString(raw, &r); err != nil {
		return nil, fmt.Errorf("decode summarizer reply: %w", err)
	}

	out := &model.CauseSummary{
		Summary:         r.Summary,
		TotalCauses:     totalCauses,
		MainCategories:  []model.CauseCategory{},
		Recommendations: []model.Recommendation{},
	}
	for _, c := range r.MainCategories {
		out.MainCategories = append(out.MainCategories, model.CauseCategory{
			Category:    c.Category,
			Percentage:  c.Percentage,
			Description: c.Description,
		})
	}
	for _, rec := range r.Recommendations {
		out.Recommendations = append(out.Recommendations, model.Recommendation{
			Priority: rec.Priority,
			Action:   rec.Action,
		})
	}
	return out, nil
}

func stripFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	parts := strings.Split(text, "```")
	if len(parts) < 2 {
		return text
	}
	body := parts[1]
	body = strings.TrimPrefix(body, "json")
	return strings.TrimSpace(body)
}
