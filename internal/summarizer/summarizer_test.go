package summarizer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallback(t *testing.T) {
	summary := Fallback(errors.New("service unreachable"))

	assert.Equal(t, "service unreachable", summary.Error)
	assert.Equal(t, "Erreur lors de l'analyse IA.", summary.Summary)
	assert.Zero(t, summary.TotalCauses)
	assert.NotNil(t, summary.MainCategories)
	assert.Empty(t, summary.MainCategories)
	assert.NotNil(t, summary.Recommendations)
	assert.Empty(t, summary.Recommendations)
}

func TestEmpty(t *testing.T) {
	summary := Empty()
	assert.Equal(t, "Aucune cause potentielle trouvée dans les données.", summary.Summary)
	assert.Zero(t, summary.TotalCauses)
	assert.Empty(t, summary.Error)
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt([]string{"Outil usé", "Pièce manquante"}, 37)

	assert.Contains(t, prompt, "Analyse ces 2 causes de retards de production (échantillon de 37 causes totales)")
	assert.Contains(t, prompt, "- Outil usé\n")
	assert.Contains(t, prompt, "- Pièce manquante\n")
	assert.Contains(t, prompt, `"main_categories"`)
	assert.Contains(t, prompt, `"recommendations"`)
}

func TestParseReply(t *testing.T) {
	raw := `{
		"summary": "Deux familles de causes dominent.",
		"main_categories": [
			{"category": "Outillage", "percentage": 60, "description": "Usure et pannes d'outils."}
		],
		"recommendations": [
			{"priority": "Haute", "action": "Planifier la maintenance préventive."}
		]
	}`

	summary, err := parseReply(raw, 37)
	require.NoError(t, err)

	assert.Equal(t, "Deux familles de causes dominent.", summary.Summary)
	assert.Equal(t, 37, summary.TotalCauses)
	require.Len(t, summary.MainCategories, 1)
	assert.Equal(t, "Outillage", summary.MainCategories[0].Category)
	assert.Equal(t, 60.0, summary.MainCategories[0].Percentage)
	require.Len(t, summary.Recommendations, 1)
	assert.Equal(t, "Haute", summary.Recommendations[0].Priority)
}

func TestParseReplyStripsFences(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"json fence", "```json\n{\"summary\": \"ok\"}\n```"},
		{"bare fence", "```\n{\"summary\": \"ok\"}\n```"},
		{"surrounding whitespace", "  ```json\n{\"summary\": \"ok\"}\n```  "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			summary, err := parseReply(tc.text, 5)
			require.NoError(t, err)
			assert.Equal(t, "ok", summary.Summary)
			assert.Equal(t, 5, summary.TotalCauses)
		})
	}
}

func TestParseReplyRejectsGarbage(t *testing.T) {
	_, err := parseReply("je ne peux pas répondre en JSON", 5)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "decode summarizer reply"))
}
