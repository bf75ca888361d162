package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"factoryflow/internal/core/model"
	"factoryflow/internal/data/loader"
)

func TestWorkforce(t *testing.T) {
	rows := []loader.Row{
		{
			"ID":                  "E42",
			"Nom":                 "Durand",
			"Prénom":              "Claire",
			"Qualification":       "Monteur",
			"Niveau d'expérience": "Expert",
			"Coût horaire (€)":    "42,50",
			"Âge":                 "38",
			"Poste_Num":           "3",
		},
		{
			"Nom":              "Martin",
			"Coût horaire (€)": "not-a-number",
			"Âge":              "",
		},
	}

	records := Workforce(rows)
	require.Len(t, records, 2)

	assert.Equal(t, "E42", records[0].ID)
	assert.Equal(t, "Claire Durand", records[0].Name())
	assert.Equal(t, 42.5, records[0].HourlyCost)
	assert.Equal(t, 38, records[0].Age)
	assert.Equal(t, 3, records[0].Poste)

	// Malformed cells coerce to zero values and a synthetic id is assigned.
	assert.Equal(t, "EMP-002", records[1].ID)
	assert.Equal(t, 0.0, records[1].HourlyCost)
	assert.Equal(t, 0, records[1].Age)
}

func TestExecutionSplitsPieceRefs(t *testing.T) {
	rows := []loader.Row{
		{
			"Nom":              "Rivetage aile",
			"Poste":            "7",
			"Temps Prévu":      "0:45:00",
			"Temps Réel":       "1:02:00",
			"Pièce(s)":         "A320-101, A320-102 ,",
			"Nombre pièces":    "4",
			"Aléas Industriels": "Panne outil",
		},
		{"Nom": "Contrôle", "Pièce(s)": ""},
	}

	records := Execution(rows)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"A320-101", "A320-102"}, records[0].PieceRefs)
	assert.Equal(t, 7, records[0].Poste)
	assert.Equal(t, "Panne outil", records[0].Issue)
	assert.Nil(t, records[1].PieceRefs)
}

func TestPartsCoercion(t *testing.T) {
	rows := []loader.Row{
		{
			"Code / Référence":        "A320-101",
			"Désignation":             "Longeron",
			"Coût achat pièce (€)":    "61200",
			"Criticité":               "Critique",
			"Fournisseur":             "AeroSup",
			"Délai Approvisionnement": "20 jours",
			"Temps CAO (h)":           "12,5",
			"Masse (kg)":              "140.2",
		},
	}

	records := Parts(rows)
	require.Len(t, records, 1)
	assert.Equal(t, 61200.0, records[0].PurchaseCost)
	assert.Equal(t, 12.5, records[0].DesignTime)
	assert.Equal(t, 140.2, records[0].Mass)
	assert.Equal(t, model.CriticalTier, records[0].Criticality)
}

func TestSnapshotPresenceFlags(t *testing.T) {
	raw := &loader.RawSnapshot{
		Workforce: []loader.Row{},
		Execution: nil, // MES unavailable
		Parts:     []loader.Row{{"Code / Référence": "X"}},
	}

	snap := Snapshot(raw)
	assert.True(t, snap.HasERP)
	assert.False(t, snap.HasMES)
	assert.True(t, snap.HasPLM)
	assert.Empty(t, snap.Workforce)
	assert.Len(t, snap.Parts, 1)
}

func TestDateOnly(t *testing.T) {
	rec := model.ExecutionRecord{Date: "2024-03-15 00:00:00"}
	assert.Equal(t, "2024-03-15", rec.DateOnly())
	rec.Date = "2024-03-15"
	assert.Equal(t, "2024-03-15", rec.DateOnly())
}
