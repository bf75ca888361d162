package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"factoryflow/internal/core/model"
)

func writeCSV(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestCSVLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "mes.csv", "Nom,Poste,Temps Réel\nRivetage,3,0:25:00\nPeinture,1,0:30:00\n")

	rows, err := NewCSVLoader(dir).Load(model.SourceMES)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Rivetage", rows[0]["Nom"])
	assert.Equal(t, "3", rows[0]["Poste"])
	assert.Equal(t, "0:30:00", rows[1]["Temps Réel"])
}

func TestCSVLoaderMissingFileIsNotAnError(t *testing.T) {
	rows, err := NewCSVLoader(t.TempDir()).Load(model.SourceERP)
	require.NoError(t, err)
	assert.Nil(t, rows)
}

func TestCSVLoaderUnknownSource(t *testing.T) {
	_, err := NewCSVLoader(t.TempDir()).Load("CRM")
	assert.Error(t, err)
}

func TestCSVLoaderRaggedRows(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "plm.csv", "Code / Référence,Fournisseur\nREF-A\nREF-B,AeroSup\n")

	rows, err := NewCSVLoader(dir).Load(model.SourcePLM)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "", rows[0]["Fournisseur"])
	assert.Equal(t, "AeroSup", rows[1]["Fournisseur"])
}

func TestRowGetFirstNonEmpty(t *testing.T) {
	row := Row{"Nom": "", "Désignation": "Longeron"}
	assert.Equal(t, "Longeron", row.Get("Nom", "Désignation"))
	assert.Equal(t, "", row.Get("Absent"))
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "mes.csv", "Nom\nRivetage\n")

	snap, err := LoadAll(NewCSVLoader(dir))
	require.NoError(t, err)
	assert.Nil(t, snap.Workforce)
	assert.Len(t, snap.Execution, 1)
	assert.Nil(t, snap.Parts)
}
