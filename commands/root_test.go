package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubcommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["analyze"])
}

func TestAnalyzeRejectsUnknownFormat(t *testing.T) {
	t.Setenv("FACTORYFLOW_DATA_DIR", t.TempDir())

	prev := outputFormat
	outputFormat = "yaml"
	defer func() { outputFormat = prev }()

	err := runAnalyze(analyzeCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
