package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsCSVChanges(t *testing.T) {
	dir := t.TempDir()

	sw, err := NewSourceWatcher(dir)
	require.NoError(t, err)
	defer sw.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "mes.csv"), []byte("Nom\n"), 0o644))

	select {
	case event := <-sw.Events():
		assert.Equal(t, filepath.Join(dir, "mes.csv"), event.Path)
	case <-time.After(2 * time.Second):
		t.Fatal("no event received for CSV write")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()

	sw, err := NewSourceWatcher(dir)
	require.NoError(t, err)
	defer sw.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case event := <-sw.Events():
		t.Fatalf("unexpected event for %s", event.Path)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherRejectsMissingDir(t *testing.T) {
	_, err := NewSourceWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
