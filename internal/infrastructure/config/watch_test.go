package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsConfigFile(t *testing.T) {
	assert.True(t, isConfigFile("levels/level1.json"))
	assert.True(t, isConfigFile("questions.YAML"))
	assert.True(t, isConfigFile("q.yml"))
	assert.False(t, isConfigFile("level1.json~"))
	assert.False(t, isConfigFile("notes.txt"))
}

func TestWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "level9.json"), []byte("{}"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, "level9.json", filepath.Base(name))
	case <-time.After(2 * time.Second):
		t.Fatal("no change event")
	}
}

func TestWatcher_CloseIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
	assert.False(t, w.Drain())
}

func TestWatcher_DrainErrors(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	defer w.Close()

	assert.Empty(t, w.DrainErrors())

	w.Errors <- errors.New("queue overflow")
	errs := w.DrainErrors()

	require.Len(t, errs, 1)
	assert.EqualError(t, errs[0], "queue overflow")
	assert.Empty(t, w.DrainErrors())
}

func TestWatcher_DrainErrorsAfterClose(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Empty(t, w.DrainErrors(), "closed watcher drains without blocking")
}
