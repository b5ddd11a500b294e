package config

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatcherDeliversReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := DefaultConfig()
	require.NoError(t, cfg.Save(path))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	assert.True(t, w.IsWatching())

	cfg.Contact.WhatsApp = "+92 345 6789012"
	require.NoError(t, cfg.Save(path))

	select {
	case reloaded := <-w.Reloads():
		assert.Equal(t, "+92 345 6789012", reloaded.Contact.WhatsApp)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered after config change")
	}

	stats := w.GetStats()
	assert.GreaterOrEqual(t, stats.EventsSeen, 1)
	assert.GreaterOrEqual(t, stats.ReloadsTriggered, 1)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, DefaultConfig().Save(path))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, DefaultConfig().Save(filepath.Join(dir, "unrelated.yaml")))

	select {
	case <-w.Reloads():
		t.Fatal("reload triggered by an unrelated file")
	case <-time.After(1200 * time.Millisecond):
	}

	assert.Equal(t, 0, w.GetStats().ReloadsTriggered)
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	require.NoError(t, w.Start(context.Background()))
	assert.True(t, w.IsWatching())

	w.Stop()
	assert.False(t, w.IsWatching())
	w.Stop()
}

func TestWatcherStopAfterContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	w, err := NewWatcher(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx))

	cancel()

	// Stop must not hang after the loop exited via the context.
	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}
