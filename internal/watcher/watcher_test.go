package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pathRecorder collects callback invocations across goroutines.
type pathRecorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *pathRecorder) record(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
	return nil
}

func (r *pathRecorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func startWatcher(t *testing.T, root string, callback Callback) *Watcher {
	t.Helper()
	w, err := New(Config{
		Root:       root,
		Extensions: []string{".pdf", ".txt"},
		Debounce:   30 * time.Millisecond,
	}, callback)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		_ = w.Close()
		<-done
	})
	return w
}

func TestNew_CreatesMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "documents")

	w, err := New(Config{Root: root, Extensions: []string{".txt"}}, func(string) error { return nil })
	require.NoError(t, err)
	defer w.Close()

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWatcher_ProcessesNewDocument(t *testing.T) {
	root := t.TempDir()
	rec := &pathRecorder{}
	startWatcher(t, root, rec.record)

	path := filepath.Join(root, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("resume text"), 0o644))

	assert.Eventually(t, func() bool {
		for _, p := range rec.snapshot() {
			if p == path {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_IgnoresUnsupportedExtensions(t *testing.T) {
	root := t.TempDir()
	rec := &pathRecorder{}
	startWatcher(t, root, rec.record)

	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.md"), []byte("x"), 0o644))

	time.Sleep(150 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}

func TestWatcher_CoalescesWriteBursts(t *testing.T) {
	root := t.TempDir()
	rec := &pathRecorder{}
	startWatcher(t, root, rec.record)

	path := filepath.Join(root, "resume.txt")
	f, err := os.Create(path)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err = f.WriteString("chunk\n")
		require.NoError(t, err)
		require.NoError(t, f.Sync())
		time.Sleep(5 * time.Millisecond)
	}
	require.NoError(t, f.Close())

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) >= 1
	}, 2*time.Second, 10*time.Millisecond)

	// Quiet period longer than the debounce window: no further fires.
	time.Sleep(100 * time.Millisecond)
	assert.Len(t, rec.snapshot(), 1, "a write burst yields one processing run")
}

func TestWatcher_WatchesNewSubdirectories(t *testing.T) {
	root := t.TempDir()
	rec := &pathRecorder{}
	startWatcher(t, root, rec.record)

	sub := filepath.Join(root, "archive")
	require.NoError(t, os.Mkdir(sub, 0o755))
	// Give the event loop a beat to register the new directory.
	time.Sleep(50 * time.Millisecond)

	path := filepath.Join(sub, "old_resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("pdf bytes"), 0o644))

	assert.Eventually(t, func() bool {
		for _, p := range rec.snapshot() {
			if p == path {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_CallbackErrorDoesNotStopLoop(t *testing.T) {
	root := t.TempDir()
	rec := &pathRecorder{}
	startWatcher(t, root, func(path string) error {
		_ = rec.record(path)
		return errors.New("processing failed")
	})

	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("x"), 0o644))
	require.Eventually(t, func() bool { return len(rec.snapshot()) >= 1 },
		2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(root, "b.txt"), []byte("y"), 0o644))
	assert.Eventually(t, func() bool { return len(rec.snapshot()) >= 2 },
		2*time.Second, 10*time.Millisecond)
}

func TestWatcher_CallbackPanicIsIsolated(t *testing.T) {
	root := t.TempDir()
	calls := make(chan string, 4)
	startWatcher(t, root, func(path string) error {
		calls <- path
		if filepath.Base(path) == "bad.txt" {
			panic("boom")
		}
		return nil
	})

	require.NoError(t, os.WriteFile(filepath.Join(root, "bad.txt"), []byte("x"), 0o644))
	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("first document was never processed")
	}

	require.NoError(t, os.WriteFile(filepath.Join(root, "good.txt"), []byte("y"), 0o644))
	select {
	case path := <-calls:
		assert.Equal(t, "good.txt", filepath.Base(path))
	case <-time.After(2 * time.Second):
		t.Fatal("watch loop stopped after a callback panic")
	}
}
