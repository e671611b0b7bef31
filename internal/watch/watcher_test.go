package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestRoots(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	desc := filepath.Join(src, "com", "example", "App.gwt.xml")
	if err := os.MkdirAll(filepath.Dir(desc), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(desc, []byte("<module/>"), 0o644); err != nil {
		t.Fatal(err)
	}
	other := filepath.Join(dir, "src2")

	got := Roots([]string{desc, filepath.Join(src, "com", "example", "client"), src, other, other + "/"})
	want := []string{src, other}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Roots() = %v, want %v", got, want)
	}
}

func TestWatcher_Debounce(t *testing.T) {
	dir := t.TempDir()

	var (
		mu        sync.Mutex
		calls     int
		collected []string
	)
	done := make(chan struct{})

	w, err := New(Config{
		Roots:    []string{dir},
		Debounce: 100 * time.Millisecond,
		OnChange: func(_ context.Context, changed []string) error {
			mu.Lock()
			defer mu.Unlock()
			calls++
			collected = append(collected, changed...)
			if calls == 1 {
				close(done)
			}
			return nil
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()

	for _, name := range []string{"a.txt", "b.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("callback not invoked")
	}

	// Let a second, erroneous firing show up if there is one.
	time.Sleep(300 * time.Millisecond)
	cancel()
	if err := <-errCh; err != nil {
		t.Errorf("Run: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Errorf("callback ran %d times, want 1", calls)
	}
	joined := strings.Join(collected, "|")
	for _, name := range []string{"a.txt", "b.txt"} {
		if !strings.Contains(joined, name) {
			t.Errorf("changed paths %v miss %s", collected, name)
		}
	}
}

func TestWatcher_RunTwice(t *testing.T) {
	w, err := New(Config{Roots: []string{t.TempDir()}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := w.Run(ctx); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	if err := w.Run(ctx); err == nil {
		t.Error("second Run succeeded")
	}
}

func TestNew_MissingRoot(t *testing.T) {
	w, err := New(Config{Roots: []string{filepath.Join(t.TempDir(), "nope")}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = w.Run(ctx)
}
