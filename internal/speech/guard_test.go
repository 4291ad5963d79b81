package speech

import (
	"context"
	"sync"
	"testing"
	"time"
)

// fakeSpeaker blocks until its context is cancelled or release is closed.
type fakeSpeaker struct {
	mu      sync.Mutex
	started []string
	release chan struct{}
}

func newFakeSpeaker() *fakeSpeaker {
	return &fakeSpeaker{release: make(chan struct{})}
}

func (f *fakeSpeaker) Speak(ctx context.Context, text string) error {
	f.mu.Lock()
	f.started = append(f.started, text)
	f.mu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-f.release:
		return nil
	}
}

func (f *fakeSpeaker) startedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.started)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestGuardPlaysAndFinishes(t *testing.T) {
	speaker := newFakeSpeaker()
	guard := NewGuard(speaker)

	done := make(chan error, 1)
	guard.Play("Combien font 2+2 ?", func(err error) { done <- err })

	waitFor(t, guard.IsPlaying)
	close(speaker.release)

	if err := <-done; err != nil {
		t.Fatalf("playback error: %v", err)
	}
	waitFor(t, func() bool { return !guard.IsPlaying() })
}

func TestPlayCancelsPreviousUtterance(t *testing.T) {
	speaker := newFakeSpeaker()
	guard := NewGuard(speaker)

	firstDone := make(chan error, 1)
	guard.Play("Première question", func(err error) { firstDone <- err })
	waitFor(t, func() bool { return speaker.startedCount() == 1 })

	guard.Play("Deuxième question", nil)

	// The first utterance ends with a cancellation, not completion.
	if err := <-firstDone; err != context.Canceled {
		t.Errorf("first utterance error = %v, want context.Canceled", err)
	}
	waitFor(t, func() bool { return speaker.startedCount() == 2 })
	if !guard.IsPlaying() {
		t.Error("second utterance should be playing")
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	speaker := newFakeSpeaker()
	guard := NewGuard(speaker)

	// Cancel with nothing playing is a no-op.
	guard.Cancel()
	if guard.IsPlaying() {
		t.Error("nothing should be playing")
	}

	done := make(chan error, 1)
	guard.Play("Texte à lire", func(err error) { done <- err })
	waitFor(t, guard.IsPlaying)

	guard.Cancel()
	guard.Cancel()
	if guard.IsPlaying() {
		t.Error("cancelled guard should not report playing")
	}
	if err := <-done; err != context.Canceled {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
