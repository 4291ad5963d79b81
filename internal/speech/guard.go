// Package speech reads quiz questions aloud in French. Synthesis goes
// through the Google TTS REST API with an on-disk mp3 cache; playback runs
// an external audio player. The Guard enforces the single-utterance rule:
// starting a new read-aloud or advancing in the quiz cancels whatever is
// currently being spoken.
package speech

import (
	"context"
	"sync"
)

// Speaker synthesizes and plays one utterance, blocking until playback
// finishes or ctx is cancelled.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// Guard serializes playback: at most one utterance plays at a time, and a
// new Play cancels the previous one first.
type Guard struct {
	speaker Speaker

	mu      sync.Mutex
	cancel  context.CancelFunc
	playing bool
	gen     int
}

// NewGuard creates a playback guard over a speaker.
func NewGuard(speaker Speaker) *Guard {
	return &Guard{speaker: speaker}
}

// Play cancels any current utterance and starts speaking text in the
// background. The optional done callback runs when playback ends for any
// reason (finished, cancelled, or failed).
func (g *Guard) Play(text string, done func(err error)) {
	g.mu.Lock()
	if g.cancel != nil {
		g.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	g.playing = true
	g.gen++
	gen := g.gen
	g.mu.Unlock()

	go func() {
		err := g.speaker.Speak(ctx, text)
		cancel()

		g.mu.Lock()
		// Only the latest utterance may flip the playing flag: a slow
		// cancelled playback must not mark its replacement as stopped.
		if g.gen == gen {
			g.playing = false
			g.cancel = nil
		}
		g.mu.Unlock()

		if done != nil {
			done(err)
		}
	}()
}

// Cancel stops the current utterance. Idempotent; safe with nothing
// playing.
func (g *Guard) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	g.playing = false
}

// IsPlaying reports whether an utterance is currently being spoken.
func (g *Guard) IsPlaying() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.playing
}
