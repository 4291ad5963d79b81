package speech

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Player speaks text by synthesizing an mp3 and running an external audio
// player. Cancelling the context kills the player process, which is how
// the Guard interrupts an utterance mid-sentence.
type Player struct {
	synth *Synthesizer
}

// NewPlayer creates a player over a synthesizer.
func NewPlayer(synth *Synthesizer) *Player {
	return &Player{synth: synth}
}

// Speak synthesizes text and blocks until playback ends or ctx is
// cancelled.
func (p *Player) Speak(ctx context.Context, text string) error {
	path, err := p.synth.Synthesize(ctx, text)
	if err != nil {
		return err
	}

	name, args := playerCommand(path)
	if name == "" {
		return fmt.Errorf("no audio player found (tried mpg123, ffplay, afplay)")
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("audio playback: %w", err)
	}
	return nil
}

// playerCommand picks the first available command-line audio player.
func playerCommand(path string) (string, []string) {
	if runtime.GOOS == "darwin" {
		if _, err := exec.LookPath("afplay"); err == nil {
			return "afplay", []string{path}
		}
	}
	if _, err := exec.LookPath("mpg123"); err == nil {
		return "mpg123", []string{"-q", path}
	}
	if _, err := exec.LookPath("ffplay"); err == nil {
		return "ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet", path}
	}
	return "", nil
}
