package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jmercier/collegien/internal/app"
	"github.com/jmercier/collegien/internal/content"
	"github.com/jmercier/collegien/internal/llm"
	"github.com/jmercier/collegien/internal/quiz"
	"github.com/jmercier/collegien/internal/revision"
	"github.com/jmercier/collegien/internal/speech"
	"github.com/jmercier/collegien/internal/store"
	"github.com/spf13/cobra"
)

var reviseCmd = &cobra.Command{
	Use:   "revise",
	Short: "Start a study session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		EventRepo: eventRepo,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
	} else {
		svc := content.NewService(provider, content.DefaultConfig())
		opts.Content = svc
		opts.Grading = quiz.NewCoordinator(svc)
	}

	opts.Speech = buildSpeech()

	var variants *content.VariantCache
	if opts.Content != nil {
		svc := opts.Content
		variants = content.NewVariantCache(func(ctx context.Context, copy string, kind content.VariantKind) (string, error) {
			return svc.Reformulate(ctx, copy, kind)
		})
	}
	opts.State = revision.NewState(variants)

	return app.Run(opts)
}

// buildSpeech wires the read-aloud stack when a TTS key is configured.
func buildSpeech() *speech.Guard {
	cacheDir, err := speech.DefaultCacheDir()
	if err != nil {
		return nil
	}
	synth, err := speech.NewSynthesizer(cacheDir)
	if err != nil || !synth.Available() {
		return nil
	}
	return speech.NewGuard(speech.NewPlayer(synth))
}
