package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jmercier/collegien/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		sessions, err := s.EventRepo().ListStudySessions(context.Background(), store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		type agg struct {
			finished  int
			abandoned int
			score     int
			maxScore  int
			seconds   int
		}
		bySubject := make(map[string]*agg)
		var total agg

		for _, sess := range sessions {
			if sess.Action == "start" {
				continue
			}
			a := bySubject[sess.Subject]
			if a == nil {
				a = &agg{}
				bySubject[sess.Subject] = a
			}
			if sess.Action == "abandon" {
				a.abandoned++
				total.abandoned++
			} else {
				a.finished++
				total.finished++
			}
			a.score += sess.Score
			a.maxScore += sess.MaxScore
			a.seconds += sess.DurationSecs
			total.score += sess.Score
			total.maxScore += sess.MaxScore
			total.seconds += sess.DurationSecs
		}

		if total.finished+total.abandoned == 0 {
			fmt.Println("No study sessions recorded yet.")
			return nil
		}

		subjects := make([]string, 0, len(bySubject))
		for name := range bySubject {
			subjects = append(subjects, name)
		}
		sort.Strings(subjects)

		fmt.Println("Study Sessions by Subject")
		fmt.Println(strings.Repeat("─", 76))
		fmt.Printf("%-34s  %8s  %10s  %8s  %8s\n",
			"Subject", "Finished", "Abandoned", "Avg %", "Minutes")
		fmt.Println(strings.Repeat("─", 76))

		for _, name := range subjects {
			a := bySubject[name]
			fmt.Printf("%-34s  %8d  %10d  %7s%%  %8d\n",
				truncate(name, 34), a.finished, a.abandoned,
				avgPercent(a.score, a.maxScore), a.seconds/60)
		}

		fmt.Println(strings.Repeat("─", 76))
		fmt.Printf("%-34s  %8d  %10d  %7s%%  %8d\n",
			"TOTAL", total.finished, total.abandoned,
			avgPercent(total.score, total.maxScore), total.seconds/60)

		return nil
	},
}

func avgPercent(score, maxScore int) string {
	if maxScore == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", score*100/maxScore)
}
