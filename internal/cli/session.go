// Package cli renders daily cycle lists and runs the interactive
// review session.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/hfarooq/murajaah/internal/hifz"
	"github.com/hfarooq/murajaah/internal/review"
)

// ReviewSession walks today's cycles interactively: complete, postpone
// or skip each one. State is persisted after every action and reloaded
// before the next prompt.
type ReviewSession struct {
	engine *review.Engine
	stdin  *bufio.Reader
	out    io.Writer

	bold   *color.Color
	green  *color.Color
	yellow *color.Color
}

// NewReviewSession creates a session reading commands from in and
// writing to out.
func NewReviewSession(engine *review.Engine, in io.Reader, out io.Writer) *ReviewSession {
	return &ReviewSession{
		engine: engine,
		stdin:  bufio.NewReader(in),
		out:    out,
		bold:   color.New(color.Bold),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
	}
}

// Run iterates today's incomplete cycles. Commands: y to complete, p to
// postpone, s to skip, q to quit.
func (s *ReviewSession) Run(ctx context.Context, today hifz.Date) error {
	skipped := map[string]bool{}
	for {
		cycles, err := s.engine.GenerateDailyCycles(ctx, today)
		if err != nil {
			return err
		}

		next := nextActionable(cycles, skipped)
		if next == nil {
			if len(skipped) == 0 {
				fmt.Fprintln(s.out, "All review cycles are done for today!")
			}
			return nil
		}

		_, _ = s.bold.Fprintf(s.out, "%s\n", next.Title)
		fmt.Fprintf(s.out, "  %s\n", next.Content)
		fmt.Fprint(s.out, "Done? [y]es / [p]ostpone / [s]kip / [q]uit: ")

		line, err := s.stdin.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("error reading input: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			if err := s.engine.ToggleCompletion(ctx, today, next.ID); err != nil {
				return err
			}
			_, _ = s.green.Fprintln(s.out, "Completed.")
		case "p", "postpone":
			if err := s.engine.Postpone(ctx, today, next.ID); err != nil {
				return err
			}
			_, _ = s.yellow.Fprintln(s.out, "Postponed to tomorrow.")
		case "s", "skip":
			skipped[next.ID] = true
			fmt.Fprintln(s.out, "Skipped.")
		case "q", "quit":
			return nil
		default:
			fmt.Fprintln(s.out, "Unknown command.")
		}
	}
}

func nextActionable(cycles []review.Cycle, skipped map[string]bool) *review.Cycle {
	for i := range cycles {
		c := &cycles[i]
		if !c.Completed && !c.IsPostponed && !skipped[c.ID] {
			return c
		}
	}
	return nil
}
