package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hfarooq/murajaah/internal/review"
)

func newCycleCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "cycle",
		Short: "Complete, postpone or un-postpone a cycle by its id",
	}
	command.AddCommand(
		newCompleteCommand(),
		newPostponeCommand(),
		newUnpostponeCommand(),
	)
	return command
}

func newCompleteCommand() *cobra.Command {
	date := newDateValue()
	command := &cobra.Command{
		Use:   "complete <cycle-id>",
		Short: "Toggle a cycle's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(func(ctx context.Context, engine *review.Engine) error {
				return engine.ToggleCompletion(ctx, date.date, args[0])
			})
		},
	}
	command.Flags().Var(date, "date", "the day the cycle is shown on (YYYY-MM-DD)")
	return command
}

func newPostponeCommand() *cobra.Command {
	date := newDateValue()
	command := &cobra.Command{
		Use:   "postpone <cycle-id>",
		Short: "Defer a cycle to the next day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(func(ctx context.Context, engine *review.Engine) error {
				return engine.Postpone(ctx, date.date, args[0])
			})
		},
	}
	command.Flags().Var(date, "date", "the day the cycle is shown on (YYYY-MM-DD)")
	return command
}

func newUnpostponeCommand() *cobra.Command {
	date := newDateValue()
	command := &cobra.Command{
		Use:   "unpostpone <cycle-id>",
		Short: "Reverse a cycle's postponement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(func(ctx context.Context, engine *review.Engine) error {
				return engine.Unpostpone(ctx, date.date, args[0])
			})
		},
	}
	command.Flags().Var(date, "date", "the day the cycle is shown on (YYYY-MM-DD)")
	return command
}

// withEngine runs an engine operation with configuration loading and
// cleanup handled.
func withEngine(run func(ctx context.Context, engine *review.Engine) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	engine, cleanup, err := newEngine(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := run(context.Background(), engine); err != nil {
		return err
	}
	fmt.Println("Done.")
	return nil
}
