package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/hfarooq/murajaah/internal/cli"
)

func newTodayCommand() *cobra.Command {
	date := newDateValue()
	command := &cobra.Command{
		Use:   "today",
		Short: "Show today's review cycles",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			engine, cleanup, err := newEngine(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			cycles, err := engine.GenerateDailyCycles(context.Background(), date.date)
			if err != nil {
				return err
			}
			cli.RenderCycles(os.Stdout, date.date, cycles)
			return nil
		},
	}
	command.Flags().Var(date, "date", "the day to show (YYYY-MM-DD)")
	return command
}
