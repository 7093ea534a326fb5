package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hfarooq/murajaah/internal/cli"
	"github.com/hfarooq/murajaah/internal/hifz"
)

func newScheduleCommand() *cobra.Command {
	var days int
	from := newDateValue()
	command := &cobra.Command{
		Use:   "schedule",
		Short: "Preview the review schedule for the coming days",
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 {
				return fmt.Errorf("invalid --days %d, must be at least 1", days)
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			engine, cleanup, err := newEngine(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			schedule, err := engine.Schedule(context.Background(), from.date, days)
			if err != nil {
				return err
			}
			cli.RenderSchedule(os.Stdout, schedule)
			return nil
		},
	}
	command.Flags().IntVar(&days, "days", 7, "number of days to preview")
	command.Flags().Var(from, "from", "first day of the preview (YYYY-MM-DD)")
	return command
}

func newStreakCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Show the consecutive-full-completion streak",
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

			streak, err := engine.Streak(context.Background(), hifz.Today())
			if err != nil {
				return err
			}
			fmt.Printf("Current streak: %d day(s)\n", streak)
			return nil
		},
	}
}
