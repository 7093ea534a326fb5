package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hfarooq/murajaah/internal/cli"
	"github.com/hfarooq/murajaah/internal/hifz"
)

func newReviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Run an interactive review session over today's cycles",
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

			fmt.Println("Interactive review session started!")
			fmt.Println()
			session := cli.NewReviewSession(engine, os.Stdin, os.Stdout)
			return session.Run(context.Background(), hifz.Today())
		},
	}
}
