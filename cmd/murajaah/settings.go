package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hfarooq/murajaah/internal/hifz"
)

func newSettingsCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the review cadence settings",
	}
	command.AddCommand(newSettingsShowCommand(), newSettingsSetCommand())
	return command
}

func newSettingsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current cadence settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openFileStore()
			if err != nil {
				return err
			}
			settings, err := store.LoadSettings(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("RMV pages:            %d\n", settings.RMVPages)
			fmt.Printf("OMV units per day:    %d\n", settings.OMVUnitCount)
			fmt.Printf("Listening units:      %d\n", settings.ListeningUnitCount)
			fmt.Printf("Reading units:        %d\n", settings.ReadingUnitCount)
			fmt.Printf("Current Juz:          %d\n", settings.CurrentJuz)
			fmt.Printf("Rotation start date:  %s\n", settings.RotationStartDate.Key())
			return nil
		},
	}
}

func newSettingsSetCommand() *cobra.Command {
	var (
		rmvPages       int
		omvUnits       int
		listeningUnits int
		readingUnits   int
		currentJuz     int
		rotationStart  string
	)
	command := &cobra.Command{
		Use:   "set",
		Short: "Change cadence settings; unset flags keep their current value",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openFileStore()
			if err != nil {
				return err
			}
			ctx := context.Background()
			settings, err := store.LoadSettings(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("rmv-pages") {
				settings.RMVPages = rmvPages
			}
			if cmd.Flags().Changed("omv-units") {
				settings.OMVUnitCount = omvUnits
			}
			if cmd.Flags().Changed("listening-units") {
				settings.ListeningUnitCount = listeningUnits
			}
			if cmd.Flags().Changed("reading-units") {
				settings.ReadingUnitCount = readingUnits
			}
			if cmd.Flags().Changed("current-juz") {
				if currentJuz < 1 || currentJuz > 30 {
					return fmt.Errorf("invalid --current-juz %d, must be between 1 and 30", currentJuz)
				}
				settings.CurrentJuz = currentJuz
			}
			if cmd.Flags().Changed("rotation-start") {
				date, err := hifz.ParseDate(rotationStart)
				if err != nil {
					return fmt.Errorf("invalid --rotation-start: %w", err)
				}
				settings.RotationStartDate = date
			}

			if err := store.SaveSettings(ctx, settings.Normalize()); err != nil {
				return err
			}
			fmt.Println("Settings saved.")
			return nil
		},
	}
	command.Flags().IntVar(&rmvPages, "rmv-pages", 7, "pages of the current Juz reviewed daily")
	command.Flags().IntVar(&omvUnits, "omv-units", 1, "memorization units per old-memorization cycle")
	command.Flags().IntVar(&listeningUnits, "listening-units", 1, "memorization units per listening cycle")
	command.Flags().IntVar(&readingUnits, "reading-units", 1, "memorization units per reading cycle")
	command.Flags().IntVar(&currentJuz, "current-juz", 1, "the Juz currently being memorized")
	command.Flags().StringVar(&rotationStart, "rotation-start", "", "rotation anchor date (YYYY-MM-DD)")
	return command
}

func openFileStore() (*hifz.FileStore, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	store, err := hifz.NewFileStore(cfg.Data.Directory)
	if err != nil {
		return nil, fmt.Errorf("hifz.NewFileStore(%s) > %w", cfg.Data.Directory, err)
	}
	return store, nil
}
