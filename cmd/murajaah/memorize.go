package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hfarooq/murajaah/internal/hifz"
	"github.com/hfarooq/murajaah/internal/quran"
	"github.com/hfarooq/murajaah/internal/review"
)

func newMemorizeCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "memorize",
		Short: "Manage which Juz and Surahs are memorized",
	}
	command.AddCommand(
		newMemorizeListCommand(),
		newMemorizeSetJuzCommand(),
		newMemorizeSetSurahsCommand(),
		newMemorizeRemoveCommand(),
	)
	return command
}

func newMemorizeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the memorized units in rotation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openFileStore()
			if err != nil {
				return err
			}
			units, err := store.LoadMemorization(context.Background())
			if err != nil {
				return err
			}
			if len(units) == 0 {
				fmt.Println("No memorized content recorded yet.")
				return nil
			}
			for _, descriptor := range review.Descriptors(units) {
				fmt.Println(descriptor)
			}
			return nil
		},
	}
}

func newMemorizeSetJuzCommand() *cobra.Command {
	var (
		pages string
		date  string
	)
	command := &cobra.Command{
		Use:   "set-juz <juz-number>",
		Short: "Mark a whole Juz as memorized",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			juzNumber, err := parseJuzNumber(args[0])
			if err != nil {
				return err
			}

			unit := hifz.MemorizationUnit{
				JuzNumber:        juzNumber,
				IsFullyMemorized: true,
			}
			if info, ok := quran.Juz(juzNumber); ok {
				unit.StartPage, unit.EndPage = info.StartPage, info.EndPage
			}
			if pages != "" {
				start, end, err := parsePageRange(pages)
				if err != nil {
					return err
				}
				unit.StartPage, unit.EndPage = start, end
			}
			if date != "" {
				memorized, err := hifz.ParseDate(date)
				if err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
				unit.DateMemorized = &memorized
			}

			return upsertUnit(unit)
		},
	}
	command.Flags().StringVar(&pages, "pages", "", "page bounds as START-END, defaults to the standard mushaf bounds")
	command.Flags().StringVar(&date, "date", "", "date memorized (YYYY-MM-DD)")
	return command
}

func newMemorizeSetSurahsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-surahs <juz-number> <surah-id>...",
		Short: "Mark a subset of a Juz's Surahs as memorized",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			juzNumber, err := parseJuzNumber(args[0])
			if err != nil {
				return err
			}

			inJuz := map[int]bool{}
			for _, id := range quran.SurahsInJuz(juzNumber) {
				inJuz[id] = true
			}

			var surahIDs []int
			for _, arg := range args[1:] {
				id, err := strconv.Atoi(arg)
				if err != nil || quran.SurahName(id) == "" {
					return fmt.Errorf("invalid surah id %q", arg)
				}
				if !inJuz[id] {
					return fmt.Errorf("surah %d (%s) is not part of Juz %d", id, quran.SurahName(id), juzNumber)
				}
				surahIDs = append(surahIDs, id)
			}

			return upsertUnit(hifz.MemorizationUnit{
				JuzNumber:         juzNumber,
				MemorizedSurahIDs: surahIDs,
			})
		},
	}
}

func newMemorizeRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <juz-number>",
		Short: "Remove a Juz from the memorized units",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			juzNumber, err := parseJuzNumber(args[0])
			if err != nil {
				return err
			}

			store, err := openFileStore()
			if err != nil {
				return err
			}
			ctx := context.Background()
			units, err := store.LoadMemorization(ctx)
			if err != nil {
				return err
			}

			remaining := make([]hifz.MemorizationUnit, 0, len(units))
			for _, unit := range units {
				if unit.JuzNumber != juzNumber {
					remaining = append(remaining, unit)
				}
			}
			if err := store.SaveMemorization(ctx, remaining); err != nil {
				return err
			}
			fmt.Printf("Removed Juz %d.\n", juzNumber)
			return nil
		},
	}
}

func upsertUnit(unit hifz.MemorizationUnit) error {
	store, err := openFileStore()
	if err != nil {
		return err
	}
	ctx := context.Background()
	units, err := store.LoadMemorization(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range units {
		if units[i].JuzNumber == unit.JuzNumber {
			units[i] = unit
			replaced = true
			break
		}
	}
	if !replaced {
		units = append(units, unit)
	}

	if err := store.SaveMemorization(ctx, units); err != nil {
		return err
	}
	fmt.Printf("Saved Juz %d.\n", unit.JuzNumber)
	return nil
}

func parseJuzNumber(arg string) (int, error) {
	juzNumber, err := strconv.Atoi(arg)
	if err != nil || juzNumber < 1 || juzNumber > quran.JuzCount {
		return 0, fmt.Errorf("invalid juz number %q, must be between 1 and %d", arg, quran.JuzCount)
	}
	return juzNumber, nil
}

func parsePageRange(s string) (int, int, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid --pages %q, expected START-END", s)
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --pages %q, expected START-END", s)
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil || end < start || start < 1 {
		return 0, 0, fmt.Errorf("invalid --pages %q, expected START-END", s)
	}
	return start, end, nil
}
