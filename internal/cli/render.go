package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/hfarooq/murajaah/internal/hifz"
	"github.com/hfarooq/murajaah/internal/review"
)

// RenderCycles writes a day's cycle list: a status glyph, the title and
// the content per line. Overdue cycles are red, completed green,
// postponed yellow.
func RenderCycles(w io.Writer, date hifz.Date, cycles []review.Cycle) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)

	_, _ = bold.Fprintf(w, "Review cycles for %s\n", date.Key())
	if len(cycles) == 0 {
		fmt.Fprintln(w, "  nothing scheduled - add memorized content first")
		return
	}

	for _, cycle := range cycles {
		line := fmt.Sprintf("  [%s] %s: %s", statusGlyph(cycle), cycle.Title, cycle.Content)
		switch {
		case cycle.Completed:
			_, _ = green.Fprintln(w, line)
		case cycle.IsOverdue:
			_, _ = red.Fprintf(w, "%s (due %s)\n", line, cycle.OriginDate.Key())
		case cycle.IsPostponed:
			_, _ = yellow.Fprintln(w, line)
		default:
			fmt.Fprintln(w, line)
		}
	}
}

// RenderSchedule writes a forward preview table, one day per block.
func RenderSchedule(w io.Writer, schedule []review.DaySchedule) {
	for _, day := range schedule {
		RenderCycles(w, day.Date, day.Cycles)
	}
}

func statusGlyph(cycle review.Cycle) string {
	switch {
	case cycle.Completed:
		return "x"
	case cycle.IsPostponed:
		return ">"
	case cycle.IsOverdue:
		return "!"
	}
	return " "
}
