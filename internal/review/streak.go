package review

import "github.com/hfarooq/murajaah/internal/hifz"

// maxStreakDays bounds the backward walk of the streak calculation.
const maxStreakDays = 365

// ComputeStreak counts consecutive fully-completed days ending today.
// A day without a record, with an empty record, or with any incomplete
// entry stops the walk. An empty-but-present map does not count: a day
// with zero scheduled cycles is not a completed day.
func ComputeStreak(log hifz.CompletionLog, today hifz.Date) int {
	streak := 0
	for i := 0; i < maxStreakDays; i++ {
		dayMap := log.Day(today.AddDays(-i))
		if len(dayMap) == 0 {
			return streak
		}
		for _, completed := range dayMap {
			if !completed {
				return streak
			}
		}
		streak++
	}
	return streak
}
