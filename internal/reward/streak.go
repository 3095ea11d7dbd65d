package reward

import (
	"fmt"
	"time"
)

const (
	streakCycle = 7
	streakBonus = 50
)

// StreakOutcome is what a login does to the streak. Advanced false means a
// same-day re-login: nothing may be persisted.
type StreakOutcome struct {
	Streak   int
	Coins    int
	Message  string
	Advanced bool
}

// DateOnly truncates a timestamp to its UTC calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EvaluateStreak decides streak continuation and payout from the last
// engagement date. A one-day gap extends the streak, anything longer resets it
// to 1, and completing the seventh day pays the bonus and restarts the cycle.
func EvaluateStreak(lastStreakDate *time.Time, streak int, today time.Time) StreakOutcome {
	day := DateOnly(today)

	newStreak := 1
	if lastStreakDate != nil {
		gap := int(day.Sub(DateOnly(*lastStreakDate)).Hours() / 24)
		if gap == 0 {
			return StreakOutcome{Streak: streak}
		}
		if gap == 1 {
			newStreak = streak + 1
		}
	}

	if newStreak == streakCycle {
		return StreakOutcome{
			Streak:   0,
			Coins:    streakBonus,
			Message:  fmt.Sprintf("%d-Day Streak Completed! +%d Coins!", streakCycle, streakBonus),
			Advanced: true,
		}
	}

	return StreakOutcome{
		Streak:   newStreak,
		Message:  fmt.Sprintf("day %d/%d", newStreak, streakCycle),
		Advanced: true,
	}
}
