package progression

const (
	scorePerLevel = 500
	maxLevel      = 12

	// CompletionBonus is the flat coin grant for finishing any attempt.
	CompletionBonus = 50

	coinThreshold = 500
)

// BadgeForLevel is a step function over levels. Badges are cosmetic and always
// derived, never stored.
func BadgeForLevel(level int) string {
	switch {
	case level <= 3:
		return "Bronze Explorer"
	case level <= 6:
		return "Silver Voyager"
	case level <= 9:
		return "Gold Pioneer"
	default:
		return "Platinum Legend"
	}
}

// Strategy recomputes level and badge from aggregates. Implementations must be
// pure: same inputs, same outputs, no incremental patching.
type Strategy interface {
	Evaluate(totalScore int64, coins int64) (int, string)
}

// ScoreStrategy is the multi-tier path: one level per 500 cumulative score,
// clamped to 12.
type ScoreStrategy struct{}

func (ScoreStrategy) Evaluate(totalScore int64, _ int64) (int, string) {
	level := int(totalScore/scorePerLevel) + 1
	if level > maxLevel {
		level = maxLevel
	}
	return level, BadgeForLevel(level)
}

// CoinStrategy is the coarser path keyed off raw coin balance: crossing the
// threshold promotes level 1 to 2.
type CoinStrategy struct{}

func (CoinStrategy) Evaluate(_ int64, coins int64) (int, string) {
	level := 1
	if coins >= coinThreshold {
		level = 2
	}
	return level, BadgeForLevel(level)
}

// ForName picks the configured strategy, defaulting to the score-based one.
func ForName(name string) Strategy {
	if name == "coins" {
		return CoinStrategy{}
	}
	return ScoreStrategy{}
}
