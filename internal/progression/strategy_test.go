package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreStrategy_LevelBoundaries(t *testing.T) {
	tests := []struct {
		score int64
		level int
	}{
		{0, 1},
		{499, 1},
		{500, 2},
		{999, 2},
		{1000, 3},
		{5499, 11},
		{5500, 12},
		{6000, 12}, // clamped, not 13
		{100000, 12},
	}

	s := ScoreStrategy{}
	for _, tc := range tests {
		level, _ := s.Evaluate(tc.score, 0)
		assert.Equal(t, tc.level, level, "score %d", tc.score)
	}
}

func TestScoreStrategy_BadgeTiers(t *testing.T) {
	s := ScoreStrategy{}

	_, badge := s.Evaluate(0, 0) // level 1
	assert.Equal(t, "Bronze Explorer", badge)

	_, badge = s.Evaluate(1500, 0) // level 4
	assert.Equal(t, "Silver Voyager", badge)

	_, badge = s.Evaluate(3000, 0) // level 7
	assert.Equal(t, "Gold Pioneer", badge)

	_, badge = s.Evaluate(6000, 0) // level 12
	assert.Equal(t, "Platinum Legend", badge)
}

func TestScoreStrategy_IgnoresCoins(t *testing.T) {
	s := ScoreStrategy{}
	level, _ := s.Evaluate(0, 100000)
	assert.Equal(t, 1, level)
}

func TestCoinStrategy_Threshold(t *testing.T) {
	s := CoinStrategy{}

	level, badge := s.Evaluate(0, 0)
	assert.Equal(t, 1, level)
	assert.Equal(t, "Bronze Explorer", badge)

	level, _ = s.Evaluate(0, 499)
	assert.Equal(t, 1, level)

	level, _ = s.Evaluate(0, 500)
	assert.Equal(t, 2, level)

	// No further tiers on this path, regardless of balance.
	level, _ = s.Evaluate(0, 1000000)
	assert.Equal(t, 2, level)
}

func TestCoinStrategy_IgnoresScore(t *testing.T) {
	s := CoinStrategy{}
	level, _ := s.Evaluate(100000, 0)
	assert.Equal(t, 1, level)
}

func TestForName(t *testing.T) {
	assert.IsType(t, CoinStrategy{}, ForName("coins"))
	assert.IsType(t, ScoreStrategy{}, ForName("score"))
	assert.IsType(t, ScoreStrategy{}, ForName(""))
}
