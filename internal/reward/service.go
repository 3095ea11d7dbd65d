package reward

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/heritage-horizon/portal/internal/apperrors"
	"github.com/heritage-horizon/portal/pkg/metrics"
)

// SpinRewards and MysteryRewards are the fixed outcome sets. The mystery set
// includes zero, which models a miss.
var SpinRewards = []int{10, 20, 30, 50, 100}
var MysteryRewards = []int{0, 10, 20, 50, 100}

// drawReward is a var so tests can pin the outcome.
var drawReward = func(set []int) int {
	return set[rand.Intn(len(set))]
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// LoginStreak advances the user's login streak for today and returns the
// outcome. Same-day re-logins come back with an empty message and no payout.
func (s *Service) LoginStreak(userID uint) (StreakOutcome, error) {
	out, err := s.repo.AdvanceStreak(userID, time.Now())
	if err != nil {
		return StreakOutcome{}, apperrors.NewAppError(500, "error updating login streak", err)
	}
	return out, nil
}

// Spin grants at most one reward per calendar day. Replays after the first
// success return reward 0 without touching the user.
func (s *Service) Spin(userID uint) (int, string, error) {
	reward := drawReward(SpinRewards)
	granted, err := s.repo.ClaimSpin(userID, reward, time.Now())
	if err != nil {
		return 0, "", apperrors.NewAppError(500, "error claiming daily spin", err)
	}
	if !granted {
		return 0, "Already spun today!", nil
	}
	metrics.SpinsGranted.Inc()
	return reward, fmt.Sprintf("You won %d coins!", reward), nil
}

// Mystery draws from the mystery set. A zero draw is a miss and mutates
// nothing.
func (s *Service) Mystery(userID uint) (int, error) {
	reward := drawReward(MysteryRewards)
	metrics.MysteryDraws.Inc()
	if reward == 0 {
		return 0, nil
	}
	if err := s.repo.GrantCoins(userID, reward); err != nil {
		return 0, apperrors.NewAppError(500, "error granting mystery reward", err)
	}
	return reward, nil
}
