package reward

import (
	"time"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) AdvanceStreak(userID uint, now time.Time) (StreakOutcome, error) {
	args := m.Called(userID, now)
	return args.Get(0).(StreakOutcome), args.Error(1)
}

func (m *MockRepository) ClaimSpin(userID uint, reward int, now time.Time) (bool, error) {
	args := m.Called(userID, reward, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) GrantCoins(userID uint, amount int) error {
	args := m.Called(userID, amount)
	return args.Error(0)
}
