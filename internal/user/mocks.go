package user

import (
	"github.com/stretchr/testify/mock"

	"github.com/heritage-horizon/portal/internal/reward"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(username string, email *string, password string) (*User, error) {
	args := m.Called(username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) ValidateUser(username, password string) (*User, error) {
	args := m.Called(username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) GetUser(id uint) (*User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) FetchAttemptTotals(userID uint) (AttemptTotals, error) {
	args := m.Called(userID)
	return args.Get(0).(AttemptTotals), args.Error(1)
}

type MockStreakService struct {
	mock.Mock
}

func (m *MockStreakService) LoginStreak(userID uint) (reward.StreakOutcome, error) {
	args := m.Called(userID)
	return args.Get(0).(reward.StreakOutcome), args.Error(1)
}
