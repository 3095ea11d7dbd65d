package attempt

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/heritage-horizon/portal/internal/catalog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(userID, gameID uint, now time.Time) (*Attempt, error) {
	args := m.Called(userID, gameID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Attempt), args.Error(1)
}

func (m *MockRepository) UpdateScore(attemptID, userID uint, score int, now time.Time) error {
	args := m.Called(attemptID, userID, score, now)
	return args.Error(0)
}

func (m *MockRepository) Complete(attemptID, userID uint, now time.Time) (*Attempt, error) {
	args := m.Called(attemptID, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Attempt), args.Error(1)
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) GetGameByName(name string) (*catalog.Game, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Game), args.Error(1)
}

func (m *MockCatalogRepository) ListGames() ([]catalog.Game, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Game), args.Error(1)
}

func (m *MockCatalogRepository) CreateGame(game *catalog.Game) error {
	args := m.Called(game)
	return args.Error(0)
}
