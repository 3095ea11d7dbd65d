package session

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Create(ctx context.Context, s *Session) (string, error) {
	args := m.Called(ctx, s)
	return args.String(0), args.Error(1)
}

func (m *MockStore) Get(ctx context.Context, token string) (*Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockStore) BindAttempt(ctx context.Context, token string, attemptID uint) error {
	args := m.Called(ctx, token, attemptID)
	return args.Error(0)
}

func (m *MockStore) ClearAttempt(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
