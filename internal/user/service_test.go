package user

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/heritage-horizon/portal/internal/progression"
	"github.com/heritage-horizon/portal/internal/reward"
	"github.com/heritage-horizon/portal/internal/session"
)

// mockGenerateJWT is a helper to override GenerateJWT in tests
var mockGenerateJWT func(id uint, role, sessionID string) (string, error)

func TestMain(m *testing.M) {
	orig := GenerateJWT
	GenerateJWT = func(id uint, role, sessionID string) (string, error) {
		if mockGenerateJWT != nil {
			return mockGenerateJWT(id, role, sessionID)
		}
		return orig(id, role, sessionID)
	}
	code := m.Run()
	GenerateJWT = orig
	os.Exit(code)
}

func newTestUserService() (*UserService, *MockUserRepository, *MockStreakService, *session.MockStore) {
	mockRepo := &MockUserRepository{}
	mockStreaks := &MockStreakService{}
	mockSessions := &session.MockStore{}
	svc := NewUserService(mockRepo, mockStreaks, mockSessions, progression.ScoreStrategy{})
	return svc, mockRepo, mockStreaks, mockSessions
}

func TestUserService_Login(t *testing.T) {
	svc, mockRepo, mockStreaks, mockSessions := newTestUserService()

	usr := &User{ID: 2, Username: "foo", Role: "user"}
	mockRepo.On("ValidateUser", "foo", "bar").Return(usr, nil)
	mockStreaks.On("LoginStreak", uint(2)).
		Return(reward.StreakOutcome{Streak: 3, Message: "day 3/7", Advanced: true}, nil)
	mockSessions.On("Create", mock.Anything, mock.AnythingOfType("*session.Session")).Return("sid-1", nil)
	mockGenerateJWT = func(id uint, role, sessionID string) (string, error) { return "tok456", nil }
	defer func() { mockGenerateJWT = nil }()

	result, err := svc.Login(context.Background(), LoginRequest{Username: "foo", Password: "bar"})
	assert.NoError(t, err)
	assert.Equal(t, "tok456", result.Token)
	assert.Equal(t, "user", result.Role)
	assert.Equal(t, "day 3/7", result.StreakMessage)
	mockRepo.AssertExpectations(t)
	mockStreaks.AssertExpectations(t)
	mockSessions.AssertExpectations(t)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	svc, mockRepo, mockStreaks, _ := newTestUserService()

	mockRepo.On("ValidateUser", "foo", "wrong").Return(nil, errors.New("record not found"))

	_, err := svc.Login(context.Background(), LoginRequest{Username: "foo", Password: "wrong"})
	assert.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
	mockStreaks.AssertNotCalled(t, "LoginStreak", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Login_SameDayRelogin(t *testing.T) {
	svc, mockRepo, mockStreaks, mockSessions := newTestUserService()

	usr := &User{ID: 4, Username: "bob", Role: "user"}
	mockRepo.On("ValidateUser", "bob", "pw").Return(usr, nil)
	mockStreaks.On("LoginStreak", uint(4)).
		Return(reward.StreakOutcome{Streak: 5, Advanced: false}, nil)
	mockSessions.On("Create", mock.Anything, mock.AnythingOfType("*session.Session")).Return("sid-2", nil)
	mockGenerateJWT = func(id uint, role, sessionID string) (string, error) { return "tok", nil }
	defer func() { mockGenerateJWT = nil }()

	result, err := svc.Login(context.Background(), LoginRequest{Username: "bob", Password: "pw"})
	assert.NoError(t, err)
	assert.Empty(t, result.StreakMessage)
}

func TestUserService_Signup(t *testing.T) {
	svc, mockRepo, _, mockSessions := newTestUserService()

	created := &User{ID: 1, Username: "test", Role: "user"}
	mockRepo.On("CreateUser", "test", (*string)(nil), "pass").Return(created, nil)
	mockSessions.On("Create", mock.Anything, mock.AnythingOfType("*session.Session")).Return("sid-3", nil)
	mockGenerateJWT = func(id uint, role, sessionID string) (string, error) { return "token123", nil }
	defer func() { mockGenerateJWT = nil }()

	token, err := svc.Signup(context.Background(), SignupRequest{Username: "test", Password: "pass"})
	assert.NoError(t, err)
	assert.Equal(t, "token123", token)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Signup_Duplicate(t *testing.T) {
	svc, mockRepo, _, _ := newTestUserService()

	mockRepo.On("CreateUser", "taken", (*string)(nil), "pass").
		Return(nil, errors.New("user already exists"))

	_, err := svc.Signup(context.Background(), SignupRequest{Username: "taken", Password: "pass"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "user already exists")
}

func TestUserService_Logout(t *testing.T) {
	svc, _, _, mockSessions := newTestUserService()

	mockSessions.On("Delete", mock.Anything, "sid-9").Return(nil)

	err := svc.Logout(context.Background(), "sid-9")
	assert.NoError(t, err)
	mockSessions.AssertExpectations(t)
}

func TestUserService_GetDashboard(t *testing.T) {
	svc, mockRepo, _, _ := newTestUserService()

	usr := &User{ID: 3, Username: "alice", Coins: 120, Level: 2, LoginStreak: 4}
	mockRepo.On("GetUser", uint(3)).Return(usr, nil)
	mockRepo.On("FetchAttemptTotals", uint(3)).
		Return(AttemptTotals{GamesPlayed: 9, TotalScore: 760}, nil)

	resp, err := svc.GetDashboard(3)
	assert.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, int64(120), resp.Coins)
	assert.Equal(t, 2, resp.Level) // 760 score on the score strategy
	assert.Equal(t, "Bronze Explorer", resp.Badge)
	assert.Equal(t, 4, resp.LoginStreak)
	assert.Equal(t, int64(9), resp.TotalGamesPlayed)
	assert.Equal(t, int64(760), resp.TotalScore)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetDashboard_UserNotFound(t *testing.T) {
	svc, mockRepo, _, _ := newTestUserService()

	mockRepo.On("GetUser", uint(99)).Return(nil, nil)

	_, err := svc.GetDashboard(99)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "user not found")
}
