package attempt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/heritage-horizon/portal/internal/apperrors"
	"github.com/heritage-horizon/portal/internal/catalog"
	"github.com/heritage-horizon/portal/internal/session"
)

func newTestService() (*Service, *MockRepository, *MockCatalogRepository, *session.MockStore) {
	mockRepo := &MockRepository{}
	mockGames := &MockCatalogRepository{}
	mockSessions := &session.MockStore{}
	svc := NewService(mockRepo, mockGames, mockSessions)
	return svc, mockRepo, mockGames, mockSessions
}

func TestService_Start_Success(t *testing.T) {
	svc, mockRepo, mockGames, mockSessions := newTestService()
	sess := &session.Session{UserID: 1, Username: "alice", Role: "user"}

	mockGames.On("GetGameByName", "Heritage Quiz").
		Return(&catalog.Game{ID: 3, Name: "Heritage Quiz", Section: "Heritage"}, nil)
	created := &Attempt{ID: 11, UserID: 1, GameID: 3, Status: StatusIncomplete}
	mockRepo.On("Create", uint(1), uint(3), mock.AnythingOfType("time.Time")).Return(created, nil)
	mockSessions.On("BindAttempt", mock.Anything, "tok", uint(11)).Return(nil)

	a, err := svc.Start(context.Background(), "tok", sess, "Heritage Quiz")
	assert.NoError(t, err)
	assert.Equal(t, StatusIncomplete, a.Status)
	assert.Equal(t, uint(11), sess.ActiveAttemptID)
	mockRepo.AssertExpectations(t)
	mockGames.AssertExpectations(t)
	mockSessions.AssertExpectations(t)
}

func TestService_Start_UnknownGame(t *testing.T) {
	svc, mockRepo, mockGames, _ := newTestService()
	sess := &session.Session{UserID: 1}

	mockGames.On("GetGameByName", "No Such Game").Return(nil, nil)

	_, err := svc.Start(context.Background(), "tok", sess, "No Such Game")
	assert.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	assert.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Start_ReplacesAbandonedAttempt(t *testing.T) {
	svc, mockRepo, mockGames, mockSessions := newTestService()
	sess := &session.Session{UserID: 1, ActiveAttemptID: 8}

	mockGames.On("GetGameByName", "Solar Crush").
		Return(&catalog.Game{ID: 7, Name: "Solar Crush", Section: "Solar"}, nil)
	created := &Attempt{ID: 12, UserID: 1, GameID: 7, Status: StatusIncomplete}
	mockRepo.On("Create", uint(1), uint(7), mock.AnythingOfType("time.Time")).Return(created, nil)
	mockSessions.On("BindAttempt", mock.Anything, "tok", uint(12)).Return(nil)

	_, err := svc.Start(context.Background(), "tok", sess, "Solar Crush")
	assert.NoError(t, err)
	assert.Equal(t, uint(12), sess.ActiveAttemptID)
}

func TestService_UpdateScore_NoActiveAttempt(t *testing.T) {
	svc, mockRepo, _, _ := newTestService()
	sess := &session.Session{UserID: 1}

	err := svc.UpdateScore(sess, 0, 40)
	assert.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	assert.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "no active game", appErr.Message)
	mockRepo.AssertNotCalled(t, "UpdateScore", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateScore_UsesSessionPointer(t *testing.T) {
	svc, mockRepo, _, _ := newTestService()
	sess := &session.Session{UserID: 1, ActiveAttemptID: 5}

	mockRepo.On("UpdateScore", uint(5), uint(1), 40, mock.AnythingOfType("time.Time")).Return(nil)

	err := svc.UpdateScore(sess, 0, 40)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_UpdateScore_ExplicitIDTakesPrecedence(t *testing.T) {
	svc, mockRepo, _, _ := newTestService()
	sess := &session.Session{UserID: 1, ActiveAttemptID: 5}

	mockRepo.On("UpdateScore", uint(9), uint(1), 70, mock.AnythingOfType("time.Time")).Return(nil)

	err := svc.UpdateScore(sess, 9, 70)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_Finish_ClearsSessionPointer(t *testing.T) {
	svc, mockRepo, _, mockSessions := newTestService()
	sess := &session.Session{UserID: 1, ActiveAttemptID: 5}

	completed := &Attempt{ID: 5, UserID: 1, Status: StatusCompleted, Score: 80}
	mockRepo.On("Complete", uint(5), uint(1), mock.AnythingOfType("time.Time")).Return(completed, nil)
	mockSessions.On("ClearAttempt", mock.Anything, "tok").Return(nil)

	a, msg, err := svc.Finish(context.Background(), "tok", sess, 0)
	assert.NoError(t, err)
	assert.Equal(t, StatusCompleted, a.Status)
	assert.Equal(t, "Game completed! +50 coins!", msg)
	assert.Equal(t, uint(0), sess.ActiveAttemptID)
	mockSessions.AssertExpectations(t)
}

func TestService_Finish_SecondCallFails(t *testing.T) {
	svc, mockRepo, _, _ := newTestService()
	sess := &session.Session{UserID: 1}

	mockRepo.On("Complete", uint(5), uint(1), mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.AlreadyCompleted())

	_, _, err := svc.Finish(context.Background(), "tok", sess, 5)
	assert.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	assert.True(t, ok)
	assert.Equal(t, 409, appErr.Code)
	assert.Equal(t, "attempt already completed", appErr.Message)
}

func TestService_Finish_NoActiveAttempt(t *testing.T) {
	svc, mockRepo, _, _ := newTestService()
	sess := &session.Session{UserID: 1}

	_, _, err := svc.Finish(context.Background(), "tok", sess, 0)
	assert.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	assert.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
	mockRepo.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
}
