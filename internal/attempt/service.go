package attempt

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/heritage-horizon/portal/internal/apperrors"
	"github.com/heritage-horizon/portal/internal/catalog"
	"github.com/heritage-horizon/portal/internal/progression"
	"github.com/heritage-horizon/portal/internal/session"
	"github.com/heritage-horizon/portal/pkg/logger"
	"github.com/heritage-horizon/portal/pkg/metrics"
)

// Service gates the attempt state machine for a session: start opens a row and
// binds it to the session, update rewrites the score, finish closes it.
type Service struct {
	repo     Repository
	games    catalog.Repository
	sessions session.Store
}

func NewService(repo Repository, games catalog.Repository, sessions session.Store) *Service {
	return &Service{repo: repo, games: games, sessions: sessions}
}

// Start opens a new incomplete attempt for the named game. A prior attempt
// still bound to the session is treated as abandoned: the pointer is rebound
// and the old row is left for the sweeper.
func (s *Service) Start(ctx context.Context, token string, sess *session.Session, gameName string) (*Attempt, error) {
	game, err := s.games.GetGameByName(gameName)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, apperrors.NotFound("game not found")
	}

	a, err := s.repo.Create(sess.UserID, game.ID, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.sessions.BindAttempt(ctx, token, a.ID); err != nil {
		return nil, apperrors.NewAppError(500, "error binding attempt to session", err)
	}
	sess.ActiveAttemptID = a.ID

	metrics.AttemptsStarted.Inc()
	logger.L().Info("attempt started",
		zap.Uint("user_id", sess.UserID),
		zap.Uint("attempt_id", a.ID),
		zap.String("game", game.Name))
	return a, nil
}

// UpdateScore overwrites the active attempt's score; last write wins.
func (s *Service) UpdateScore(sess *session.Session, explicitID uint, score int) error {
	id, err := s.resolveAttempt(sess, explicitID)
	if err != nil {
		return err
	}
	return s.repo.UpdateScore(id, sess.UserID, score, time.Now())
}

// Finish completes the active attempt and clears the session pointer. Repeat
// calls on the same id fail with AlreadyCompleted.
func (s *Service) Finish(ctx context.Context, token string, sess *session.Session, explicitID uint) (*Attempt, string, error) {
	id, err := s.resolveAttempt(sess, explicitID)
	if err != nil {
		return nil, "", err
	}

	a, err := s.repo.Complete(id, sess.UserID, time.Now())
	if err != nil {
		return nil, "", err
	}

	if sess.ActiveAttemptID == a.ID {
		if err := s.sessions.ClearAttempt(ctx, token); err != nil {
			logger.L().Warn("failed to clear session attempt pointer", zap.Error(err))
		}
		sess.ActiveAttemptID = 0
	}

	metrics.AttemptsCompleted.Inc()
	message := fmt.Sprintf("Game completed! +%d coins!", progression.CompletionBonus)
	return a, message, nil
}

// resolveAttempt prefers an explicit id over the session pointer.
func (s *Service) resolveAttempt(sess *session.Session, explicitID uint) (uint, error) {
	if explicitID != 0 {
		return explicitID, nil
	}
	if sess.ActiveAttemptID != 0 {
		return sess.ActiveAttemptID, nil
	}
	return 0, apperrors.NoActiveGame()
}
