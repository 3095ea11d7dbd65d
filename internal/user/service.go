package user

import (
	"context"

	"go.uber.org/zap"

	"github.com/heritage-horizon/portal/internal/apperrors"
	"github.com/heritage-horizon/portal/internal/progression"
	"github.com/heritage-horizon/portal/internal/reward"
	"github.com/heritage-horizon/portal/internal/session"
	"github.com/heritage-horizon/portal/pkg/logger"
	"github.com/heritage-horizon/portal/pkg/metrics"
)

// StreakService is the slice of the reward engine a login needs.
type StreakService interface {
	LoginStreak(userID uint) (reward.StreakOutcome, error)
}

type UserService struct {
	repo     UserRepository
	streaks  StreakService
	sessions session.Store
	strategy progression.Strategy
}

func NewUserService(repo UserRepository, streaks StreakService, sessions session.Store, strategy progression.Strategy) *UserService {
	return &UserService{repo: repo, streaks: streaks, sessions: sessions, strategy: strategy}
}

func (u *UserService) Signup(ctx context.Context, req SignupRequest) (string, error) {
	created, err := u.repo.CreateUser(req.Username, req.Email, req.Password)
	if err != nil {
		return "", err
	}

	sid, err := u.sessions.Create(ctx, &session.Session{
		UserID:   created.ID,
		Username: created.Username,
		Role:     created.Role,
	})
	if err != nil {
		return "", apperrors.NewAppError(500, "error creating session", err)
	}

	token, errJWT := GenerateJWT(created.ID, created.Role, sid)
	if errJWT != nil {
		return "", apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	return token, nil
}

// Login validates credentials, advances the login streak exactly once, and
// establishes the session. Auth failures are always the same generic error.
func (u *UserService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	usr, err := u.repo.ValidateUser(req.Username, req.Password)
	if err != nil {
		return nil, apperrors.InvalidCredentials()
	}

	out, err := u.streaks.LoginStreak(usr.ID)
	if err != nil {
		return nil, err
	}

	sid, err := u.sessions.Create(ctx, &session.Session{
		UserID:   usr.ID,
		Username: usr.Username,
		Role:     usr.Role,
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "error creating session", err)
	}

	token, errJWT := GenerateJWT(usr.ID, usr.Role, sid)
	if errJWT != nil {
		return nil, apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}

	metrics.Logins.Inc()
	logger.L().Info("user logged in",
		zap.Uint("user_id", usr.ID),
		zap.Int("streak", out.Streak))

	return &LoginResult{
		Token:         token,
		Role:          usr.Role,
		StreakMessage: out.Message,
	}, nil
}

func (u *UserService) Logout(ctx context.Context, sessionToken string) error {
	if err := u.sessions.Delete(ctx, sessionToken); err != nil {
		return apperrors.NewAppError(500, "error destroying session", err)
	}
	return nil
}

// GetDashboard assembles the aggregate view fresh from the stores on every
// call; nothing here is cached.
func (u *UserService) GetDashboard(userID uint) (*DashboardResponse, error) {
	usr, err := u.repo.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, apperrors.NotFound("user not found")
	}

	totals, err := u.repo.FetchAttemptTotals(userID)
	if err != nil {
		return nil, err
	}

	level, badge := u.strategy.Evaluate(totals.TotalScore, usr.Coins)

	return &DashboardResponse{
		Username:         usr.Username,
		Coins:            usr.Coins,
		Level:            level,
		Badge:            badge,
		LoginStreak:      usr.LoginStreak,
		TotalGamesPlayed: totals.GamesPlayed,
		TotalScore:       totals.TotalScore,
	}, nil
}
