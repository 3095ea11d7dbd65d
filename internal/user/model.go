package user

import "time"

type User struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Username       string     `gorm:"uniqueIndex;not null" json:"username"`
	Email          *string    `gorm:"uniqueIndex" json:"email,omitempty"`
	Password       string     `json:"password,omitempty"`
	Role           string     `gorm:"not null;default:user" json:"role"`
	Coins          int64      `gorm:"not null;default:0" json:"coins"`
	Level          int        `gorm:"not null;default:1" json:"level"`
	LoginStreak    int        `gorm:"not null;default:0" json:"login_streak"`
	LastStreakDate *time.Time `json:"last_streak_date,omitempty"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
	LastSpin       *time.Time `json:"last_spin,omitempty"`
}

type SignupRequest struct {
	Username string  `json:"username"`
	Email    *string `json:"email,omitempty"`
	Password string  `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token         string `json:"token"`
	Role          string `json:"role"`
	StreakMessage string `json:"streak_message,omitempty"`
}

// AttemptTotals are the ledger aggregates behind the dashboard, always read
// fresh from completed attempts.
type AttemptTotals struct {
	GamesPlayed int64
	TotalScore  int64
}

type DashboardResponse struct {
	Username         string `json:"username"`
	Coins            int64  `json:"coins"`
	Level            int    `json:"level"`
	Badge            string `json:"badge"`
	LoginStreak      int    `json:"login_streak"`
	TotalGamesPlayed int64  `json:"total_games_played"`
	TotalScore       int64  `json:"total_score"`
}
