package attempt

import (
	"time"

	"github.com/heritage-horizon/portal/internal/catalog"
	"github.com/heritage-horizon/portal/internal/user"
)

const (
	StatusIncomplete = "incomplete"
	StatusCompleted  = "completed"
)

// Attempt is one ledger row per play. Score is rewritable while incomplete;
// status transitions once, incomplete to completed, and never back.
type Attempt struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"not null;index" json:"user_id"`
	GameID   uint      `gorm:"not null" json:"game_id"`
	Score    int       `gorm:"not null;default:0" json:"score"`
	Status   string    `gorm:"not null;default:incomplete" json:"status"`
	PlayedAt time.Time `json:"played_at"`

	User user.User    `gorm:"foreignKey:UserID" json:"-"`
	Game catalog.Game `gorm:"foreignKey:GameID" json:"-"`
}
