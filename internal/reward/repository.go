package reward

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/heritage-horizon/portal/pkg/db"
)

// Repository performs the gate-and-write steps of the engine atomically with
// respect to concurrent requests for the same user: the row is locked for the
// duration of the check and the update.
type Repository interface {
	AdvanceStreak(userID uint, now time.Time) (StreakOutcome, error)
	ClaimSpin(userID uint, reward int, now time.Time) (bool, error)
	GrantCoins(userID uint, amount int) error
}

// economyRow is the slice of the users table this package is allowed to touch.
type economyRow struct {
	LoginStreak    int
	LastStreakDate *time.Time
	LastSpin       *time.Time
}

type DBRepository struct{}

func NewDBRepository() *DBRepository {
	return &DBRepository{}
}

func (r *DBRepository) AdvanceStreak(userID uint, now time.Time) (StreakOutcome, error) {
	var out StreakOutcome
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var row economyRow
		if err := tx.Table("users").
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", userID).
			Take(&row).Error; err != nil {
			return err
		}

		out = EvaluateStreak(row.LastStreakDate, row.LoginStreak, now)
		if !out.Advanced {
			return nil
		}

		updates := map[string]interface{}{
			"login_streak":     out.Streak,
			"last_streak_date": DateOnly(now),
			"last_login":       now,
		}
		if out.Coins > 0 {
			updates["coins"] = gorm.Expr("coins + ?", out.Coins)
		}
		return tx.Table("users").Where("id = ?", userID).Updates(updates).Error
	})
	return out, err
}

func (r *DBRepository) ClaimSpin(userID uint, reward int, now time.Time) (bool, error) {
	granted := false
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var row economyRow
		if err := tx.Table("users").
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", userID).
			Take(&row).Error; err != nil {
			return err
		}

		today := DateOnly(now)
		if row.LastSpin != nil && DateOnly(*row.LastSpin).Equal(today) {
			return nil
		}

		granted = true
		return tx.Table("users").Where("id = ?", userID).Updates(map[string]interface{}{
			"coins":     gorm.Expr("coins + ?", reward),
			"last_spin": today,
		}).Error
	})
	return granted, err
}

func (r *DBRepository) GrantCoins(userID uint, amount int) error {
	return db.DB.Table("users").Where("id = ?", userID).
		Update("coins", gorm.Expr("coins + ?", amount)).Error
}
