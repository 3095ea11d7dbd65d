package attempt

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/heritage-horizon/portal/internal/apperrors"
	"github.com/heritage-horizon/portal/internal/progression"
	"github.com/heritage-horizon/portal/internal/user"
	"github.com/heritage-horizon/portal/pkg/db"
)

type Repository interface {
	Create(userID, gameID uint, now time.Time) (*Attempt, error)
	UpdateScore(attemptID, userID uint, score int, now time.Time) error
	Complete(attemptID, userID uint, now time.Time) (*Attempt, error)
}

type DBRepository struct {
	strategy progression.Strategy
}

func NewDBRepository(strategy progression.Strategy) *DBRepository {
	return &DBRepository{strategy: strategy}
}

func (r *DBRepository) Create(userID, gameID uint, now time.Time) (*Attempt, error) {
	a := Attempt{
		UserID:   userID,
		GameID:   gameID,
		Score:    0,
		Status:   StatusIncomplete,
		PlayedAt: now,
	}
	if err := db.DB.Create(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateScore overwrites the score of an incomplete attempt owned by the user.
// The status guard in the WHERE clause keeps completed attempts immutable.
func (r *DBRepository) UpdateScore(attemptID, userID uint, score int, now time.Time) error {
	result := db.DB.Model(&Attempt{}).
		Where("id = ? AND user_id = ? AND status = ?", attemptID, userID, StatusIncomplete).
		Updates(map[string]interface{}{"score": score, "played_at": now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.explainMiss(db.DB, attemptID, userID)
	}
	return nil
}

// Complete is the one irreversible transition. The guarded UPDATE is a
// compare-and-set on status so concurrent finishes race safely: exactly one
// wins and collects the rewards, the rest fail with AlreadyCompleted. The coin
// grant and level recompute ride in the same transaction.
func (r *DBRepository) Complete(attemptID, userID uint, now time.Time) (*Attempt, error) {
	var completed Attempt
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Attempt{}).
			Where("id = ? AND user_id = ? AND status = ?", attemptID, userID, StatusIncomplete).
			Updates(map[string]interface{}{"status": StatusCompleted, "played_at": now})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return r.explainMiss(tx, attemptID, userID)
		}

		if err := tx.Model(&user.User{}).Where("id = ?", userID).
			Update("coins", gorm.Expr("coins + ?", progression.CompletionBonus)).Error; err != nil {
			return err
		}

		var totalScore int64
		if err := tx.Model(&Attempt{}).
			Where("user_id = ? AND status = ?", userID, StatusCompleted).
			Select("COALESCE(SUM(score), 0)").
			Scan(&totalScore).Error; err != nil {
			return err
		}

		var u user.User
		if err := tx.First(&u, userID).Error; err != nil {
			return err
		}

		level, _ := r.strategy.Evaluate(totalScore, u.Coins)
		if level != u.Level {
			if err := tx.Model(&user.User{}).Where("id = ?", userID).
				Update("level", level).Error; err != nil {
				return err
			}
		}

		return tx.First(&completed, attemptID).Error
	})
	if err != nil {
		return nil, err
	}
	return &completed, nil
}

// explainMiss turns a zero-row guarded update into the right taxonomy error:
// an attempt that is not ours or does not exist is NoActiveGame, a finished
// one is AlreadyCompleted.
func (r *DBRepository) explainMiss(tx *gorm.DB, attemptID, userID uint) error {
	var a Attempt
	err := tx.Where("id = ? AND user_id = ?", attemptID, userID).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NoActiveGame()
	}
	if err != nil {
		return err
	}
	if a.Status == StatusCompleted {
		return apperrors.AlreadyCompleted()
	}
	return apperrors.NoActiveGame()
}
