package catalog

import (
	"errors"

	"gorm.io/gorm"

	"github.com/heritage-horizon/portal/internal/apperrors"
	"github.com/heritage-horizon/portal/pkg/db"
)

type Repository interface {
	GetGameByName(name string) (*Game, error)
	ListGames() ([]Game, error)
	CreateGame(game *Game) error
}

type DBRepository struct{}

func NewDBRepository() *DBRepository {
	return &DBRepository{}
}

// GetGameByName returns nil without error when the game is unknown; callers
// decide how to surface that.
func (r *DBRepository) GetGameByName(name string) (*Game, error) {
	var g Game
	result := db.DB.Where("name = ?", name).First(&g)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &g, nil
}

func (r *DBRepository) ListGames() ([]Game, error) {
	var games []Game
	if err := db.DB.Order("section, name").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *DBRepository) CreateGame(game *Game) error {
	var exists Game
	result := db.DB.Where("name = ?", game.Name).First(&exists)
	if result.Error == nil {
		return apperrors.DuplicateIdentity("game already exists")
	}
	return db.DB.Create(game).Error
}
