package catalog

import (
	"gorm.io/gorm/clause"

	"github.com/heritage-horizon/portal/pkg/db"
)

var defaultGames = []Game{
	{Name: "Heritage Quiz", Section: "Heritage", Description: "Quiz about Indian heritage"},
	{Name: "Heritage Maze", Section: "Heritage", Description: "Maze challenge"},
	{Name: "Heritage Word Puzzle", Section: "Heritage", Description: "Word game"},
	{Name: "Heritage Cards", Section: "Heritage", Description: "Memory cards"},
	{Name: "Solar Quiz", Section: "Solar", Description: "Quiz about space"},
	{Name: "Solar Puzzle", Section: "Solar", Description: "Word puzzle"},
	{Name: "Solar Crush", Section: "Solar", Description: "Match game"},
	{Name: "Solar Asteroid", Section: "Solar", Description: "Asteroid dodging game"},
}

// Seed inserts the default catalog, skipping games that already exist so boot
// stays idempotent.
func Seed() error {
	for _, g := range defaultGames {
		if err := db.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&g).Error; err != nil {
			return err
		}
	}
	return nil
}
