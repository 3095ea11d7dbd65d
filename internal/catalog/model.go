package catalog

// Game is a catalog entry. The catalog is mostly static: rows are seeded at
// boot and immutable after creation.
type Game struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Section     string `gorm:"not null" json:"section"`
	Description string `json:"description,omitempty"`
}
