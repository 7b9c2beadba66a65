// internal/domain/game.go
package domain

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Game represents a title in the store catalog.
type Game struct {
	ID          int64           `db:"id" json:"id"`                     // Primary key, BIGSERIAL in DB
	Title       string          `db:"title" json:"title"`               // Display title
	Description string          `db:"description" json:"description"`   // Short marketing description
	Developer   string          `db:"developer" json:"developer"`       // Studio that built the game
	Publisher   string          `db:"publisher" json:"publisher"`       // Defaults to the developer when not set
	Price       decimal.Decimal `db:"price" json:"price"`               // Store price, NUMERIC(12, 2) in DB, never negative
	Category    string          `db:"category" json:"category"`         // e.g., "RPG", "Action"
	ImageURL    string          `db:"image_url" json:"image_url"`       // Cover image
	Rating      float64         `db:"rating" json:"rating"`             // Average rating, 0.0-5.0
	ReviewCount int             `db:"review_count" json:"review_count"` // Number of reviews behind the rating
	Tags        pq.StringArray  `db:"tags" json:"tags"`                 // Free-form tags, TEXT[] in DB
	IsActive    bool            `db:"is_active" json:"is_active"`       // Inactive games are hidden from browsing
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`     // Timestamp of record creation
}

// NewGame creates a new Game instance. Publisher defaults to the developer.
func NewGame(title, description, developer string, price decimal.Decimal, category string, now time.Time) *Game {
	return &Game{
		Title:       title,
		Description: description,
		Developer:   developer,
		Publisher:   developer,
		Price:       price,
		Category:    category,
		IsActive:    true,
		CreatedAt:   now,
	}
}
