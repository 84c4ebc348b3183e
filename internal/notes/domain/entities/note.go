// Package entities defines the domain entities for the notes service.
package entities

import (
	"time"

	"github.com/google/uuid"
)

// Note представляет собой заметку.
type Note struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewNote создает заметку с новым идентификатором.
// UpdatedAt совпадает с CreatedAt до первого обновления.
func NewNote(title, description string, category Category, now time.Time) *Note {
	now = now.UTC()
	return &Note{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
