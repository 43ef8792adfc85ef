package model

import (
	"time"

	"github.com/google/uuid"
)

// Category groups articles. Name is unique across all categories.
type Category struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	CreatedOn   time.Time `json:"created_on" db:"created_on"`
}

const MaxDescriptionLength = 500

type CategoryFilter struct {
	SortBy  string
	SortDir string
	Limit   int
	Offset  int
}
