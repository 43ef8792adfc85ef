package model

import (
	"time"

	"github.com/google/uuid"
)

// Author writes articles. Email is unique across all authors.
type Author struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Bio       *string   `json:"bio" db:"bio"`
	CreatedOn time.Time `json:"created_on" db:"created_on"`
}

const MaxBioLength = 1000

// AuthorFilter - query parameters for the paginated listing
type AuthorFilter struct {
	SortBy  string // whitelisted by the service
	SortDir string // "ASC" | "DESC"
	Limit   int
	Offset  int
}
