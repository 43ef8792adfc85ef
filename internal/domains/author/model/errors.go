package model

import "blog-backend/internal/shared/apperrors"

const Resource = "Author"

// ErrAuthorHasArticles guards the referential delete rule: an author that
// still has articles cannot be removed (no cascade, no nullify).
var ErrAuthorHasArticles = apperrors.NewConflict(Resource, "author still has linked articles")

func NewNotFound(field string, value any) error {
	return apperrors.NewNotFound(Resource, field, value)
}

func NewDuplicateEmail(email string) error {
	return apperrors.NewDuplicate(Resource, "email", email)
}
