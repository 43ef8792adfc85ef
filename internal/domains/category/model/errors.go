package model

import "blog-backend/internal/shared/apperrors"

const Resource = "Category"

// ErrCategoryHasArticles guards the referential delete rule, same policy
// as authors: reject instead of cascade.
var ErrCategoryHasArticles = apperrors.NewConflict(Resource, "category still has linked articles")

func NewNotFound(field string, value any) error {
	return apperrors.NewNotFound(Resource, field, value)
}

func NewDuplicateName(name string) error {
	return apperrors.NewDuplicate(Resource, "name", name)
}
