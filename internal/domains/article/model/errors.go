package model

import "blog-backend/internal/shared/apperrors"

const Resource = "Article"

func NewNotFound(field string, value any) error {
	return apperrors.NewNotFound(Resource, field, value)
}

func NewDuplicateSlug(slug string) error {
	return apperrors.NewDuplicate(Resource, "slug", slug)
}
