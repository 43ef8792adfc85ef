package model

import "blog-backend/internal/shared/apperrors"

const Resource = "Comment"

func NewNotFound(field string, value any) error {
	return apperrors.NewNotFound(Resource, field, value)
}
