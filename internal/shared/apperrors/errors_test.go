package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	nf := NewNotFound("Article", "slug", "hello-world")
	assert.Equal(t, "Article not found with slug: 'hello-world'", nf.Error())

	dup := NewDuplicate("Author", "email", "jane@example.com")
	assert.Equal(t, "Author already exists with email: 'jane@example.com'", dup.Error())
}

func TestClassificationThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading detail: %w", NewNotFound("Comment", "id", 7))

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsDuplicate(wrapped))
	assert.Equal(t, "RESOURCE_NOT_FOUND", ToErrorCode(wrapped))
	assert.Equal(t, http.StatusNotFound, ToHTTPStatus(wrapped))
}

func TestWrapValidation(t *testing.T) {
	assert.NoError(t, WrapValidation(nil))

	// Non-validation errors pass through untouched.
	plain := errors.New("connection refused")
	assert.Same(t, plain, WrapValidation(plain))

	wrapped := WrapValidation(validation.Errors{
		"title": errors.New("title is required"),
		"email": errors.New("invalid email format"),
	})

	var ve *ValidationError
	assert.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "title is required", ve.Fields["title"])
	assert.Equal(t, "invalid email format", ve.Fields["email"])
	assert.Equal(t, "VALIDATION_FAILED", ToErrorCode(wrapped))
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(wrapped))
}

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{NewNotFound("Article", "id", 1), "RESOURCE_NOT_FOUND", http.StatusNotFound},
		{NewDuplicate("Category", "name", "Go"), "DUPLICATE_RESOURCE", http.StatusConflict},
		{NewConflict("Author", "author still has linked articles"), "CONFLICT", http.StatusConflict},
		{NewBadRequest("unsupported sort field: %s", "slug"), "BAD_REQUEST", http.StatusBadRequest},
		{&ValidationError{Fields: map[string]string{"title": "required"}}, "VALIDATION_FAILED", http.StatusBadRequest},
		{fmt.Errorf("connection refused"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.code, ToErrorCode(tc.err), tc.err.Error())
		assert.Equal(t, tc.status, ToHTTPStatus(tc.err), tc.err.Error())
	}
}
