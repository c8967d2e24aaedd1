package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorMessage(t *testing.T) {
	err := NewNotFoundError("user jon not found")
	assert.Equal(t, "NOT_FOUND: user jon not found", err.Error())

	wrapped := NewExternalError("geolocation lookup failed", errors.New("connection refused"))
	assert.Equal(t, "EXTERNAL: geolocation lookup failed: connection refused", wrapped.Error())
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewInternalError("store failure", cause)
	assert.ErrorIs(t, err, cause)
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("missing")))
	assert.False(t, IsNotFound(NewConflictError("duplicate")))
	assert.True(t, IsConflict(NewConflictError("duplicate")))
	assert.True(t, IsExternal(NewExternalError("provider down", nil)))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handling request: %w", NewNotFoundError("missing"))
	assert.True(t, IsNotFound(err))
}
