package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestMapErrorPassesThroughAppError(t *testing.T) {
	original := NewConflict(MsgDuplicateField)

	mapped := MapError(original)
	assert.Same(t, original, mapped)

	// Wrapped AppErrors are unwrapped, not re-mapped.
	mapped = MapError(fmt.Errorf("saving user: %w", original))
	assert.Same(t, original, mapped)
}

func TestMapErrorNoDocuments(t *testing.T) {
	mapped := MapError(mongo.ErrNoDocuments)

	assert.Equal(t, ErrCodeNotFound, mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
	assert.Equal(t, MsgRecordNotFound, mapped.UserMessage)
}

func TestMapErrorDefaultsToInternal(t *testing.T) {
	cause := errors.New("connection reset")
	mapped := MapError(cause)

	assert.Equal(t, ErrCodeInternal, mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	assert.Equal(t, MsgInternalError, mapped.UserMessage)
	assert.Equal(t, cause, mapped.OriginalError)
}

func TestMapErrorNil(t *testing.T) {
	assert.Nil(t, MapError(nil))
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	appErr := NewInternal(cause)

	assert.ErrorIs(t, appErr, cause)
	assert.Contains(t, appErr.Error(), "boom")
}
