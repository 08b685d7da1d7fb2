package errors

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// MapError converts an arbitrary error into an AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case mongo.IsDuplicateKeyError(err):
		return NewConflict(MsgDuplicateField)
	case errors.Is(err, mongo.ErrNoDocuments):
		return NewNotFound(MsgRecordNotFound)
	default:
		return NewInternal(err)
	}
}
