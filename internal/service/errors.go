package service

import "errors"

var (
	// ErrMissingKey is returned by every [EncryptedSet] entry point called
	// with an empty key. No store call is made and no entity is touched.
	ErrMissingKey = errors.New("encryption key is missing")

	// ErrTransformFailed wraps per-attribute cipher failures in strict mode.
	ErrTransformFailed = errors.New("field transform failed")

	// ErrNilEntity is returned when a write is given a nil entity.
	ErrNilEntity = errors.New("nil entity")

	// ErrMessageNotFound is returned by MessageService.Get when no message
	// has the requested ID.
	ErrMessageNotFound = errors.New("message not found")

	// ErrInvalidDataProvided wraps a validator error for input rejected
	// before it reaches the store.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrVersionIsNotSpecified is returned by NewAppInfoService when the
	// configured version is empty.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
