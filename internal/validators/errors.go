package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyText   = errors.New("text is required")
	ErrTextTooLong = errors.New("text is too long")
	ErrInvalidID   = errors.New("invalid message ID")
)
