package codegen

import "errors"

var (
	// ErrNoTaggedStructs is returned when the source has no struct with a
	// crypt tag.
	ErrNoTaggedStructs = errors.New("no struct with crypt tags found")

	// ErrMisplacedTag is returned for a crypt tag on an attribute whose type
	// is neither string nor *string.
	ErrMisplacedTag = errors.New("crypt tag on non-string attribute")

	// ErrUnknownTagValue is returned for a crypt tag other than "encrypted"
	// or "plain".
	ErrUnknownTagValue = errors.New("unknown crypt tag value")
)
