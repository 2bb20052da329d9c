package validators

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-field-crypt/models"
)

// Field names accepted by [MessageValidator.Validate].
const (
	FieldID   = "id"
	FieldText = "text"
)

// MaxTextLength is the longest accepted message text, in bytes.
const MaxTextLength = 64 << 10

type MessageValidator struct{}

func NewMessageValidator() Validator {
	return &MessageValidator{}
}

func (v *MessageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Message:
		return v.validateMessage(ctx, value, fields...)
	case *models.Message:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateMessage(ctx, *value, fields...)

	case models.CreateMessageRequest:
		return v.validateCreateRequest(ctx, value, fields...)
	case *models.CreateMessageRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCreateRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *MessageValidator) validateMessage(ctx context.Context, msg models.Message, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if msg.ID <= 0 {
				return ErrInvalidID
			}
		case FieldText:
			if err := validateText(msg.Text); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MessageValidator) validateCreateRequest(ctx context.Context, request models.CreateMessageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if err := validateText(request.Text); err != nil {
				return fmt.Errorf("create message request: %w", err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateText(text string) error {
	if text == "" {
		return ErrEmptyText
	}
	if len(text) > MaxTextLength {
		return ErrTextTooLong
	}
	if !utf8.ValidString(text) {
		return fmt.Errorf("%w: not valid UTF-8", ErrUnsupportedType)
	}
	return nil
}
