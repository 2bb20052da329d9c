package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-field-crypt/internal/validators"
	"github.com/MKhiriev/go-field-crypt/models"
)

type MessageValidationService struct {
	inner     MessageService
	validator validators.Validator
}

func NewMessageValidationService() MessageServiceWrapper {
	return &MessageValidationService{
		validator: validators.NewMessageValidator(),
	}
}

func (v *MessageValidationService) Create(ctx context.Context, text string) (models.Message, error) {
	if err := v.validator.Validate(ctx, models.CreateMessageRequest{Text: text}); err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, text)
}

func (v *MessageValidationService) Get(ctx context.Context, id int64) (models.Message, error) {
	if err := v.validator.Validate(ctx, models.Message{ID: id}, validators.FieldID); err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Get(ctx, id)
}

func (v *MessageValidationService) ListDecrypted(ctx context.Context) ([]models.Message, error) {
	return v.inner.ListDecrypted(ctx)
}

func (v *MessageValidationService) ListStored(ctx context.Context) ([]models.Message, error) {
	return v.inner.ListStored(ctx)
}

func (v *MessageValidationService) Wrap(wrapped MessageService) MessageService {
	v.inner = wrapped
	return v
}
