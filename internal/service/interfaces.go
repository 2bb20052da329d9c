package service

import (
	"context"

	"github.com/MKhiriev/go-field-crypt/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// MessageService stores and reads messages whose text is encrypted at rest.
type MessageService interface {
	// Create encrypts and saves a message. The returned message carries the
	// assigned ID and the plaintext.
	Create(ctx context.Context, text string) (models.Message, error)

	// Get returns the decrypted message with the given ID or ErrMessageNotFound.
	Get(ctx context.Context, id int64) (models.Message, error)

	// ListDecrypted returns every message with its text decrypted.
	ListDecrypted(ctx context.Context) ([]models.Message, error)

	// ListStored returns every message as stored, with ciphertext.
	ListStored(ctx context.Context) ([]models.Message, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// MessageServiceWrapper decorates a MessageService, e.g. with validation.
type MessageServiceWrapper interface {
	Wrap(MessageService) MessageService
}
