package service

import (
	"fmt"

	"github.com/MKhiriev/go-field-crypt/internal/config"
	"github.com/MKhiriev/go-field-crypt/internal/logger"
	"github.com/MKhiriev/go-field-crypt/internal/store"
)

type Services struct {
	AppInfoService AppInfoService
	MessageService MessageService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	messages := NewMessageService(storages.Messages, cfg.App.EncryptionKey, logger, WithStrict(cfg.App.Strict))

	return &Services{
		AppInfoService: appInfo,
		MessageService: NewMessageValidationService().Wrap(messages),
	}, nil
}
