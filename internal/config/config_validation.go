// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-field-crypt/internal/crypto"
)

// validate checks the merged [StructuredConfig] after defaults were applied.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case "sqlite3":
	case "postgres", "pgx":
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: postgres requires a database URI", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	// an absent key is allowed: requests then fail with a missing key error
	if cfg.App.EncryptionKey != "" {
		key, err := crypto.DecodeKey(cfg.App.EncryptionKey)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
		switch len(key) {
		case 16, 24, 32:
		default:
			return fmt.Errorf("%w: %w: %d bytes", ErrInvalidAppConfigs, crypto.ErrInvalidKeySize, len(key))
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.ServerURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidClientConfigs, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: server url must be absolute http(s), got %q", ErrInvalidClientConfigs, cfg.ServerURL)
	}

	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidClientConfigs)
	}

	return nil
}
