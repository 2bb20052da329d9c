// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the messages API.
//
// [ServerAdapter] hides the transport from callers. Non-2xx answers are mapped
// onto the sentinel errors in errors.go so that callers can use [errors.Is]
// (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-field-crypt/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to a fieldcrypt server.
type ServerAdapter interface {
	// CreateMessage posts text and returns the saved message with its ID.
	CreateMessage(ctx context.Context, text string) (models.Message, error)

	// GetMessage returns the decrypted message with the given ID.
	GetMessage(ctx context.Context, id int64) (models.Message, error)

	// ListMessages returns every message. With decrypted unset the text
	// fields hold cipher envelopes as stored.
	ListMessages(ctx context.Context, decrypted bool) ([]models.Message, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
