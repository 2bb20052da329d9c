// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

//go:generate go run ../cmd/fieldcrypt gen message.go -o message_fields.go

// Message is a short text note. Text is encrypted at rest; ID is assigned by
// the database.
type Message struct {
	// ID is the database key. Zero until the message is saved.
	ID int64 `json:"id"`

	// Text is the message body. Stored as a cipher envelope.
	Text string `json:"text" crypt:"encrypted"`
}

// CreateMessageRequest is the body of POST /api/messages.
type CreateMessageRequest struct {
	Text string `json:"text"`
}
