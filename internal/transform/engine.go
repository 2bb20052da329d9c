// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package transform applies a [crypto.Cipher] to every encryptable attribute
// of an entity, mutating the instance in place.
//
// Per-attribute cipher errors never abort a transform: the attribute keeps
// its value and the failure is recorded in the returned [Report]. Whether a
// failure is fatal is up to the caller.
//
// Transforms are not idempotent. Encrypting the same instance twice encrypts
// the ciphertext again, and decrypting with the wrong key leaves the
// ciphertext in place.
package transform

import (
	"github.com/MKhiriev/go-field-crypt/internal/crypto"
	"github.com/MKhiriev/go-field-crypt/internal/fields"
)

// Engine walks entity descriptors and applies a cipher to each target.
// It holds no key and no mutable state, so one Engine is safe for
// concurrent use on different entities.
type Engine struct {
	cipher crypto.Cipher
}

// New builds an Engine on top of c. A nil c selects AES-CBC.
func New(c crypto.Cipher) *Engine {
	if c == nil {
		c = crypto.NewAESCBC()
	}
	return &Engine{cipher: c}
}

// Encrypt encrypts every encryptable attribute of e with key.
// A nil e yields an empty report.
func (en *Engine) Encrypt(e fields.Entity, key []byte) Report {
	return en.apply(e, key, OpEncrypt)
}

// Decrypt decrypts every encryptable attribute of e with key.
// A nil e yields an empty report.
func (en *Engine) Decrypt(e fields.Entity, key []byte) Report {
	return en.apply(e, key, OpDecrypt)
}

// EncryptAll encrypts each entity of es and merges the reports. Nil entries
// contribute nothing.
func EncryptAll[T fields.Entity](en *Engine, es []T, key []byte) Report {
	report := Report{Op: OpEncrypt}
	for _, e := range es {
		report.merge(en.Encrypt(e, key))
	}
	return report
}

// DecryptAll decrypts each entity of es and merges the reports.
func DecryptAll[T fields.Entity](en *Engine, es []T, key []byte) Report {
	report := Report{Op: OpDecrypt}
	for _, e := range es {
		report.merge(en.Decrypt(e, key))
	}
	return report
}

func (en *Engine) apply(e fields.Entity, key []byte, op Op) Report {
	report := Report{Op: op}
	if fields.IsNil(e) {
		return report
	}

	for _, f := range e.Fields() {
		report.Outcomes = append(report.Outcomes, en.applyField(f, key, op))
	}

	return report
}

func (en *Engine) applyField(f fields.Field, key []byte, op Op) Outcome {
	out := Outcome{Field: f.Name(), Status: StatusSkipped}

	if !fields.IsEncryptable(f) {
		return out
	}

	value, ok := f.Get()
	if !ok || value == "" {
		return out
	}

	var (
		result string
		err    error
	)
	if op == OpEncrypt {
		result, err = en.cipher.Encrypt(value, key)
	} else {
		result, err = en.cipher.Decrypt(value, key)
	}
	if err != nil {
		out.Status = StatusFailed
		out.Err = err
		return out
	}

	if !f.Set(result) {
		return out
	}

	out.Status = StatusTransformed
	return out
}
