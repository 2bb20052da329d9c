// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-field-crypt/internal/crypto"
	"github.com/MKhiriev/go-field-crypt/internal/fields"
	"github.com/MKhiriev/go-field-crypt/internal/logger"
	"github.com/MKhiriev/go-field-crypt/internal/store"
	"github.com/MKhiriev/go-field-crypt/internal/transform"
)

// EncryptedSet wraps an [store.EntityStore] so that encryptable attributes
// are encrypted before staging and decrypted after every query.
//
// Each operation comes in two forms following the database/sql convention:
// the plain form runs with context.Background(), the Context form passes
// ctx through to the store untouched.
//
// Keys are base64 text and are supplied on every call. EncryptedSet keeps no
// key state, never logs keys and is safe for concurrent use as long as
// callers do not share entity instances between calls.
type EncryptedSet[T fields.Entity] struct {
	store  store.EntityStore[T]
	engine *transform.Engine
	strict bool
	logger *logger.Logger
}

type setOptions struct {
	cipher crypto.Cipher
	strict bool
	logger *logger.Logger
}

// Option configures an [EncryptedSet].
type Option func(*setOptions)

// WithCipher replaces the AES-CBC cipher.
func WithCipher(c crypto.Cipher) Option {
	return func(o *setOptions) {
		o.cipher = c
	}
}

// WithStrict makes attribute failures and undecodable keys fatal. Writes
// then stage nothing and leave the entities unchanged, and reads return no
// entities, with an error wrapping [ErrTransformFailed]. By default failures are logged and the affected
// attributes keep their value.
func WithStrict(strict bool) Option {
	return func(o *setOptions) {
		o.strict = strict
	}
}

// WithLogger sets the fallback logger used when the context carries none.
func WithLogger(l *logger.Logger) Option {
	return func(o *setOptions) {
		o.logger = l
	}
}

// NewEncryptedSet builds an [EncryptedSet] over s.
func NewEncryptedSet[T fields.Entity](s store.EntityStore[T], opts ...Option) *EncryptedSet[T] {
	o := setOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	return &EncryptedSet[T]{
		store:  s,
		engine: transform.New(o.cipher),
		strict: o.strict,
		logger: o.logger,
	}
}

// AddEncrypt is [EncryptedSet.AddEncryptContext] with context.Background().
func (s *EncryptedSet[T]) AddEncrypt(entity T, key string) error {
	return s.AddEncryptContext(context.Background(), entity, key)
}

// AddEncryptContext encrypts entity in place and stages it.
func (s *EncryptedSet[T]) AddEncryptContext(ctx context.Context, entity T, key string) error {
	return s.add(ctx, []T{entity}, key)
}

// AddRangeEncrypt is [EncryptedSet.AddRangeEncryptContext] with context.Background().
func (s *EncryptedSet[T]) AddRangeEncrypt(entities []T, key string) error {
	return s.AddRangeEncryptContext(context.Background(), entities, key)
}

// AddRangeEncryptContext encrypts every entity in place and stages them in
// one call.
func (s *EncryptedSet[T]) AddRangeEncryptContext(ctx context.Context, entities []T, key string) error {
	return s.add(ctx, entities, key)
}

// FirstOrDefaultDecrypt is [EncryptedSet.FirstOrDefaultDecryptContext] with context.Background().
func (s *EncryptedSet[T]) FirstOrDefaultDecrypt(key string) (T, bool, error) {
	return s.FirstOrDefaultDecryptContext(context.Background(), key)
}

// FirstOrDefaultDecryptContext returns the first stored entity, decrypted.
// When the store is empty it returns the zero T, false and a nil error.
func (s *EncryptedSet[T]) FirstOrDefaultDecryptContext(ctx context.Context, key string) (T, bool, error) {
	return s.first(ctx, nil, key)
}

// FirstOrDefaultDecryptWhere is [EncryptedSet.FirstOrDefaultDecryptWhereContext] with context.Background().
func (s *EncryptedSet[T]) FirstOrDefaultDecryptWhere(where store.Predicate, key string) (T, bool, error) {
	return s.FirstOrDefaultDecryptWhereContext(context.Background(), where, key)
}

// FirstOrDefaultDecryptWhereContext returns the first entity matching where,
// decrypted. Predicates run against stored values, so conditions on
// encrypted columns compare ciphertext.
func (s *EncryptedSet[T]) FirstOrDefaultDecryptWhereContext(ctx context.Context, where store.Predicate, key string) (T, bool, error) {
	return s.first(ctx, where, key)
}

// ToListDecrypt is [EncryptedSet.ToListDecryptContext] with context.Background().
func (s *EncryptedSet[T]) ToListDecrypt(key string) ([]T, error) {
	return s.ToListDecryptContext(context.Background(), key)
}

// ToListDecryptContext returns every stored entity, decrypted.
func (s *EncryptedSet[T]) ToListDecryptContext(ctx context.Context, key string) ([]T, error) {
	return s.list(ctx, key)
}

// ToArrayDecrypt is [EncryptedSet.ToArrayDecryptContext] with context.Background().
func (s *EncryptedSet[T]) ToArrayDecrypt(key string) ([]T, error) {
	return s.ToArrayDecryptContext(context.Background(), key)
}

// ToArrayDecryptContext is ToListDecryptContext with the result clipped to
// its length, so appending to it never writes into shared memory.
func (s *EncryptedSet[T]) ToArrayDecryptContext(ctx context.Context, key string) ([]T, error) {
	entities, err := s.list(ctx, key)
	if err != nil {
		return nil, err
	}
	return slices.Clip(entities), nil
}

// add is the write core shared by the AddEncrypt family. When it returns an
// error every entity holds the values it was called with.
func (s *EncryptedSet[T]) add(ctx context.Context, entities []T, key string) error {
	if key == "" {
		return ErrMissingKey
	}
	for _, e := range entities {
		if fields.IsNil(e) {
			return ErrNilEntity
		}
	}

	engine, raw, err := s.prepare(ctx, key)
	if err != nil {
		return err
	}

	snapshots := make([]fields.Snapshot, len(entities))
	for i, e := range entities {
		snapshots[i] = fields.TakeSnapshot(e)
	}
	restore := func() {
		for _, snap := range snapshots {
			snap.Restore()
		}
	}

	report := transform.EncryptAll(engine, entities, raw)
	if err = s.check(ctx, report, "EncryptedSet.add"); err != nil {
		restore()
		return err
	}

	if err = s.store.Stage(ctx, entities...); err != nil {
		restore()
		return err
	}

	return nil
}

// first is the read core for single-entity queries.
func (s *EncryptedSet[T]) first(ctx context.Context, where store.Predicate, key string) (T, bool, error) {
	var zero T
	if key == "" {
		return zero, false, ErrMissingKey
	}

	engine, raw, err := s.prepare(ctx, key)
	if err != nil {
		return zero, false, err
	}

	entity, found, err := s.store.First(ctx, where)
	if err != nil || !found {
		return zero, false, err
	}

	report := engine.Decrypt(entity, raw)
	if err = s.check(ctx, report, "EncryptedSet.first"); err != nil {
		return zero, false, err
	}

	return entity, true, nil
}

// list is the read core for multi-entity queries.
func (s *EncryptedSet[T]) list(ctx context.Context, key string) ([]T, error) {
	if key == "" {
		return nil, ErrMissingKey
	}

	engine, raw, err := s.prepare(ctx, key)
	if err != nil {
		return nil, err
	}

	entities, err := s.store.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	report := transform.DecryptAll(engine, entities, raw)
	if err = s.check(ctx, report, "EncryptedSet.list"); err != nil {
		return nil, err
	}

	return entities, nil
}

// prepare decodes key. An undecodable key is fatal in strict mode; otherwise
// the returned engine fails every attribute with the decoding error.
func (s *EncryptedSet[T]) prepare(ctx context.Context, key string) (*transform.Engine, []byte, error) {
	raw, err := crypto.DecodeKey(key)
	if err == nil {
		return s.engine, raw, nil
	}

	if s.strict {
		return nil, nil, fmt.Errorf("%w: %w", ErrTransformFailed, err)
	}

	s.log(ctx).Warn().Err(err).
		Str("func", "EncryptedSet.prepare").
		Msg("encryption key is not valid base64, encrypted fields will be left as is")

	return transform.New(failingCipher{err: err}), nil, nil
}

func (s *EncryptedSet[T]) check(ctx context.Context, report transform.Report, fn string) error {
	if report.OK() {
		return nil
	}

	if s.strict {
		return fmt.Errorf("%w: %w", ErrTransformFailed, report.Err())
	}

	failed := report.Failed()
	names := make([]string, 0, len(failed))
	for _, o := range failed {
		names = append(names, o.Field)
	}

	s.log(ctx).Warn().Err(report.Err()).
		Str("func", fn).
		Str("op", string(report.Op)).
		Strs("fields", names).
		Int("failed", len(failed)).
		Msg("some fields were not transformed and keep their value")

	return nil
}

// log prefers the request logger and falls back to the configured one.
func (s *EncryptedSet[T]) log(ctx context.Context) *logger.Logger {
	l := logger.FromContext(ctx)
	if l.GetLevel() == zerolog.Disabled && s.logger != nil {
		return s.logger
	}
	return l
}

// failingCipher rejects every value with err.
type failingCipher struct {
	err error
}

func (c failingCipher) Encrypt(string, []byte) (string, error) { return "", c.err }
func (c failingCipher) Decrypt(string, []byte) (string, error) { return "", c.err }
