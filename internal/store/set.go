// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-field-crypt/internal/logger"
)

// Table maps an entity type onto a SQL table with an auto-generated integer key.
type Table[T any] struct {
	// Name is the table name.
	Name string

	// Key is the auto-generated primary key column.
	Key string

	// Columns are the inserted columns, in the order returned by Values.
	Columns []string

	// New allocates an empty entity to scan into.
	New func() T

	// Values returns the values for Columns.
	Values func(T) []any

	// Targets returns scan destinations for Key followed by Columns.
	Targets func(T) []any

	// SetKey stores the generated key on the entity after insertion.
	SetKey func(T, int64)
}

func (t Table[T]) selectColumns() []string {
	return append([]string{t.Key}, t.Columns...)
}

// Set is the SQL-backed [EntityStore] and [UnitOfWork] for one table.
//
// Staged entities are kept in memory until SaveChanges writes them in a
// single transaction. Staging is safe for concurrent use.
type Set[T any] struct {
	db    *DB
	table Table[T]

	mu      sync.Mutex
	pending []T

	// newBackoff returns the retry policy for one SaveChanges call.
	newBackoff func() retry.Backoff

	logger *logger.Logger
}

// NewSet builds a [Set] for table on top of db.
func NewSet[T any](db *DB, table Table[T], log *logger.Logger) *Set[T] {
	return &Set[T]{
		db:    db,
		table: table,
		newBackoff: func() retry.Backoff {
			return retry.WithMaxRetries(3, retry.NewExponential(50*time.Millisecond))
		},
		logger: log,
	}
}

// Stage implements [EntityStore].
func (s *Set[T]) Stage(ctx context.Context, entities ...T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = append(s.pending, entities...)
	return nil
}

// Pending returns the number of staged, not yet saved entities.
func (s *Set[T]) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.pending)
}

// Discard drops every staged entity.
func (s *Set[T]) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = nil
}

// SaveChanges implements [UnitOfWork]. Staged entities are inserted in one
// transaction and receive their generated keys. Transient failures are
// retried; on final failure the entities stay staged.
func (s *Set[T]) SaveChanges(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	batch := append([]T(nil), s.pending...)
	s.mu.Unlock()

	if len(batch) == 0 {
		return 0, nil
	}

	attempt := 0
	err := retry.Do(ctx, s.newBackoff(), func(ctx context.Context) error {
		attempt++
		err := s.insert(ctx, batch)
		if err != nil && s.db.classify(err) == Retryable {
			log.Warn().Err(err).
				Str("func", "Set.SaveChanges").
				Str("table", s.table.Name).
				Int("attempt", attempt).
				Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		return 0, err
	}

	// entities staged while the batch was being written stay queued
	s.mu.Lock()
	if len(s.pending) >= len(batch) {
		s.pending = s.pending[len(batch):]
	} else {
		s.pending = nil
	}
	s.mu.Unlock()

	return len(batch), nil
}

func (s *Set[T]) insert(ctx context.Context, batch []T) error {
	log := logger.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "Set.insert").Str("table", s.table.Name).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for i, entity := range batch {
		query, args, err := s.db.statementBuilder().
			Insert(s.table.Name).
			Columns(s.table.Columns...).
			Values(s.table.Values(entity)...).
			Suffix("RETURNING " + s.table.Key).
			ToSql()
		if err != nil {
			log.Err(err).Str("func", "Set.insert").Str("table", s.table.Name).Msg("failed to build insert query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var id int64
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			log.Err(err).
				Str("func", "Set.insert").
				Str("table", s.table.Name).
				Int("iteration", i).
				Msg("failed to insert row")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		s.table.SetKey(entity, id)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "Set.insert").Str("table", s.table.Name).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// First implements [EntityStore]. Rows are ordered by key.
func (s *Set[T]) First(ctx context.Context, where Predicate) (T, bool, error) {
	log := logger.FromContext(ctx)
	var zero T

	query, args, err := s.selectQuery(where).Limit(1).ToSql()
	if err != nil {
		log.Err(err).Str("func", "Set.First").Str("table", s.table.Name).Msg("failed to build select query")
		return zero, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entity := s.table.New()
	err = s.db.QueryRowContext(ctx, query, args...).Scan(s.table.Targets(entity)...)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "Set.First").Str("table", s.table.Name).Msg("failed to query first row")
		return zero, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entity, true, nil
}

// List implements [EntityStore]. Rows are ordered by key.
func (s *Set[T]) List(ctx context.Context, where Predicate) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.selectQuery(where).ToSql()
	if err != nil {
		log.Err(err).Str("func", "Set.List").Str("table", s.table.Name).Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "Set.List").Str("table", s.table.Name).Msg("failed to execute select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]T, 0)
	for rows.Next() {
		entity := s.table.New()
		if err = rows.Scan(s.table.Targets(entity)...); err != nil {
			log.Err(err).Str("func", "Set.List").Str("table", s.table.Name).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		results = append(results, entity)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "Set.List").Str("table", s.table.Name).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

func (s *Set[T]) selectQuery(where Predicate) sq.SelectBuilder {
	q := s.db.statementBuilder().
		Select(s.table.selectColumns()...).
		From(s.table.Name).
		OrderBy(s.table.Key)

	if where != nil {
		q = q.Where(where)
	}

	return q
}
