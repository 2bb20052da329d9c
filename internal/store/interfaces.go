package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Predicate filters a query. Any squirrel condition can be used, e.g.
// sq.Eq{"id": 3} or sq.Like{"text": "%hello%"}. A nil Predicate selects all rows.
type Predicate = sq.Sqlizer

// EntityStore is the persistence capability the encryption layer works on:
// staging entities for insertion and running deferred queries.
type EntityStore[T any] interface {
	// Stage queues entities for insertion. Nothing is written until the
	// owning unit of work is committed.
	Stage(ctx context.Context, entities ...T) error

	// First returns the first entity matching where. found is false when no
	// row matched.
	First(ctx context.Context, where Predicate) (entity T, found bool, err error)

	// List returns every entity matching where.
	List(ctx context.Context, where Predicate) ([]T, error)
}

// UnitOfWork commits staged entities.
type UnitOfWork interface {
	// SaveChanges writes every staged entity and returns how many were written.
	SaveChanges(ctx context.Context) (int, error)

	// Discard drops every staged entity without writing it.
	Discard()
}

// ErrorClassificator decides whether a failed database operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
