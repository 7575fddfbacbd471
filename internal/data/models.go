package data

import (
	"context"
	"database/sql"
	"errors"
)

// ErrRecordNotFound is returned when a lookup or mutation matches no row.
var ErrRecordNotFound = errors.New("record not found")

// MovieStore is the set of operations the handlers need from storage. It is
// an interface so tests can swap in an in-memory implementation.
type MovieStore interface {
	GetAll(ctx context.Context) ([]Movie, error)
	Get(ctx context.Context, id int64) (*Movie, error)
	Insert(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, id int64, input MovieInput) (*Movie, error)
	Delete(ctx context.Context, id int64) error
}

// Models collects the data stores used by the application.
type Models struct {
	Movies MovieStore
}

// NewModels returns a Models value backed by the given connection pool.
func NewModels(db *sql.DB) Models {
	return Models{
		Movies: MovieModel{DB: db},
	}
}
