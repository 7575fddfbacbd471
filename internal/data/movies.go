package data

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type Movie struct {
	ID        int64     `json:"id"`
	Naslov    string    `json:"naslov"`           // Title; the only required field.
	Godina    *int32    `json:"godina,omitempty"` // Year of release.
	Zanr      *string   `json:"zanr,omitempty"`   // Genre.
	CreatedAt time.Time `json:"created_at"`
}

// MovieInput carries the mutable fields of a create or update request. A nil
// pointer means the field was either absent from the body or explicitly
// null; update treats both as "leave the stored value unchanged", so a
// client cannot clear a field back to null through this API.
type MovieInput struct {
	Naslov *string `json:"naslov"`
	Godina *int32  `json:"godina"`
	Zanr   *string `json:"zanr"`
}

// apply copies the present input fields onto movie.
func (in MovieInput) apply(movie *Movie) {
	if in.Naslov != nil {
		movie.Naslov = *in.Naslov
	}
	if in.Godina != nil {
		movie.Godina = in.Godina
	}
	if in.Zanr != nil {
		movie.Zanr = in.Zanr
	}
}

// MovieModel issues parameterized statements against the filmovi table.
// Every request-derived value reaches Postgres as a bound parameter.
type MovieModel struct {
	DB *sql.DB
}

// GetAll returns every movie row. There is no ORDER BY clause, so the
// ordering is whatever the storage engine produces.
func (m MovieModel) GetAll(ctx context.Context) ([]Movie, error) {
	query := `
		SELECT id, naslov, godina, zanr, created_at
		FROM filmovi`

	rows, err := m.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []Movie{}

	for rows.Next() {
		var movie Movie
		err := rows.Scan(&movie.ID, &movie.Naslov, &movie.Godina, &movie.Zanr, &movie.CreatedAt)
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

func (m MovieModel) Get(ctx context.Context, id int64) (*Movie, error) {
	// Postgres serials start at 1, so anything lower can't exist.
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	query := `
		SELECT id, naslov, godina, zanr, created_at
		FROM filmovi
		WHERE id = $1`

	var movie Movie

	err := m.DB.QueryRowContext(ctx, query, id).Scan(
		&movie.ID,
		&movie.Naslov,
		&movie.Godina,
		&movie.Zanr,
		&movie.CreatedAt,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &movie, nil
}

// Insert writes a new row and fills in the storage-assigned id and
// created_at on the given movie. RETURNING makes this a single round-trip,
// so there is no window for a concurrent delete between write and re-read.
func (m MovieModel) Insert(ctx context.Context, movie *Movie) error {
	query := `
		INSERT INTO filmovi (naslov, godina, zanr)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	args := []any{movie.Naslov, movie.Godina, movie.Zanr}

	return m.DB.QueryRowContext(ctx, query, args...).Scan(&movie.ID, &movie.CreatedAt)
}

// Update replaces the stored values for each field present in input and
// returns the resulting row. The read and the write run inside one
// transaction with the row locked, so a concurrent delete lands either
// before (not found) or after this unit of work, never in between.
func (m MovieModel) Update(ctx context.Context, id int64, input MovieInput) (*Movie, error) {
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		SELECT id, naslov, godina, zanr, created_at
		FROM filmovi
		WHERE id = $1
		FOR UPDATE`

	var movie Movie

	err = tx.QueryRowContext(ctx, query, id).Scan(
		&movie.ID,
		&movie.Naslov,
		&movie.Godina,
		&movie.Zanr,
		&movie.CreatedAt,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	input.apply(&movie)

	query = `
		UPDATE filmovi
		SET naslov = $1, godina = $2, zanr = $3
		WHERE id = $4`

	args := []any{movie.Naslov, movie.Godina, movie.Zanr, movie.ID}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return &movie, nil
}

func (m MovieModel) Delete(ctx context.Context, id int64) error {
	if id < 1 {
		return ErrRecordNotFound
	}

	query := `
		DELETE FROM filmovi
		WHERE id = $1`

	result, err := m.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}
