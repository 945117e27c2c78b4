package author

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) ListWithBooks(ctx context.Context) ([]Author, error) {
	const query = `
	SELECT id, name, biography, created_at, updated_at
	FROM authors
	ORDER BY created_at ASC
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Author{}
	for rows.Next() {
		var a Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Biography, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		a.Books = []Book{}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachBooks(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// attachBooks loads the books for all given authors in one query.
func (r *PostgresRepo) attachBooks(ctx context.Context, authors []Author) error {
	if len(authors) == 0 {
		return nil
	}

	ids := make([]string, len(authors))
	index := make(map[string]int, len(authors))
	for i, a := range authors {
		ids[i] = a.ID
		index[a.ID] = i
	}

	const query = `
	SELECT ba.author_id, b.id, b.title, b.description, b.views
	FROM book_authors ba
	JOIN books b ON b.id = ba.book_id
	WHERE ba.author_id = ANY($1::uuid[])
	ORDER BY b.title ASC
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var authorID string
		var b Book
		if err := rows.Scan(&authorID, &b.ID, &b.Title, &b.Description, &b.Views); err != nil {
			return err
		}
		if i, ok := index[authorID]; ok {
			authors[i].Books = append(authors[i].Books, b)
		}
	}
	return rows.Err()
}

func (r *PostgresRepo) SearchByName(ctx context.Context, query string) ([]Author, error) {
	const sql = `
	SELECT id, name, biography, created_at, updated_at
	FROM authors
	WHERE name ILIKE $1
	ORDER BY created_at ASC
	`
	pattern := "%" + query + "%"
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, sql, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Author{}
	for rows.Next() {
		var a Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Biography, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Create(ctx context.Context, a *Author) error {
	const query = `
	INSERT INTO authors (id, name, biography)
	VALUES (gen_random_uuid(), $1, $2)
	RETURNING id, created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query, a.Name, a.Biography).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Author, error) {
	const query = `
	SELECT id, name, biography, created_at, updated_at
	FROM authors
	WHERE id = $1
	LIMIT 1
	`
	var a Author
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(&a.ID, &a.Name, &a.Biography, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Author{}, ErrNotFound
		}
		return Author{}, err
	}
	return a, nil
}

func (r *PostgresRepo) BooksOf(ctx context.Context, authorID string) ([]Book, error) {
	if _, err := r.GetByID(ctx, authorID); err != nil {
		return nil, err
	}

	const query = `
	SELECT b.id, b.title, b.description, b.views
	FROM book_authors ba
	JOIN books b ON b.id = ba.book_id
	WHERE ba.author_id = $1
	ORDER BY b.title ASC
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Book{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.Views); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Update(ctx context.Context, id, name, biography string) error {
	const query = `
	UPDATE authors
	SET name = $2, biography = $3, updated_at = now()
	WHERE id = $1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	result, err := r.db.Exec(timeoutCtx, query, id, name, biography)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM authors WHERE id = $1`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	result, err := r.db.Exec(timeoutCtx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
