package book

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

func (r *PostgresRepo) ListWithAuthors(ctx context.Context) ([]Book, error) {
	return r.listWithAuthors(ctx, "ORDER BY created_at ASC")
}

func (r *PostgresRepo) Leaderboard(ctx context.Context) ([]Book, error) {
	return r.listWithAuthors(ctx, "ORDER BY views DESC")
}

func (r *PostgresRepo) listWithAuthors(ctx context.Context, orderBy string) ([]Book, error) {
	query := `
	SELECT id, title, description, views, created_at, updated_at
	FROM books ` + orderBy

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Book{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.Views, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		b.Authors = []Author{}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachAuthors(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// attachAuthors loads the authors for all given books in one query.
func (r *PostgresRepo) attachAuthors(ctx context.Context, books []Book) error {
	if len(books) == 0 {
		return nil
	}

	ids := make([]string, len(books))
	index := make(map[string]int, len(books))
	for i, b := range books {
		ids[i] = b.ID
		index[b.ID] = i
	}

	const query = `
	SELECT ba.book_id, a.id, a.name, a.biography
	FROM book_authors ba
	JOIN authors a ON a.id = ba.author_id
	WHERE ba.book_id = ANY($1::uuid[])
	ORDER BY a.name ASC
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var bookID string
		var a Author
		if err := rows.Scan(&bookID, &a.ID, &a.Name, &a.Biography); err != nil {
			return err
		}
		if i, ok := index[bookID]; ok {
			books[i].Authors = append(books[i].Authors, a)
		}
	}
	return rows.Err()
}

func (r *PostgresRepo) SearchByTitle(ctx context.Context, query string) ([]Book, error) {
	const sql = `
	SELECT id, title, description, views, created_at, updated_at
	FROM books
	WHERE title ILIKE $1
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

	out := []Book{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.Views, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Create(ctx context.Context, b *Book) error {
	const query = `
	INSERT INTO books (id, title, description)
	VALUES (gen_random_uuid(), $1, $2)
	RETURNING id, views, created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query, b.Title, b.Description).Scan(&b.ID, &b.Views, &b.CreatedAt, &b.UpdatedAt)
}

func (r *PostgresRepo) ShowAndCountView(ctx context.Context, id string) (Book, error) {
	const query = `
	UPDATE books
	SET views = views + 1, updated_at = now()
	WHERE id = $1
	RETURNING id, title, description, views, created_at, updated_at
	`
	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(&b.ID, &b.Title, &b.Description, &b.Views, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}

	b.Authors = []Author{}
	books := []Book{b}
	if err := r.attachAuthors(ctx, books); err != nil {
		return Book{}, err
	}
	return books[0], nil
}

func (r *PostgresRepo) ReplaceAuthors(ctx context.Context, bookID string, authorIDs []string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return err
	}
	defer tx.Rollback(timeoutCtx)

	var exists bool
	if err := tx.QueryRow(timeoutCtx, `SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)`, bookID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	if _, err := tx.Exec(timeoutCtx, `DELETE FROM book_authors WHERE book_id = $1`, bookID); err != nil {
		return err
	}

	if len(authorIDs) > 0 {
		const insert = `
		INSERT INTO book_authors (book_id, author_id)
		SELECT $1, unnest($2::uuid[])
		`
		if _, err := tx.Exec(timeoutCtx, insert, bookID, authorIDs); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return ErrUnknownAuthor
			}
			return err
		}
	}

	return tx.Commit(timeoutCtx)
}

func (r *PostgresRepo) Update(ctx context.Context, id, title, description string) error {
	const query = `
	UPDATE books
	SET title = $2, description = $3, updated_at = now()
	WHERE id = $1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	result, err := r.db.Exec(timeoutCtx, query, id, title, description)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM books WHERE id = $1`
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
