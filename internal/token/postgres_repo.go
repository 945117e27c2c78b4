package token

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

func (r *PostgresRepo) Create(ctx context.Context, t *Token) error {
	const query = `
	INSERT INTO tokens (id, user_id, token_hash, name)
	VALUES (gen_random_uuid(), $1, $2, $3)
	RETURNING id, created_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query, t.UserID, t.Digest, t.Name).Scan(&t.ID, &t.CreatedAt)
}

func (r *PostgresRepo) GetByDigest(ctx context.Context, digest string) (Token, error) {
	const query = `
	SELECT id, user_id, token_hash, name, created_at
	FROM tokens
	WHERE token_hash = $1
	LIMIT 1
	`
	var t Token
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, digest).Scan(&t.ID, &t.UserID, &t.Digest, &t.Name, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Token{}, ErrNotFound
		}
		return Token{}, err
	}
	return t, nil
}

func (r *PostgresRepo) DeleteByUserID(ctx context.Context, userID string) error {
	const query = `DELETE FROM tokens WHERE user_id = $1`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, query, userID)
	return err
}
