package token

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mocks/repo.go -package=mocks

// Repository defines the contract for token storage.
type Repository interface {
	Create(ctx context.Context, t *Token) error
	GetByDigest(ctx context.Context, digest string) (Token, error)
	DeleteByUserID(ctx context.Context, userID string) error
}
