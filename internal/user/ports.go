package user

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mocks/repo.go -package=mocks

// Repository defines the contract for user data storage.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
}
