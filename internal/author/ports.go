package author

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mocks/repo.go -package=mocks

// Repository defines the contract for author data storage.
type Repository interface {
	// ListWithBooks returns every author with their books loaded.
	ListWithBooks(ctx context.Context) ([]Author, error)
	// SearchByName matches the query as a case-insensitive substring.
	SearchByName(ctx context.Context, query string) ([]Author, error)
	Create(ctx context.Context, a *Author) error
	// GetByID returns the author without loading books.
	GetByID(ctx context.Context, id string) (Author, error)
	// BooksOf returns only the author's books, or ErrNotFound when the
	// author does not exist.
	BooksOf(ctx context.Context, authorID string) ([]Book, error)
	Update(ctx context.Context, id, name, biography string) error
	Delete(ctx context.Context, id string) error
}
