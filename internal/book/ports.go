package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mocks/repo.go -package=mocks

// Repository defines the contract for book data storage.
type Repository interface {
	// ListWithAuthors returns every book with its authors loaded.
	ListWithAuthors(ctx context.Context) ([]Book, error)
	// SearchByTitle matches the query as a case-insensitive substring.
	SearchByTitle(ctx context.Context, query string) ([]Book, error)
	Create(ctx context.Context, b *Book) error
	// ShowAndCountView increments the view counter and returns the book
	// with its authors. Every successful call mutates state.
	ShowAndCountView(ctx context.Context, id string) (Book, error)
	// ReplaceAuthors swaps the book's author set for exactly the given
	// ids, atomically. An empty set clears all associations.
	ReplaceAuthors(ctx context.Context, bookID string, authorIDs []string) error
	// Leaderboard returns every book with authors, ordered by views
	// descending.
	Leaderboard(ctx context.Context) ([]Book, error)
	Update(ctx context.Context, id, title, description string) error
	Delete(ctx context.Context, id string) error
}
