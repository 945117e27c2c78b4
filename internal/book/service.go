package book

import (
	"context"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all books with their authors.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.ListWithAuthors(ctx)
}

// Search returns books whose title contains the query, case-insensitively.
func (s *Service) Search(ctx context.Context, query string) ([]Book, error) {
	return s.repo.SearchByTitle(ctx, query)
}

// Create persists a new book with a zero view counter.
func (s *Service) Create(ctx context.Context, title, description string) (Book, error) {
	b := &Book{Title: title, Description: description}
	if err := s.repo.Create(ctx, b); err != nil {
		return Book{}, err
	}
	return *b, nil
}

// Show returns the book with its authors and counts the read: the view
// counter goes up by one on every successful call.
func (s *Service) Show(ctx context.Context, id string) (Book, error) {
	return s.repo.ShowAndCountView(ctx, id)
}

// AssignAuthors replaces the book's author set with exactly the given ids.
// authorIDs is nil when the request body omitted the field, which is an
// error; an explicitly empty list clears all associations. Repeated ids
// collapse to a single association, keeping first-seen order.
func (s *Service) AssignAuthors(ctx context.Context, bookID string, authorIDs []string) error {
	seen := make(map[string]struct{}, len(authorIDs))
	deduped := make([]string, 0, len(authorIDs))
	for _, id := range authorIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		deduped = append(deduped, id)
	}
	return s.repo.ReplaceAuthors(ctx, bookID, deduped)
}

// Leaderboard returns all books ordered by view count, highest first.
func (s *Service) Leaderboard(ctx context.Context) ([]Book, error) {
	return s.repo.Leaderboard(ctx)
}

// Update overwrites both fields of the book.
func (s *Service) Update(ctx context.Context, id, title, description string) error {
	return s.repo.Update(ctx, id, title, description)
}

// Destroy deletes the book. Association rows cascade; authors survive.
func (s *Service) Destroy(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
