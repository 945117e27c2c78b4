package author

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Author, error) {
	return s.repo.ListWithBooks(ctx)
}

func (s *Service) Search(ctx context.Context, query string) ([]Author, error) {
	return s.repo.SearchByName(ctx, query)
}

func (s *Service) Create(ctx context.Context, name, biography string) (Author, error) {
	a := &Author{Name: name, Biography: biography}
	if err := s.repo.Create(ctx, a); err != nil {
		return Author{}, err
	}
	return *a, nil
}

// Show returns the author without loading books and without side effects,
// unlike the single-book endpoint. Books serializes as an empty list, never
// null, matching the list endpoint.
func (s *Service) Show(ctx context.Context, id string) (Author, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Author{}, err
	}
	if a.Books == nil {
		a.Books = []Book{}
	}
	return a, nil
}

// Books returns only the author's associated books.
func (s *Service) Books(ctx context.Context, id string) ([]Book, error) {
	return s.repo.BooksOf(ctx, id)
}

func (s *Service) Update(ctx context.Context, id, name, biography string) error {
	return s.repo.Update(ctx, id, name, biography)
}

// Destroy deletes the author. Association rows cascade; books survive.
func (s *Service) Destroy(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
