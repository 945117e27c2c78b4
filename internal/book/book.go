package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// ErrUnknownAuthor is returned when an author assignment references an
// author id that does not exist.
var ErrUnknownAuthor = errors.New("unknown author id")

// Book represents a book entity. Views counts successful reads of the
// single-book endpoint.
type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Views       int64     `json:"views"`
	Authors     []Author  `json:"authors"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Author is the associated-author shape embedded in book payloads.
type Author struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Biography string `json:"biography"`
}
