package author

import (
	"errors"
	"time"
)

// ErrNotFound is returned when an author is not found.
var ErrNotFound = errors.New("author not found")

// Author represents an author entity.
type Author struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Biography string    `json:"biography"`
	Books     []Book    `json:"books"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Book is the associated-book shape embedded in author payloads.
type Book struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Views       int64  `json:"views"`
}
