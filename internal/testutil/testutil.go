package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"libraryapi/internal/author"
	"libraryapi/internal/book"
	"libraryapi/internal/user"
)

// TestUser is a fixture user for testing.
var TestUser = user.User{
	ID:        "1b4e28ba-2fa1-11d2-883f-0016d3cca427",
	Name:      "Test User",
	Email:     "test@example.com",
	Password:  "hashedpassword",
	CreatedAt: time.Now(),
	UpdatedAt: time.Now(),
}

// TestBook is a fixture book for testing.
var TestBook = book.Book{
	ID:          "6f1b2d3c-0000-4000-8000-000000000001",
	Title:       "Test Book Title",
	Description: "A test book description",
	Views:       3,
	Authors:     []book.Author{},
	CreatedAt:   time.Now(),
	UpdatedAt:   time.Now(),
}

// TestAuthor is a fixture author for testing.
var TestAuthor = author.Author{
	ID:        "6f1b2d3c-0000-4000-8000-000000000002",
	Name:      "Test Author",
	Biography: "A test author biography",
	Books:     []author.Book{},
	CreatedAt: time.Now(),
	UpdatedAt: time.Now(),
}

// NewRequest creates a new HTTP request for testing, JSON-encoding body when
// it is not nil.
func NewRequest(method, path string, body any) *http.Request {
	var r *http.Request
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// NewRequestWithAuth creates a new HTTP request with a bearer token.
func NewRequestWithAuth(method, path string, body any, tok string) *http.Request {
	r := NewRequest(method, path, body)
	if tok != "" {
		r.Header.Set("Authorization", "Bearer "+tok)
	}
	return r
}

// DecodeBody decodes a recorded JSON response body into a map.
func DecodeBody(w *httptest.ResponseRecorder) map[string]any {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]any
	if len(bodyBytes) > 0 {
		_ = json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}
	return bodyMap
}
