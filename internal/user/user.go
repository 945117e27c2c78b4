package user

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a user is not found.
var ErrNotFound = errors.New("user not found")

// ErrAlreadyExists is returned when the email is already registered.
var ErrAlreadyExists = errors.New("user already exists")

// User represents a registered account.
//
// TODO: drop the password hash from the JSON shape once API clients stop
// reading the user payload returned by login.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
