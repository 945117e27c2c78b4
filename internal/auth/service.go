package auth

import (
	"context"
	"errors"

	"libraryapi/internal/token"
	"libraryapi/internal/user"
)

var (
	// ErrEmailTaken is returned when registering with an email that is
	// already in use.
	ErrEmailTaken = errors.New("email already taken")

	// ErrInvalidCredentials is returned for both unknown email and wrong
	// password, so callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	users  *user.Service
	tokens *token.Service
}

func NewService(users *user.Service, tokens *token.Service) *Service {
	return &Service{users: users, tokens: tokens}
}

// Register creates a new account with an irreversibly hashed password.
// It does not log the user in.
func (s *Service) Register(ctx context.Context, name, email, password string) (user.User, error) {
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return user.User{}, err
	}

	u, err := s.users.Create(ctx, name, email, hashedPassword)
	if err != nil {
		if errors.Is(err, user.ErrAlreadyExists) {
			return user.User{}, ErrEmailTaken
		}
		return user.User{}, err
	}
	return u, nil
}

// Login verifies the credentials and issues a fresh opaque token. Each login
// adds a token, so one user can stay signed in on several devices.
func (s *Service) Login(ctx context.Context, email, password string) (user.User, string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil || !VerifyPassword(u.Password, password) {
		return user.User{}, "", ErrInvalidCredentials
	}

	plaintext, err := s.tokens.Issue(ctx, u.ID, u.Email)
	if err != nil {
		return user.User{}, "", err
	}

	return u, plaintext, nil
}

// CurrentUser returns the account behind an authenticated request.
func (s *Service) CurrentUser(ctx context.Context, userID string) (user.User, error) {
	return s.users.GetByID(ctx, userID)
}

// Logout revokes every token held by the user.
func (s *Service) Logout(ctx context.Context, userID string) error {
	return s.tokens.RevokeAll(ctx, userID)
}
