package token

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Issue mints a new opaque token for the user and returns the plaintext.
// The plaintext is not recoverable afterwards; only its digest is stored.
func (s *Service) Issue(ctx context.Context, userID, name string) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	plaintext := hex.EncodeToString(raw)

	t := &Token{
		UserID: userID,
		Digest: DigestOf(plaintext),
		Name:   name,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return "", err
	}

	return plaintext, nil
}

// ResolveUserID returns the owner of a plaintext token, or ErrNotFound.
// Implements httpx.TokenResolver.
func (s *Service) ResolveUserID(ctx context.Context, plaintext string) (string, error) {
	t, err := s.repo.GetByDigest(ctx, DigestOf(plaintext))
	if err != nil {
		return "", err
	}
	return t.UserID, nil
}

// RevokeAll deletes every token issued to the user.
func (s *Service) RevokeAll(ctx context.Context, userID string) error {
	return s.repo.DeleteByUserID(ctx, userID)
}
