package token_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryapi/internal/token"
	"libraryapi/internal/token/mocks"
)

func TestService_Issue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockRepository(ctrl)
	service := token.NewService(repo)

	var stored token.Token
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tok *token.Token) error {
			stored = *tok
			return nil
		})

	plaintext, err := service.Issue(context.Background(), "user-1", "test@example.com")
	require.NoError(t, err)

	assert.Len(t, plaintext, 64) // 32 random bytes, hex encoded
	assert.Equal(t, "user-1", stored.UserID)
	assert.Equal(t, "test@example.com", stored.Name)
	// Only the digest is persisted, never the plaintext.
	assert.NotEqual(t, plaintext, stored.Digest)
	assert.Equal(t, token.DigestOf(plaintext), stored.Digest)
}

func TestService_ResolveUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockRepository(ctrl)
	service := token.NewService(repo)

	plaintext := "a-plaintext-token"
	repo.EXPECT().
		GetByDigest(gomock.Any(), token.DigestOf(plaintext)).
		Return(token.Token{ID: "tok-1", UserID: "user-1"}, nil)

	userID, err := service.ResolveUserID(context.Background(), plaintext)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestService_ResolveUserID_Unknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockRepository(ctrl)
	service := token.NewService(repo)

	repo.EXPECT().
		GetByDigest(gomock.Any(), gomock.Any()).
		Return(token.Token{}, token.ErrNotFound)

	_, err := service.ResolveUserID(context.Background(), "tampered")
	assert.ErrorIs(t, err, token.ErrNotFound)
}

func TestService_RevokeAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockRepository(ctrl)
	service := token.NewService(repo)

	repo.EXPECT().
		DeleteByUserID(gomock.Any(), "user-1").
		Return(nil)

	assert.NoError(t, service.RevokeAll(context.Background(), "user-1"))
}
