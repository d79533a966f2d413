package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/mocks"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

func newTestService(userStore store.UserStore) *Service {
	return NewService(userStore, NewBcryptHasher(), NewBcryptVerifier(), nil)
}

func TestSignup(t *testing.T) {
	t.Parallel()

	t.Run("stores a hashed password", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		svc := newTestService(userStore)

		user, err := svc.Signup(context.Background(), "test@example.com", "secret-password")
		require.NoError(t, err)

		assert.Equal(t, "test@example.com", user.Email)
		assert.NotEmpty(t, user.HashedPassword)
		assert.NotEqual(t, "secret-password", user.HashedPassword)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(mocks.NewMockUserStore())

		_, err := svc.Signup(context.Background(), "", "secret-password")
		assert.ErrorIs(t, err, domain.ErrEmptyEmail)

		_, err = svc.Signup(context.Background(), "test@example.com", "")
		assert.ErrorIs(t, err, domain.ErrEmptyPassword)
	})

	t.Run("duplicate email does not alter the first hash", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		svc := newTestService(userStore)

		first, err := svc.Signup(context.Background(), "dup@example.com", "first-password")
		require.NoError(t, err)

		_, err = svc.Signup(context.Background(), "dup@example.com", "second-password")
		assert.ErrorIs(t, err, store.ErrEmailExists)

		stored, err := userStore.GetByEmail(context.Background(), "dup@example.com")
		require.NoError(t, err)
		assert.Equal(t, first.HashedPassword, stored.HashedPassword)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	svc := newTestService(userStore)

	_, err := svc.Signup(context.Background(), "login@example.com", "correct-password")
	require.NoError(t, err)

	t.Run("succeeds with matching credentials", func(t *testing.T) {
		t.Parallel()

		user, err := svc.Login(context.Background(), "login@example.com", "correct-password")
		require.NoError(t, err)
		assert.Equal(t, "login@example.com", user.Email)
	})

	t.Run("unknown email and wrong password yield the same error", func(t *testing.T) {
		t.Parallel()

		_, unknownErr := svc.Login(context.Background(), "nobody@example.com", "correct-password")
		_, wrongErr := svc.Login(context.Background(), "login@example.com", "wrong-password")

		assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
		assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Login(context.Background(), "", "correct-password")
		assert.ErrorIs(t, err, domain.ErrEmptyEmail)

		_, err = svc.Login(context.Background(), "login@example.com", "")
		assert.ErrorIs(t, err, domain.ErrEmptyPassword)
	})
}
