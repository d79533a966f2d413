package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		email   string
		hash    string
		wantErr error
	}{
		{
			name:  "valid user",
			email: "test@example.com",
			hash:  "$2a$10$somethinghashed",
		},
		{
			name:    "missing email",
			hash:    "$2a$10$somethinghashed",
			wantErr: ErrEmptyEmail,
		},
		{
			name:    "malformed email",
			email:   "not-an-email",
			hash:    "$2a$10$somethinghashed",
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "email without domain dot",
			email:   "user@localhost",
			hash:    "$2a$10$somethinghashed",
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "missing hash",
			email:   "test@example.com",
			wantErr: ErrEmptyHashedPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewUser(tt.email, tt.hash)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.email, user.Email)
			assert.False(t, user.CreatedAt.IsZero())
		})
	}
}
