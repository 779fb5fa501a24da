package services

import (
	"testing"

	"chatboard/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPlainScheme(t *testing.T) {
	s := PlainScheme{}
	stored, err := s.Prepare("pw1")
	require.NoError(t, err)
	assert.Equal(t, "pw1", stored)
	assert.True(t, s.Matches(stored, "pw1"))
	assert.False(t, s.Matches(stored, "pw"))
	assert.False(t, s.Matches(stored, "pw1 "))
}

func TestBcryptScheme(t *testing.T) {
	s := BcryptScheme{Cost: bcrypt.MinCost}
	stored, err := s.Prepare("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", stored)
	assert.True(t, s.Matches(stored, "pw1"))
	assert.False(t, s.Matches(stored, "wrong"))
	assert.False(t, s.Matches("pw1", "pw1"))
}

func TestNewPasswordScheme(t *testing.T) {
	tests := []struct {
		name    string
		scheme  string
		want    PasswordScheme
		wantErr bool
	}{
		{name: "default", scheme: "", want: PlainScheme{}},
		{name: "plain", scheme: config.PasswordPlain, want: PlainScheme{}},
		{name: "bcrypt", scheme: config.PasswordBcrypt, want: BcryptScheme{Cost: 12}},
		{name: "unknown", scheme: "md5", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPasswordScheme(&config.Config{PasswordScheme: tt.scheme, BcryptCost: 12})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
