package chatboard_errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceErrorMatchesSentinel(t *testing.T) {
	tests := []struct {
		name     string
		err      *ServiceError
		sentinel error
		kind     string
	}{
		{"already exists", AlreadyExists("Username alice already exists"), ErrAlreadyExists, "ALREADY_EXISTS"},
		{"not found", NotFound("User alice not found"), ErrNotFound, "NOT_FOUND"},
		{"invalid credentials", InvalidCredentials("Invalid password"), ErrInvalidCredentials, "INVALID_CREDENTIALS"},
		{"invalid sender", InvalidSender("Username does not exist"), ErrInvalidSender, "INVALID_SENDER"},
		{"persistence", Persistence("Error when saving a user", errors.New("boom")), ErrPersistence, "PERSISTENCE_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.Equal(t, tt.kind, tt.err.Kind.String())
			assert.Equal(t, tt.err.Kind, KindOf(fmt.Errorf("wrapped: %w", tt.err)))
		})
	}
}

func TestServiceErrorDoesNotMatchOtherKinds(t *testing.T) {
	err := NotFound("User bob not found")
	assert.NotErrorIs(t, err, ErrAlreadyExists)
	assert.NotErrorIs(t, err, ErrPersistence)
}

func TestPersistenceUnwrapsStoreFault(t *testing.T) {
	fault := errors.New("connection refused")
	err := Persistence("Error when saving message", fault)

	assert.ErrorIs(t, err, fault)
	assert.Equal(t, "Error when saving message", err.Error())
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.Equal(t, "INTERNAL_ERROR", Kind(0).String())
}
