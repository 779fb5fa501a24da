package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"chatboard/internal/domain/user"
	"chatboard/internal/repository"
	chatboard_errors "chatboard/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var (
	joinedAt     = time.Date(2024, 6, 4, 10, 30, 0, 0, time.UTC)
	errStoreDown = errors.New("connection refused")
)

func newUserService(t *testing.T) (*UserService, *faultyCollection[user.User]) {
	t.Helper()
	users := &faultyCollection[user.User]{next: repository.NewMemoryStore().Users}
	return NewUserService(users, PlainScheme{}, nil), users
}

func alice() user.User {
	return user.User{Username: "alice", Password: "pw1", DateJoined: joinedAt}
}

func TestCreateUser(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, alice())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.True(t, joinedAt.Equal(created.DateJoined))

	got, err := svc.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "alice", got.Username)
	assert.True(t, joinedAt.Equal(got.DateJoined))
}

func TestCreateUserAlreadyExists(t *testing.T) {
	svc, users := newUserService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, alice())
	require.NoError(t, err)

	dup := alice()
	dup.Password = "other"
	_, err = svc.CreateUser(ctx, dup)
	require.Error(t, err)
	assert.ErrorIs(t, err, chatboard_errors.ErrAlreadyExists)
	assert.Equal(t, "Username alice already exists", err.Error())

	stored, err := users.FindOne(ctx, repository.Filter{user.FieldUsername: "alice"})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "pw1", stored.Password)
}

func TestCreateUserLostRaceToUniqueIndex(t *testing.T) {
	svc, users := newUserService(t)
	users.CreateFunc = func(ctx context.Context, doc user.User) (user.User, error) {
		return user.User{}, repository.ErrDuplicateKey
	}

	_, err := svc.CreateUser(context.Background(), alice())
	assert.ErrorIs(t, err, chatboard_errors.ErrAlreadyExists)
}

func TestCreateUserPersistenceErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *faultyCollection[user.User])
	}{
		{
			name: "lookup fails",
			setup: func(c *faultyCollection[user.User]) {
				c.FindOneFunc = func(ctx context.Context, filter repository.Filter) (*user.User, error) {
					return nil, errStoreDown
				}
			},
		},
		{
			name: "insert fails",
			setup: func(c *faultyCollection[user.User]) {
				c.CreateFunc = func(ctx context.Context, doc user.User) (user.User, error) {
					return user.User{}, errStoreDown
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users := newUserService(t)
			tt.setup(users)

			_, err := svc.CreateUser(context.Background(), alice())
			require.Error(t, err)
			assert.ErrorIs(t, err, chatboard_errors.ErrPersistence)
			assert.ErrorIs(t, err, errStoreDown)
			assert.Equal(t, "Error when saving a user", err.Error())
		})
	}
}

func TestCreateUserStoresPreparedPassword(t *testing.T) {
	users := repository.NewMemoryStore().Users
	svc := NewUserService(users, BcryptScheme{Cost: bcrypt.MinCost}, nil)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, alice())
	require.NoError(t, err)

	stored, err := users.FindOne(ctx, repository.Filter{user.FieldUsername: "alice"})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "pw1", stored.Password)

	_, err = svc.LoginUser(ctx, user.Credentials{Username: "alice", Password: "pw1"})
	assert.NoError(t, err)
}

func TestGetUserByUsername(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc, _ := newUserService(t)
		_, err := svc.GetUserByUsername(context.Background(), "ghost")
		assert.ErrorIs(t, err, chatboard_errors.ErrNotFound)
		assert.Contains(t, err.Error(), "ghost")
	})

	t.Run("store fault", func(t *testing.T) {
		svc, users := newUserService(t)
		users.FindOneFunc = func(ctx context.Context, filter repository.Filter) (*user.User, error) {
			return nil, errStoreDown
		}
		_, err := svc.GetUserByUsername(context.Background(), "alice")
		assert.ErrorIs(t, err, chatboard_errors.ErrPersistence)
		assert.Equal(t, chatboard_errors.KindPersistence, chatboard_errors.KindOf(err))
	})
}

func TestLoginUser(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, alice())
	require.NoError(t, err)

	tests := []struct {
		name    string
		creds   user.Credentials
		wantErr error
	}{
		{name: "correct password", creds: user.Credentials{Username: "alice", Password: "pw1"}},
		{name: "wrong password", creds: user.Credentials{Username: "alice", Password: "wrong"}, wantErr: chatboard_errors.ErrInvalidCredentials},
		{name: "unknown user", creds: user.Credentials{Username: "bob", Password: "pw1"}, wantErr: chatboard_errors.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.LoginUser(ctx, tt.creds)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, user.SafeUser{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, created, got)
		})
	}
}

func TestLoginUserStoreFault(t *testing.T) {
	svc, users := newUserService(t)
	users.FindOneFunc = func(ctx context.Context, filter repository.Filter) (*user.User, error) {
		return nil, errStoreDown
	}

	_, err := svc.LoginUser(context.Background(), user.Credentials{Username: "alice", Password: "pw1"})
	assert.ErrorIs(t, err, chatboard_errors.ErrPersistence)
}

func TestUpdateUserPassword(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, alice())
	require.NoError(t, err)

	newPassword := "newPassword"
	updated, err := svc.UpdateUser(ctx, "alice", user.Updates{Password: &newPassword})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "alice", updated.Username)
	assert.True(t, joinedAt.Equal(updated.DateJoined))

	_, err = svc.LoginUser(ctx, user.Credentials{Username: "alice", Password: "newPassword"})
	assert.NoError(t, err)
	_, err = svc.LoginUser(ctx, user.Credentials{Username: "alice", Password: "pw1"})
	assert.ErrorIs(t, err, chatboard_errors.ErrInvalidCredentials)
}

func TestUpdateUserEmptyUpdateReturnsCurrent(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, alice())
	require.NoError(t, err)

	got, err := svc.UpdateUser(ctx, "alice", user.Updates{})
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestUpdateUserErrors(t *testing.T) {
	newPassword := "x"

	t.Run("not found", func(t *testing.T) {
		svc, _ := newUserService(t)
		_, err := svc.UpdateUser(context.Background(), "ghost", user.Updates{Password: &newPassword})
		assert.ErrorIs(t, err, chatboard_errors.ErrNotFound)
	})

	t.Run("store fault", func(t *testing.T) {
		svc, users := newUserService(t)
		users.FindOneAndUpdateFunc = func(ctx context.Context, filter, update repository.Filter) (*user.User, error) {
			return nil, errStoreDown
		}
		_, err := svc.UpdateUser(context.Background(), "alice", user.Updates{Password: &newPassword})
		assert.ErrorIs(t, err, chatboard_errors.ErrPersistence)
		assert.ErrorIs(t, err, errStoreDown)
	})
}

func TestDeleteUserByUsername(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, alice())
	require.NoError(t, err)

	removed, err := svc.DeleteUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created, removed)

	_, err = svc.DeleteUserByUsername(ctx, "alice")
	assert.ErrorIs(t, err, chatboard_errors.ErrNotFound)

	_, err = svc.GetUserByUsername(ctx, "alice")
	assert.ErrorIs(t, err, chatboard_errors.ErrNotFound)
}

func TestDeleteUserStoreFault(t *testing.T) {
	svc, users := newUserService(t)
	users.FindOneAndDeleteFunc = func(ctx context.Context, filter repository.Filter) (*user.User, error) {
		return nil, errStoreDown
	}

	_, err := svc.DeleteUserByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, chatboard_errors.ErrPersistence)
}

func TestAliceLoginScenario(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, user.User{Username: "alice", Password: "pw1", DateJoined: joinedAt})
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Username)
	assert.True(t, joinedAt.Equal(created.DateJoined))

	_, err = svc.LoginUser(ctx, user.Credentials{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, chatboard_errors.ErrInvalidCredentials)

	got, err := svc.LoginUser(ctx, user.Credentials{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.True(t, joinedAt.Equal(got.DateJoined))
}
