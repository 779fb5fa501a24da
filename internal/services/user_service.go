package services

import (
	"context"
	"errors"
	"fmt"

	"chatboard/internal/domain/user"
	"chatboard/internal/repository"
	chatboard_errors "chatboard/pkg/errors"
	"chatboard/pkg/logger"
)

type UserService struct {
	repo      repository.UserRepository
	passwords PasswordScheme
	log       *logger.Logger
}

func NewUserService(repo repository.UserRepository, passwords PasswordScheme, log *logger.Logger) *UserService {
	if passwords == nil {
		passwords = PlainScheme{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &UserService{repo: repo, passwords: passwords, log: log}
}

// CreateUser stores a new user. The username check is a pre-check only;
// the store's unique index is what rejects a concurrent duplicate.
func (s *UserService) CreateUser(ctx context.Context, u user.User) (user.SafeUser, error) {
	existing, err := s.repo.FindOne(ctx, repository.Filter{user.FieldUsername: u.Username})
	if err != nil {
		s.log.WithContext(ctx).Errorf("find user %s: %v", u.Username, err)
		return user.SafeUser{}, chatboard_errors.Persistence("Error when saving a user", err)
	}
	if existing != nil {
		return user.SafeUser{}, chatboard_errors.AlreadyExists(fmt.Sprintf("Username %s already exists", u.Username))
	}

	stored, err := s.passwords.Prepare(u.Password)
	if err != nil {
		return user.SafeUser{}, chatboard_errors.Persistence("Error when saving a user", err)
	}
	u.Password = stored

	created, err := s.repo.Create(ctx, u)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return user.SafeUser{}, chatboard_errors.AlreadyExists(fmt.Sprintf("Username %s already exists", u.Username))
		}
		s.log.WithContext(ctx).Errorf("create user %s: %v", u.Username, err)
		return user.SafeUser{}, chatboard_errors.Persistence("Error when saving a user", err)
	}
	return created.Safe(), nil
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (user.SafeUser, error) {
	found, err := s.repo.FindOne(ctx, repository.Filter{user.FieldUsername: username})
	if err != nil {
		s.log.WithContext(ctx).Errorf("find user %s: %v", username, err)
		return user.SafeUser{}, chatboard_errors.Persistence("Error when retrieving user", err)
	}
	if found == nil {
		return user.SafeUser{}, chatboard_errors.NotFound(fmt.Sprintf("User %s not found", username))
	}
	return found.Safe(), nil
}

// LoginUser verifies credentials. Nothing is issued on success.
func (s *UserService) LoginUser(ctx context.Context, creds user.Credentials) (user.SafeUser, error) {
	found, err := s.repo.FindOne(ctx, repository.Filter{user.FieldUsername: creds.Username})
	if err != nil {
		s.log.WithContext(ctx).Errorf("find user %s: %v", creds.Username, err)
		return user.SafeUser{}, chatboard_errors.Persistence("Error when logging in user", err)
	}
	if found == nil {
		return user.SafeUser{}, chatboard_errors.NotFound(fmt.Sprintf("User %s not found", creds.Username))
	}
	if !s.passwords.Matches(found.Password, creds.Password) {
		return user.SafeUser{}, chatboard_errors.InvalidCredentials("Invalid username or password")
	}
	return found.Safe(), nil
}

func (s *UserService) UpdateUser(ctx context.Context, username string, updates user.Updates) (user.SafeUser, error) {
	if updates.Password != nil {
		stored, err := s.passwords.Prepare(*updates.Password)
		if err != nil {
			return user.SafeUser{}, chatboard_errors.Persistence("Error when updating user", err)
		}
		updates.Password = &stored
	}

	updated, err := s.repo.FindOneAndUpdate(ctx, repository.Filter{user.FieldUsername: username}, updates.Fields())
	if err != nil {
		s.log.WithContext(ctx).Errorf("update user %s: %v", username, err)
		return user.SafeUser{}, chatboard_errors.Persistence("Error when updating user", err)
	}
	if updated == nil {
		return user.SafeUser{}, chatboard_errors.NotFound(fmt.Sprintf("User %s not found", username))
	}
	return updated.Safe(), nil
}

func (s *UserService) DeleteUserByUsername(ctx context.Context, username string) (user.SafeUser, error) {
	removed, err := s.repo.FindOneAndDelete(ctx, repository.Filter{user.FieldUsername: username})
	if err != nil {
		s.log.WithContext(ctx).Errorf("delete user %s: %v", username, err)
		return user.SafeUser{}, chatboard_errors.Persistence("Error when deleting user", err)
	}
	if removed == nil {
		return user.SafeUser{}, chatboard_errors.NotFound(fmt.Sprintf("User %s not found", username))
	}
	return removed.Safe(), nil
}
