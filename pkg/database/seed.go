package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chatboard/internal/domain/message"
	"chatboard/internal/domain/user"
	chatboard_errors "chatboard/pkg/errors"
)

// UserCreator is implemented by the user service.
type UserCreator interface {
	CreateUser(ctx context.Context, u user.User) (user.SafeUser, error)
}

// MessageSaver is implemented by the message service.
type MessageSaver interface {
	SaveMessage(ctx context.Context, m message.Message) (message.Message, error)
}

type SeedUser struct {
	Username string
	Password string
}

// SeedConfig holds configuration for seeding the database
type SeedConfig struct {
	Users    []SeedUser
	Messages []string // bodies, sent round-robin by Users
	Start    time.Time
}

// DefaultSeedConfig returns default seed configuration
func DefaultSeedConfig() *SeedConfig {
	return &SeedConfig{
		Users: []SeedUser{
			{Username: "alice", Password: "pw1"},
			{Username: "bob", Password: "pw2"},
			{Username: "carol", Password: "pw3"},
		},
		Messages: []string{
			"Hello everyone!",
			"Hi alice, welcome.",
			"Is the board working for you too?",
			"Yes, messages show up in order.",
		},
	}
}

// SeedResult holds the result of the seeding operation
type SeedResult struct {
	Users        []user.SafeUser
	SkippedUsers []string
	Messages     []message.Message
}

// Seed creates the configured users and messages through the services.
// Users that already exist are skipped, so it is safe to run twice.
// Messages are added on every run.
func Seed(ctx context.Context, users UserCreator, messages MessageSaver, cfg *SeedConfig) (*SeedResult, error) {
	if cfg == nil {
		cfg = DefaultSeedConfig()
	}
	start := cfg.Start
	if start.IsZero() {
		start = time.Now().UTC().Truncate(time.Second)
	}

	result := &SeedResult{}
	for _, su := range cfg.Users {
		created, err := users.CreateUser(ctx, user.User{
			Username:   su.Username,
			Password:   su.Password,
			DateJoined: start,
		})
		if err != nil {
			if errors.Is(err, chatboard_errors.ErrAlreadyExists) {
				result.SkippedUsers = append(result.SkippedUsers, su.Username)
				continue
			}
			return result, fmt.Errorf("seed user %s: %w", su.Username, err)
		}
		result.Users = append(result.Users, created)
	}

	if len(cfg.Users) == 0 {
		return result, nil
	}
	for i, body := range cfg.Messages {
		saved, err := messages.SaveMessage(ctx, message.Message{
			Msg:         body,
			MsgFrom:     cfg.Users[i%len(cfg.Users)].Username,
			MsgDateTime: start.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			return result, fmt.Errorf("seed message %d: %w", i, err)
		}
		result.Messages = append(result.Messages, saved)
	}
	return result, nil
}
