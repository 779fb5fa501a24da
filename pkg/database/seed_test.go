package database_test

import (
	"context"
	"testing"
	"time"

	"chatboard/internal/domain/user"
	"chatboard/internal/repository"
	"chatboard/internal/services"
	"chatboard/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	store := repository.NewMemoryStore()
	users := services.NewUserService(store.Users, services.PlainScheme{}, nil)
	messages := services.NewMessageService(store.Messages, store.Users, nil, nil)
	ctx := context.Background()

	cfg := database.DefaultSeedConfig()
	cfg.Start = time.Date(2024, 6, 4, 10, 0, 0, 0, time.UTC)

	first, err := database.Seed(ctx, users, messages, cfg)
	require.NoError(t, err)
	assert.Len(t, first.Users, 3)
	assert.Empty(t, first.SkippedUsers)
	assert.Len(t, first.Messages, 4)
	assert.Equal(t, "bob", first.Messages[1].MsgFrom)

	second, err := database.Seed(ctx, users, messages, cfg)
	require.NoError(t, err)
	assert.Empty(t, second.Users)
	assert.Equal(t, []string{"alice", "bob", "carol"}, second.SkippedUsers)

	all := messages.GetMessages(ctx)
	require.Len(t, all, 8)
	assert.False(t, all[0].MsgDateTime.After(all[1].MsgDateTime))

	_, err = users.LoginUser(ctx, user.Credentials{Username: "alice", Password: "pw1"})
	assert.NoError(t, err)
}
