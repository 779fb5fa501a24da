package user

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeOmitsPassword(t *testing.T) {
	joined := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	u := User{ID: "1", Username: "alice", Password: "pw1", DateJoined: joined}

	safe := u.Safe()
	assert.Equal(t, "1", safe.ID)
	assert.Equal(t, "alice", safe.Username)
	assert.True(t, joined.Equal(safe.DateJoined))

	raw, err := json.Marshal(safe)
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.NotContains(t, fields, "password")
	assert.Contains(t, fields, "dateJoined")
	assert.Contains(t, fields, "_id")
}

func TestUpdatesFields(t *testing.T) {
	assert.Empty(t, Updates{}.Fields())

	pw := "newPassword"
	assert.Equal(t, map[string]any{FieldPassword: "newPassword"}, Updates{Password: &pw}.Fields())
}
