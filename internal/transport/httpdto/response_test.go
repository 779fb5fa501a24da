package httpdto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorResponseJSON(t *testing.T) {
	data, err := json.Marshal(NewErrorResponse("Invalid user body", "INVALID_REQUEST"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"Invalid user body","code":"INVALID_REQUEST"}`, string(data))
}

func TestNewSuccessResponseJSON(t *testing.T) {
	data, err := json.Marshal(NewSuccessResponse(map[string]string{"status": "healthy"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":{"status":"healthy"}}`, string(data))
}

func TestCredentialsRequestConversions(t *testing.T) {
	req := CredentialsRequest{Username: "alice", Password: "pw1"}
	joined := time.Date(2024, 6, 4, 10, 30, 0, 0, time.UTC)

	u := req.ToUser(joined)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "pw1", u.Password)
	assert.True(t, joined.Equal(u.DateJoined))

	updates := req.ToUpdates()
	require.NotNil(t, updates.Password)
	assert.Equal(t, "pw1", *updates.Password)

	assert.Equal(t, "alice", req.ToCredentials().Username)
}

func TestAddMessageRequestDecode(t *testing.T) {
	var req AddMessageRequest
	body := `{"messageToAdd":{"msg":"hi","msgFrom":"alice","msgDateTime":"2024-06-04T12:30:00+02:00"}}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	m := req.ToMessage()
	assert.Equal(t, "hi", m.Msg)
	assert.Equal(t, "alice", m.MsgFrom)
	assert.Equal(t, time.UTC, m.MsgDateTime.Location())
	assert.True(t, time.Date(2024, 6, 4, 10, 30, 0, 0, time.UTC).Equal(m.MsgDateTime))
}
