package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "grok-beta", req["model"])
		messages := req["messages"].([]any)
		require.Len(t, messages, 2)
		assert.Equal(t, "system", messages[0].(map[string]any)["role"])
		assert.Equal(t, "user", messages[1].(map[string]any)["role"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"All good today."}}]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "", 2*time.Second)
	got, err := c.Chat(context.Background(), "system prompt", "how are things?")
	require.NoError(t, err)
	assert.Equal(t, "All good today.", got)
}

func TestClientChatMissingKey(t *testing.T) {
	c := NewClient("", "", "", 0)
	assert.False(t, c.Configured())

	_, err := c.Chat(context.Background(), "sys", "msg")
	assert.Error(t, err)
}

func TestClientChatErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "", 2*time.Second)
	_, err := c.Chat(context.Background(), "sys", "msg")
	assert.Error(t, err)
}

func TestClientChatNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "", 2*time.Second)
	_, err := c.Chat(context.Background(), "sys", "msg")
	assert.Error(t, err)
}
