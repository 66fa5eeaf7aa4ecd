// Package delivery - Test MessengerClient với httptest server giả Graph API.
package delivery

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

func TestMessengerClient_SendText(t *testing.T) {
	var gotPath string
	var gotBody sendTextPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"recipient_id":"user-1","message_id":"mid.1"}`))
	}))
	defer server.Close()

	client := NewMessengerClient(server.URL, "v19.0", 5*time.Second)
	err := client.SendText(context.Background(), "token-abc", "user-1", "Chào bạn!")

	require.NoError(t, err)
	assert.Equal(t, "/v19.0/me/messages", gotPath)
	assert.Equal(t, "user-1", gotBody.Recipient.ID)
	assert.Equal(t, "Chào bạn!", gotBody.Message.Text)
}

func TestMessengerClient_SendText_Non2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid OAuth access token"}}`))
	}))
	defer server.Close()

	client := NewMessengerClient(server.URL, "v19.0", 5*time.Second)
	err := client.SendText(context.Background(), "bad-token", "user-1", "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestMessengerClient_SendText_ContextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewMessengerClient(server.URL, "v19.0", 5*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := client.SendText(ctx, "token", "user-1", "hello")
	require.Error(t, err)
}
