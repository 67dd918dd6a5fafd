package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewHTTPClient(Config{URL: srv.URL, APIKey: "test-key", Model: "google/gemini-2.5-flash"}).
		WithHTTPClient(srv.Client())
}

func TestNewHTTPClientDefaults(t *testing.T) {
	c := NewHTTPClient(Config{URL: "http://gateway.test", Model: "google/gemini-2.5-flash"})
	assert.Equal(t, "google/gemini-2.5-flash", c.Model())
	assert.Equal(t, DefaultTimeout, c.client.Timeout)

	hc := &http.Client{}
	assert.Same(t, hc, c.WithHTTPClient(hc).client)
}

func TestCompleteSendsChatRequest(t *testing.T) {
	var got chatRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"choices":[{"message":{"content":"Verse: John 3:16"}}]}`))
	})

	text, err := c.Complete(context.Background(), "be kind", "I feel lost")
	require.NoError(t, err)

	assert.Equal(t, "Verse: John 3:16", text)
	assert.Equal(t, "google/gemini-2.5-flash", got.Model)
	assert.Equal(t, []Message{
		{Role: "system", Content: "be kind"},
		{Role: "user", Content: "I feel lost"},
	}, got.Messages)
}

func TestCompleteStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("slow down\n"))
	})

	_, err := c.Complete(context.Background(), "", "x")

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusTooManyRequests, se.StatusCode)
	assert.Equal(t, "slow down", se.Body)
}

func TestCompleteNoChoices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := c.Complete(context.Background(), "", "x")
	assert.ErrorIs(t, err, ErrNoChoices)
}

func TestCompleteBadJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := c.Complete(context.Background(), "", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestCompleteTransportError(t *testing.T) {
	c := NewHTTPClient(Config{URL: "http://127.0.0.1:0", APIKey: "k"})

	_, err := c.Complete(context.Background(), "", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send request")
}
