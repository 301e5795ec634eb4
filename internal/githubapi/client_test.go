package githubapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Options{BaseURL: server.URL + "/", Token: "test-token", Retry: fastPolicy})
}

func TestClient_GetUser(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/alice", r.URL.Path)
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, apiVersion, r.Header.Get("X-GitHub-Api-Version"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"login":"alice","name":"Alice Pauline","html_url":"https://github.com/alice","public_repos":3}`)
	})

	user, err := client.GetUser(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Login)
	assert.Equal(t, "Alice Pauline", user.Name)
	assert.Equal(t, 3, user.PublicRepos)
}

func TestClient_VerifyUser_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"Not Found"}`)
	})

	err := client.VerifyUser(context.Background(), "ghost-user")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUserNotFound))
	assert.Contains(t, err.Error(), "ghost-user")
}

func TestClient_VerifyUser_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = io.WriteString(w, `{"login":"alice"}`)
	})

	require.NoError(t, client.VerifyUser(context.Background(), "alice"))
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_VerifyUser_Forbidden(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"message":"API rate limit exceeded"}`)
	})

	err := client.VerifyUser(context.Background(), "alice")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUserNotFound))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_NoTokenNoAuthorization(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"login":"bob"}`)
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL})
	require.NoError(t, client.VerifyUser(context.Background(), "bob"))
}

func TestClient_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `not json`)
	})

	_, err := client.GetUser(context.Background(), "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse response")
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Options{})
	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, DefaultRetryPolicy, client.retry)
	assert.NotZero(t, client.httpClient.Timeout)
}
