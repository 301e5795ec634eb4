// Package githubapi checks GitHub accounts through the GitHub REST API.
package githubapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/quocvuong92/tassist/internal/constants"
	"github.com/quocvuong92/tassist/internal/logging"
)

const (
	// DefaultBaseURL is the public GitHub API
	DefaultBaseURL = "https://api.github.com"
	apiVersion     = "2022-11-28"
	userAgent      = "tassist"
)

// ErrUserNotFound is returned when GitHub has no account with the given name
var ErrUserNotFound = errors.New("github user not found")

// APIError is a non-success response from the API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// User is the subset of the GitHub user resource tassist reads
type User struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	HTMLURL     string `json:"html_url"`
	PublicRepos int    `json:"public_repos"`
}

// Options configures a Client
type Options struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	Retry   RetryPolicy
	// Logger enables request/response logging when set
	Logger *logging.Logger
}

// Client is a minimal GitHub REST client
type Client struct {
	baseURL    string
	token      string
	retry      RetryPolicy
	httpClient *http.Client
}

// NewClient creates a Client. Zero options fall back to the defaults.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = constants.DefaultGithubTimeout
	}
	if opts.Retry.MaxAttempts == 0 {
		opts.Retry = DefaultRetryPolicy
	}

	var transport http.RoundTripper = http.DefaultTransport
	if opts.Logger != nil {
		transport = logging.NewLoggingRoundTripper(transport, logging.NewHTTPLogger(opts.Logger), true)
	}

	return &Client{
		baseURL: strings.TrimSuffix(opts.BaseURL, "/"),
		token:   opts.Token,
		retry:   opts.Retry,
		httpClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
	}
}

// VerifyUser returns nil when the account exists, and an error wrapping
// ErrUserNotFound when it does not
func (c *Client) VerifyUser(ctx context.Context, username string) error {
	_, err := c.GetUser(ctx, username)
	return err
}

// GetUser fetches a user by login
func (c *Client) GetUser(ctx context.Context, username string) (*User, error) {
	return WithRetry(ctx, c.retry, func() (*User, error) {
		return c.getUser(ctx, username)
	})
}

func (c *Client) getUser(ctx context.Context, username string) (*User, error) {
	endpoint := c.baseURL + "/users/" + url.PathEscape(username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", username, ErrUserNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("GitHub API error: status %d, body: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &user, nil
}
