// Package github fetches contribution calendars from the GitHub GraphQL API.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/klabast/dono/internal/calendar"
)

// DefaultEndpoint is the public GitHub GraphQL endpoint
const DefaultEndpoint = "https://api.github.com/graphql"

const (
	userAgent       = "dono"
	maxErrorBodyLen = 512
)

var (
	// ErrUnauthorized is returned when GitHub rejects the token
	ErrUnauthorized = errors.New("GitHub rejected the token (401), check github_user_token")
	// ErrUserNotFound is returned when the user does not exist
	ErrUserNotFound = errors.New("user not found")
	// ErrNoData is returned when the response carries no data
	ErrNoData = errors.New("unable to retrieve data")
)

// Config configures a Client
type Config struct {
	Token      string
	Endpoint   string
	Timeout    time.Duration
	MaxRetries int
	// RetryDelay is the first backoff delay; it doubles on every retry
	RetryDelay time.Duration
	Logger     *zap.Logger
}

// DefaultConfig returns sensible defaults
func DefaultConfig(token string) Config {
	return Config{
		Token:      token,
		Endpoint:   DefaultEndpoint,
		Timeout:    30 * time.Second,
		MaxRetries: 3,
		RetryDelay: time.Second,
	}
}

// Client talks to the GitHub GraphQL API
type Client struct {
	token      string
	endpoint   string
	maxRetries int
	retryDelay time.Duration
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client with the default config
func NewClient(token string) *Client {
	return NewClientWithConfig(DefaultConfig(token))
}

// NewClientWithConfig creates a client with a custom config
func NewClientWithConfig(config Config) *Client {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	return &Client{
		token:      config.Token,
		endpoint:   endpoint,
		maxRetries: config.MaxRetries,
		retryDelay: config.RetryDelay,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: logger,
	}
}

// FetchCalendar returns the contribution calendar of user in chronological order
func (c *Client) FetchCalendar(ctx context.Context, user string) (calendar.Calendar, error) {
	if c.token == "" {
		return nil, fmt.Errorf("GitHub token not configured")
	}
	if strings.TrimSpace(user) == "" {
		return nil, fmt.Errorf("user name must not be empty")
	}

	resp, err := c.post(ctx, graphQLRequest{
		Query:     contributionsQuery,
		Variables: map[string]interface{}{"userName": user},
	})
	if err != nil {
		return nil, err
	}

	data, err := userFromResponse(resp, user)
	if err != nil {
		return nil, err
	}
	return toCalendar(data)
}

// post sends a GraphQL request, retrying rate limits and server errors
func (c *Client) post(ctx context.Context, body graphQLRequest) (*graphQLResponse, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.retryDelay * time.Duration(1<<uint(attempt-1))
			c.logger.Debug("Retrying GitHub request",
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay),
				zap.Error(lastErr))
			if err := sleep(ctx, delay); err != nil {
				return nil, err
			}
		}

		resp, retry, err := c.do(ctx, jsonData)
		if err == nil {
			return resp, nil
		}
		if !retry {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// do performs one request. retry reports whether the failure is transient.
func (c *Client) do(ctx context.Context, jsonData []byte) (resp *graphQLResponse, retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("Sending GitHub request", zap.String("endpoint", c.endpoint))
	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, true, fmt.Errorf("request failed: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("failed to read response: %w", err)
	}
	c.logger.Debug("GitHub response",
		zap.Int("status", httpResp.StatusCode),
		zap.Int("bytes", len(respBody)))

	switch {
	case httpResp.StatusCode == http.StatusUnauthorized:
		return nil, false, ErrUnauthorized
	case httpResp.StatusCode == http.StatusTooManyRequests:
		return nil, true, fmt.Errorf("rate limit exceeded (429)")
	case httpResp.StatusCode >= http.StatusInternalServerError:
		return nil, true, fmt.Errorf("API request failed with status %d: %s", httpResp.StatusCode, excerpt(respBody))
	case httpResp.StatusCode != http.StatusOK:
		return nil, false, fmt.Errorf("API request failed with status %d: %s", httpResp.StatusCode, excerpt(respBody))
	}

	var gqlResp graphQLResponse
	if err := json.Unmarshal(respBody, &gqlResp); err != nil {
		return nil, false, fmt.Errorf("failed to parse response: %w", err)
	}
	return &gqlResp, false, nil
}

// userFromResponse maps GraphQL level errors onto the package errors
func userFromResponse(resp *graphQLResponse, user string) (*userData, error) {
	if resp.Data != nil && resp.Data.User != nil {
		return resp.Data.User, nil
	}

	for _, e := range resp.Errors {
		if e.Type == "NOT_FOUND" {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, user)
		}
	}
	if len(resp.Errors) > 0 {
		msgs := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			msgs = append(msgs, e.Message)
		}
		return nil, fmt.Errorf("GraphQL error: %s", strings.Join(msgs, "; "))
	}
	if resp.Data == nil {
		return nil, ErrNoData
	}
	return nil, fmt.Errorf("%w: %s", ErrUserNotFound, user)
}

// toCalendar flattens the weeks of the response into one chronological calendar
func toCalendar(data *userData) (calendar.Calendar, error) {
	var cal calendar.Calendar
	for _, w := range data.ContributionsCollection.ContributionCalendar.Weeks {
		for _, d := range w.ContributionDays {
			day, err := calendar.NewDayRecord(d.Date, d.ContributionCount, d.Color, d.ContributionLevel)
			if err != nil {
				return nil, fmt.Errorf("invalid contribution day: %w", err)
			}
			cal = append(cal, day)
		}
	}
	cal.SortByDate()
	return cal, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func excerpt(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBodyLen {
		return s[:maxErrorBodyLen] + "..."
	}
	return s
}
