package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/klabast/dono/internal/calendar"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// calendarResponse builds a response with consecutive days starting at start,
// split into weeks of seven.
func calendarResponse(t *testing.T, start string, counts []int) string {
	t.Helper()

	first, err := calendar.ParseDate(start)
	require.NoError(t, err)

	var weeks []week
	for i, count := range counts {
		if i%7 == 0 {
			weeks = append(weeks, week{})
		}
		level := "NONE"
		color := "#ebedf0"
		if count > 0 {
			level = "FIRST_QUARTILE"
			color = "#9be9a8"
		}
		w := &weeks[len(weeks)-1]
		w.ContributionDays = append(w.ContributionDays, contributionDay{
			Date:              calendar.FormatDate(first.AddDate(0, 0, i)),
			ContributionCount: count,
			ContributionLevel: level,
			Color:             color,
		})
	}

	body := map[string]interface{}{
		"data": map[string]interface{}{
			"user": map[string]interface{}{
				"contributionsCollection": map[string]interface{}{
					"contributionCalendar": map[string]interface{}{
						"totalContributions": 0,
						"weeks":              weeks,
					},
				},
			},
		},
	}
	data, err := json.Marshal(body)
	require.NoError(t, err)
	return string(data)
}

func testClient(url string) *Client {
	config := DefaultConfig("test-token")
	config.Endpoint = url
	config.RetryDelay = time.Millisecond
	config.Timeout = 5 * time.Second
	return NewClientWithConfig(config)
}

func TestFetchCalendar_Success(t *testing.T) {
	payload := calendarResponse(t, "2025-01-05", []int{0, 3, 1, 0, 0, 0, 2, 5, 1})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "dono", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req graphQLRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "octocat", req.Variables["userName"])
		assert.Contains(t, req.Query, "contributionCalendar")

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, payload)
	}))
	defer server.Close()

	cal, err := testClient(server.URL).FetchCalendar(context.Background(), "octocat")
	require.NoError(t, err)

	require.Len(t, cal, 9)
	assert.NoError(t, cal.Validate())
	assert.Equal(t, 12, cal.Total())
	assert.Equal(t, "2025-01-05", calendar.FormatDate(cal[0].Date))
	assert.Equal(t, calendar.LevelFirstQuartile, cal[1].Level)
	assert.Equal(t, "#9be9a8", cal[1].SourceColor)
}

func TestFetchCalendar_EmptyWeeks(t *testing.T) {
	payload := calendarResponse(t, "2025-01-05", nil)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, payload)
	}))
	defer server.Close()

	cal, err := testClient(server.URL).FetchCalendar(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Empty(t, cal)
}

func TestFetchCalendar_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantErr  error
		contains string
	}{
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			body:    `{"message":"Bad credentials"}`,
			wantErr: ErrUnauthorized,
		},
		{
			name:    "user not found",
			status:  http.StatusOK,
			body:    `{"data":{"user":null},"errors":[{"type":"NOT_FOUND","message":"Could not resolve to a User with the login of 'nobody'."}]}`,
			wantErr: ErrUserNotFound,
		},
		{
			name:    "null user without errors",
			status:  http.StatusOK,
			body:    `{"data":{"user":null}}`,
			wantErr: ErrUserNotFound,
		},
		{
			name:    "no data",
			status:  http.StatusOK,
			body:    `{}`,
			wantErr: ErrNoData,
		},
		{
			name:     "graphql errors",
			status:   http.StatusOK,
			body:     `{"errors":[{"message":"Something went wrong"},{"message":"again"}]}`,
			contains: "Something went wrong; again",
		},
		{
			name:     "bad request",
			status:   http.StatusBadRequest,
			body:     `{"message":"Problems parsing JSON"}`,
			contains: "status 400",
		},
		{
			name:     "malformed json",
			status:   http.StatusOK,
			body:     `{"data":`,
			contains: "failed to parse response",
		},
		{
			name:     "invalid date",
			status:   http.StatusOK,
			body:     `{"data":{"user":{"contributionsCollection":{"contributionCalendar":{"weeks":[{"contributionDays":[{"date":"yesterday","contributionCount":1}]}]}}}}}`,
			contains: "invalid contribution day",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var attempts atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				attempts.Add(1)
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			_, err := testClient(server.URL).FetchCalendar(context.Background(), "nobody")
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
			assert.Equal(t, int32(1), attempts.Load(), "permanent errors are not retried")
		})
	}
}

func TestFetchCalendar_RetryAndBackoff(t *testing.T) {
	var attempts atomic.Int32
	payload := calendarResponse(t, "2025-01-05", []int{1, 2})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := attempts.Add(1)
		switch n {
		case 1:
			w.WriteHeader(http.StatusTooManyRequests)
		case 2:
			w.WriteHeader(http.StatusBadGateway)
		default:
			fmt.Fprint(w, payload)
		}
	}))
	defer server.Close()

	cal, err := testClient(server.URL).FetchCalendar(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Len(t, cal, 2)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestFetchCalendar_MaxRetries(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.FetchCalendar(context.Background(), "octocat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max retries exceeded")
	assert.Equal(t, int32(client.maxRetries+1), attempts.Load())
}

func TestFetchCalendar_ContextCancelledDuringBackoff(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := testClient(server.URL)
	client.retryDelay = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.FetchCalendar(ctx, "octocat")
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
}

func TestFetchCalendar_RequiresTokenAndUser(t *testing.T) {
	_, err := NewClient("").FetchCalendar(context.Background(), "octocat")
	assert.Error(t, err)

	_, err = NewClient("token").FetchCalendar(context.Background(), "  ")
	assert.Error(t, err)
}

func TestExcerpt(t *testing.T) {
	long := strings.Repeat("x", maxErrorBodyLen+10)
	assert.Len(t, excerpt([]byte(long)), maxErrorBodyLen+3)
	assert.Equal(t, "short", excerpt([]byte("  short \n")))
}
