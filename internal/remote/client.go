// Package remote implements the typed HTTP client for the Timebot service.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"timebot/internal/errors"
	"timebot/internal/logging"
)

// Client is the HTTP implementation of Service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenProvider
}

// NewClient creates a new remote service client. The token provider may be
// nil for unauthenticated use.
func NewClient(baseURL string, timeout time.Duration, tokens TokenProvider) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
}

// GetTimeEntries retrieves a page of the caller's time entries.
func (c *Client) GetTimeEntries(ctx context.Context, params ListParams) (*PaginatedEntries, error) {
	query := url.Values{}
	if params.StartDate != "" {
		query.Set("startDate", params.StartDate)
	}
	if params.EndDate != "" {
		query.Set("endDate", params.EndDate)
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.PageSize > 0 {
		query.Set("pageSize", strconv.Itoa(params.PageSize))
	}

	path := "/timecards"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	return request[PaginatedEntries](ctx, c, http.MethodGet, path, nil, "list time entries")
}

// CreateTimeEntry creates a new time entry.
func (c *Client) CreateTimeEntry(ctx context.Context, entryRequest EntryRequest) (*TimeEntryPayload, error) {
	return request[TimeEntryPayload](ctx, c, http.MethodPost, "/timecards", entryRequest, "create time entry")
}

// UpdateTimeEntry updates an existing time entry.
func (c *Client) UpdateTimeEntry(ctx context.Context, id int64, entryRequest EntryRequest) (*TimeEntryPayload, error) {
	path := fmt.Sprintf("/timecards/%d", id)
	return request[TimeEntryPayload](ctx, c, http.MethodPut, path, entryRequest, "update time entry")
}

// DeleteTimeEntry deletes a time entry.
func (c *Client) DeleteTimeEntry(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/timecards/%d", id)
	_, err := request[struct{}](ctx, c, http.MethodDelete, path, nil, "delete time entry")
	return err
}

// GetCurrentWeekTimecard retrieves the timecard for the current week.
func (c *Client) GetCurrentWeekTimecard(ctx context.Context) (*TimecardPayload, error) {
	return request[TimecardPayload](ctx, c, http.MethodGet, "/timecards/current-week", nil, "fetch current week timecard")
}

// SubmitTimecard submits a timecard for approval.
func (c *Client) SubmitTimecard(ctx context.Context, id int64) (*TimecardPayload, error) {
	path := fmt.Sprintf("/timecards/%d/submit", id)
	return request[TimecardPayload](ctx, c, http.MethodPost, path, nil, "submit timecard")
}

// EmailTimecard asks the service to email a timecard to its owner.
func (c *Client) EmailTimecard(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/timecards/%d/email", id)
	_, err := request[struct{}](ctx, c, http.MethodPost, path, nil, "email timecard")
	return err
}

// GetEntryStats retrieves aggregate statistics for a date range.
func (c *Client) GetEntryStats(ctx context.Context, startDate, endDate string) (*EntryStats, error) {
	query := url.Values{}
	if startDate != "" {
		query.Set("startDate", startDate)
	}
	if endDate != "" {
		query.Set("endDate", endDate)
	}

	path := "/timecards/stats"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	return request[EntryStats](ctx, c, http.MethodGet, path, nil, "fetch entry stats")
}

// HealthCheck verifies the remote service is reachable.
func (c *Client) HealthCheck(ctx context.Context) (*HealthStatus, error) {
	return request[HealthStatus](ctx, c, http.MethodGet, "/health", nil, "health check")
}

// request performs one round trip and unwraps the response envelope. Network
// failures, non-2xx statuses, and envelopes reporting success=false all come
// back as remote errors. A success envelope with no data yields (nil, nil).
func request[T any](ctx context.Context, c *Client, method, path string, body interface{}, operation string) (*T, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, errors.NewRemoteError(operation, err)
		}
		reader = bytes.NewReader(encoded)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.NewRemoteError(operation, err)
	}
	httpRequest.Header.Set("Content-Type", "application/json")

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, errors.NewRemoteError(operation, err)
		}
		if token != "" {
			httpRequest.Header.Set("Authorization", "Bearer "+token)
		}
	}

	logging.Debugf("remote: %s %s\n", method, path)

	response, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return nil, errors.NewRemoteError(operation, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, errors.NewRemoteError(operation, err)
	}

	var envelope Envelope[T]
	if len(responseBody) > 0 {
		if err := json.Unmarshal(responseBody, &envelope); err != nil {
			return nil, errors.NewRemoteError(operation, fmt.Errorf("malformed response: %w", err))
		}
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		message := envelope.Error
		if message == "" {
			message = fmt.Sprintf("server responded with status %d", response.StatusCode)
		}
		return nil, errors.NewRemoteRejectionError(operation, message).
			WithContext("status", response.StatusCode)
	}

	if !envelope.Success {
		message := envelope.Error
		if message == "" {
			message = envelope.Message
		}
		if message == "" {
			message = "request was not successful"
		}
		return nil, errors.NewRemoteRejectionError(operation, message)
	}

	return envelope.Data, nil
}
