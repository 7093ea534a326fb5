// Package mirror replicates postponement actions to a remote store.
// The local store stays authoritative: callers log replication failures
// and move on.
package mirror

import (
	"context"
	"fmt"
	"strings"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/hfarooq/murajaah/internal/hifz"
)

const defaultRetryAttempts = 3

// Client posts postponement events to a remote endpoint, keyed by
// (user, cycle type, original date, target date).
type Client struct {
	httpClient    *resty.Client
	userID        string
	retryAttempts uint
}

// NewClient builds a mirror client for a base URL. The token is sent as
// a bearer credential.
func NewClient(baseURL, token, userID string) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")
	// Un-postponement sends the identifying event in a DELETE body.
	client.SetAllowMethodDeletePayload(true)
	if token != "" {
		client.SetHeader("Authorization", "Bearer "+token)
	}

	return &Client{
		httpClient:    client,
		userID:        userID,
		retryAttempts: defaultRetryAttempts,
	}
}

// Close releases the underlying HTTP client.
func (c *Client) Close() error {
	return c.httpClient.Close()
}

type postponementEvent struct {
	UserID            string `json:"user_id"`
	CycleType         string `json:"cycle_type"`
	Title             string `json:"title"`
	Content           string `json:"content"`
	OriginalDate      string `json:"original_date"`
	TargetDate        string `json:"target_date"`
	PostponedFromDate string `json:"postponed_from_date"`
}

func newPostponementEvent(userID string, record hifz.PostponedCycle) postponementEvent {
	return postponementEvent{
		UserID:            userID,
		CycleType:         record.CycleType,
		Title:             record.Title,
		Content:           record.Content,
		OriginalDate:      record.OriginalDate.Key(),
		TargetDate:        record.TargetDate.Key(),
		PostponedFromDate: record.PostponedFromDate.Key(),
	}
}

// ReplicatePostpone records a postponement remotely.
func (c *Client) ReplicatePostpone(ctx context.Context, record hifz.PostponedCycle) error {
	return c.send(ctx, "POST", "/postponements", record)
}

// ReplicateUnpostpone removes a postponement remotely.
func (c *Client) ReplicateUnpostpone(ctx context.Context, record hifz.PostponedCycle) error {
	return c.send(ctx, "DELETE", "/postponements", record)
}

func (c *Client) send(ctx context.Context, method, path string, record hifz.PostponedCycle) error {
	event := newPostponementEvent(c.userID, record)
	if err := retry.Do(
		func() error {
			response, err := c.httpClient.R().
				SetContext(ctx).
				SetBody(event).
				Execute(method, path)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			if response.IsError() {
				err := fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
				if !isRetryableStatus(response.StatusCode()) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.retryAttempts),
		retry.LastErrorOnly(true),
	); err != nil {
		return fmt.Errorf("mirror %s %s > %w", method, path, err)
	}
	return nil
}

// isRetryableError determines if a transport error should trigger a retry.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "i/o timeout") ||
		strings.Contains(errStr, "EOF")
}

func isRetryableStatus(status int) bool {
	return status >= 500 || status == 429
}
