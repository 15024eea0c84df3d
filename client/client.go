// Package client is a Go client for the tenrankai API. Toggle calls are
// idempotent per attempt, so transient server failures are retried.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ksugita/tenrankai/entity"

	"github.com/flowchartsman/retry"
)

// TokenFunc supplies a fresh bearer ID token for each request.
type TokenFunc func(ctx context.Context) (string, error)

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenFunc
}

func New(baseURL string, token TokenFunc) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		token:      token,
	}
}

// ToggleFavorite flips the favorite state of a museum and returns the
// server-confirmed state.
func (c *Client) ToggleFavorite(ctx context.Context, museumID string) (bool, error) {
	return c.toggle(ctx, "/api/favorites", map[string]string{"museumId": museumID}, "favorited")
}

// ToggleBookmark flips the bookmark state of an exhibition and returns the
// server-confirmed state.
func (c *Client) ToggleBookmark(ctx context.Context, exhibitionID string) (bool, error) {
	return c.toggle(ctx, "/api/bookmarks", map[string]string{"exhibitionId": exhibitionID}, "bookmarked")
}

// Favorites returns the caller's favorite museum ids, newest first.
func (c *Client) Favorites(ctx context.Context) ([]string, error) {
	return c.list(ctx, "/api/favorites", "museumIds")
}

// Bookmarks returns the caller's bookmarked exhibition ids, newest first.
func (c *Client) Bookmarks(ctx context.Context) ([]string, error) {
	return c.list(ctx, "/api/bookmarks", "exhibitionIds")
}

func (c *Client) toggle(ctx context.Context, path string, body map[string]string, field string) (bool, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return false, err
	}

	var state bool

	retrier := retry.NewRetrier(3, 100*time.Millisecond, time.Second)
	err = retrier.RunContext(ctx, func(ctx context.Context) error {
		result, err := c.do(ctx, http.MethodPost, path, bytes.NewReader(payload))
		if err != nil {
			apiErr := entity.AsAPIError(err)
			// Client errors will not succeed on retry.
			if apiErr.Status < http.StatusInternalServerError && apiErr.Status != 0 {
				return retry.Stop(err)
			}
			return err
		}

		value, ok := result[field].(bool)
		if !ok {
			return retry.Stop(fmt.Errorf("unexpected response shape: missing %q", field))
		}
		state = value
		return nil
	})

	return state, err
}

func (c *Client) list(ctx context.Context, path, field string) ([]string, error) {
	result, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	raw, ok := result[field].([]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected response shape: missing %q", field)
	}

	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &entity.APIError{Status: resp.StatusCode}
		if err := json.Unmarshal(data, apiErr); err != nil || apiErr.Code == "" {
			apiErr.Code = resp.Status
		}
		return nil, apiErr
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}
