// Package api provides a client for the calendar's remote event service,
// a plain JSON-over-HTTP CRUD API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"iljeong/internal/model"
	"iljeong/internal/storage"
)

// Client talks to the event service. It implements storage.EventProvider.
type Client struct {
	base string
	http *http.Client
}

// NewClient creates a client for the service at the given base URL (e.g.
// "http://localhost:3000").
func NewClient(base string) *Client {
	return &Client{
		base: base,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

type eventList struct {
	Events []model.Event `json:"events"`
}

func (c *Client) List(ctx context.Context) ([]model.Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/api/events", nil)
	if err != nil {
		return nil, err
	}

	var list eventList
	if err := c.do(req, &list); err != nil {
		return nil, err
	}
	if list.Events == nil {
		list.Events = []model.Event{}
	}
	return list.Events, nil
}

func (c *Client) Create(ctx context.Context, e model.Event) (model.Event, error) {
	req, err := c.jsonRequest(ctx, http.MethodPost, c.base+"/api/events", e)
	if err != nil {
		return model.Event{}, err
	}

	var created model.Event
	if err := c.do(req, &created); err != nil {
		return model.Event{}, err
	}
	return created, nil
}

func (c *Client) Update(ctx context.Context, id string, e model.Event) (model.Event, error) {
	req, err := c.jsonRequest(ctx, http.MethodPut, c.base+"/api/events/"+id, e)
	if err != nil {
		return model.Event{}, err
	}

	var updated model.Event
	if err := c.do(req, &updated); err != nil {
		return model.Event{}, err
	}
	return updated, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.base+"/api/events/"+id, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *Client) jsonRequest(ctx context.Context, method, url string, body any) (*http.Request, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// do executes the request and decodes a JSON response body into out (if
// out is non-nil). Any non-2xx status is an error so callers can keep
// their working set untouched on failure.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return storage.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("event service returned %s: %s", resp.Status, bytes.TrimSpace(body))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
