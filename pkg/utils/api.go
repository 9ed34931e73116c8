package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ContinuationHeader carries the server-side pagination token on listing
// endpoints.
const ContinuationHeader = "x-continuation"

// StatusError is returned for non-2xx responses, with the raw body kept for
// the caller to decode the API's error payload.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

type API struct {
	client  *http.Client
	baseURL string
	token   string
}

// NewAPI creates a client rooted at baseURL. The token is sent as a bearer
// credential on every request and never appears in errors.
func NewAPI(baseURL, token string) *API {
	return &API{client: http.DefaultClient, baseURL: baseURL, token: token}
}

// Get fetches a JSON document into v. A non-empty continuation token is
// forwarded on the request header for paginated listings.
func (a *API) Get(ctx context.Context, path string, params url.Values, continuation string, v any) error {
	if params != nil {
		path += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s%s", a.baseURL, path), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	if continuation != "" {
		req.Header.Set(ContinuationHeader, continuation)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{StatusCode: resp.StatusCode, Body: body}
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
