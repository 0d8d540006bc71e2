// Package matching consumes the external staff-matching service. The ranking
// itself is a black box; this client only fetches ranked suggestions with a
// bounded timeout.
package matching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kirinyoku/crew-go/internal/domain"
)

// ErrUnavailable marks the matching service as unreachable. Auto-assignment
// treats it as "zero suggestions" per role rather than failing the run.
var ErrUnavailable = errors.New("matching service unavailable")

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type suggestionsResponse struct {
	Suggestions []domain.Suggestion `json:"suggestions"`
}

// Suggestions returns up to limit ranked candidates for one role on one
// event, best match first.
//
// Returns:
//   - []domain.Suggestion: ranked candidates, possibly empty.
//   - error: matching.ErrUnavailable when the service cannot be reached or
//     answers with a server error.
func (c *Client) Suggestions(
	ctx context.Context,
	eventID int64,
	roleName string,
	limit int,
) ([]domain.Suggestion, error) {
	const op = "matching.Client.Suggestions"

	u, err := url.Parse(c.baseURL + "/suggestions")
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	q := u.Query()
	q.Set("event_id", strconv.FormatInt(eventID, 10))
	q.Set("role", roleName)
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%s: status %d: %w", op, resp.StatusCode, ErrUnavailable)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	var body suggestionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return body.Suggestions, nil
}
