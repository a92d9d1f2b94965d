// Package api is the JSON-over-HTTP client for the remote expense service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// genericErrMsg is used when a failed response has no parseable detail body.
const genericErrMsg = "request failed"

type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
}

// ExpenseRecord is the server's expense shape, shared by create and list
// responses.
type ExpenseRecord struct {
	ID          int64   `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	CategoryID  int64   `json:"category_id"`
	CreatedAt   string  `json:"created_at"`
}

// CreateExpenseRequest is the body for POST /expenses/.
type CreateExpenseRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	CategoryID  int64   `json:"category_id"`
	UserID      int64   `json:"user_id"`
	CreatedAt   string  `json:"created_at"`
}

// UpdateExpenseRequest is the body for PUT /expenses/{id}.
type UpdateExpenseRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	CategoryID  int64   `json:"category_id"`
	UserID      int64   `json:"user_id"`
}

// Error carries the server's detail message for non-2xx responses.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("%s (status %d)", genericErrMsg, e.StatusCode)
}

func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL %q: %w", baseURL, err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{httpClient: httpClient, baseURL: u}, nil
}

// CreateExpense posts a new expense and returns the server's authoritative
// record.
func (c *Client) CreateExpense(ctx context.Context, req CreateExpenseRequest) (ExpenseRecord, error) {
	var rec ExpenseRecord
	if err := c.do(ctx, http.MethodPost, "/expenses/", req, &rec); err != nil {
		return ExpenseRecord{}, err
	}
	return rec, nil
}

// ListExpenses fetches the full expense list for a user.
func (c *Client) ListExpenses(ctx context.Context, userID int64) ([]ExpenseRecord, error) {
	body := map[string]int64{"user_id": userID}
	var recs []ExpenseRecord
	if err := c.do(ctx, http.MethodPost, "/get_expenses/", body, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// UpdateExpense pushes the full current field values for an expense.
func (c *Client) UpdateExpense(ctx context.Context, id int64, req UpdateExpenseRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/expenses/%d", id), req, nil)
}

// DeleteExpense removes an expense on the server.
func (c *Client) DeleteExpense(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/expenses/%d", id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	u := c.baseURL.JoinPath(path).String()
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}
	return nil
}

// decodeError extracts the server's {detail} message when present; anything
// else yields the generic message with the status attached.
func decodeError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		apiErr.Detail = strings.TrimSpace(payload.Detail)
	}
	return apiErr
}
