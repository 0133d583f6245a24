package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/carson-networks/expense-server/internal/categorize"
)

// maxResponseBytes bounds how much of an upstream body is read.
const maxResponseBytes = 10 << 20

// StatusError is returned when the source answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("source: unexpected status %d", e.StatusCode)
}

// Config describes where transactions are fetched from.
type Config struct {
	URL      string
	UserID   string
	DataDate string
	Timeout  time.Duration
}

// Client fetches raw transaction records from the remote source.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a Client. A nil httpClient uses a client with cfg.Timeout.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{cfg: cfg, httpClient: httpClient}
}

type envelope struct {
	Data struct {
		Transactions []json.RawMessage `json:"transactions"`
	} `json:"data"`
}

// Fetch retrieves the current batch of raw records. A body that is valid JSON
// but does not have the expected shape yields an empty batch.
func (c *Client) Fetch(ctx context.Context) ([]categorize.RawRecord, error) {
	endpoint, err := c.endpoint()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("source: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("source: request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("source: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return DecodeRecords(body)
}

func (c *Client) endpoint() (string, error) {
	u, err := url.Parse(c.cfg.URL)
	if err != nil {
		return "", fmt.Errorf("source: parse url: %w", err)
	}
	q := u.Query()
	if c.cfg.UserID != "" {
		q.Set("user_id", c.cfg.UserID)
	}
	if c.cfg.DataDate != "" {
		q.Set("data_date", c.cfg.DataDate)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// DecodeRecords extracts data.transactions from the first element of the
// response array. Invalid JSON is an error, and so is a record inside a
// well-formed batch whose fields cannot be read. Any other shape is an empty batch.
func DecodeRecords(body []byte) ([]categorize.RawRecord, error) {
	if !json.Valid(body) {
		return nil, errors.New("source: response body is not valid JSON")
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil || len(items) == 0 {
		return []categorize.RawRecord{}, nil
	}

	var env envelope
	if err := json.Unmarshal(items[0], &env); err != nil || env.Data.Transactions == nil {
		return []categorize.RawRecord{}, nil
	}

	records := make([]categorize.RawRecord, len(env.Data.Transactions))
	for i, raw := range env.Data.Transactions {
		if err := json.Unmarshal(raw, &records[i]); err != nil {
			return nil, fmt.Errorf("source: decode transaction %d: %w", i, err)
		}
	}
	return records, nil
}
