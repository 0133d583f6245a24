package invoice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/categorize"
)

const maxResponseBytes = 1 << 20

// StatusError is returned when the submission endpoint answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("invoice: unexpected status %d", e.StatusCode)
}

// Transaction is one submitted row. Amounts are sent as JSON numbers.
type Transaction struct {
	Date        string      `json:"date"`
	Description string      `json:"description"`
	Reference   string      `json:"reference"`
	Merchant    string      `json:"merchant"`
	Amount      json.Number `json:"amount"`
}

// Submission is the payload posted to the invoice endpoint.
type Submission struct {
	Category          string        `json:"category"`
	TotalTransactions int           `json:"total_transactions"`
	TotalAmount       json.Number   `json:"total_amount"`
	Transactions      []Transaction `json:"transactions"`
}

// NewSubmission builds the payload for the selected transactions of a category.
func NewSubmission(category categorize.Category, txs []categorize.Transaction) Submission {
	total := decimal.Zero
	rows := make([]Transaction, len(txs))
	for i, tx := range txs {
		total = total.Add(tx.Amount)
		rows[i] = Transaction{
			Date:        tx.Date,
			Description: tx.Description,
			Reference:   tx.Reference,
			Merchant:    tx.Merchant,
			Amount:      json.Number(tx.Amount.String()),
		}
	}
	return Submission{
		Category:          category.String(),
		TotalTransactions: len(txs),
		TotalAmount:       json.Number(total.String()),
		Transactions:      rows,
	}
}

// Receipt is the submission endpoint's answer. Raw is always kept; the other
// fields are filled only when the body could be parsed.
type Receipt struct {
	Raw               string `json:"raw"`
	Parsed            bool   `json:"parsed"`
	SubmissionUID     string `json:"submissionUid,omitempty"`
	DocumentUUID      string `json:"documentUuid,omitempty"`
	InvoiceCodeNumber string `json:"invoiceCodeNumber,omitempty"`
}

type acceptedDocument struct {
	UUID              string `json:"uuid"`
	InvoiceCodeNumber string `json:"invoiceCodeNumber"`
}

type receiptMessage struct {
	SubmissionUID     string             `json:"submissionUid"`
	AcceptedDocuments []acceptedDocument `json:"acceptedDocuments"`
}

// ParseReceipt reads the submission UID and the first accepted document from
// body. The fields may sit under "message" or at the root of the object.
func ParseReceipt(body []byte) Receipt {
	receipt := Receipt{Raw: string(body)}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil || root == nil {
		return receipt
	}

	source := body
	if nested, ok := root["message"]; ok {
		var probe map[string]json.RawMessage
		if json.Unmarshal(nested, &probe) == nil && probe != nil {
			source = nested
		}
	}

	var msg receiptMessage
	if err := json.Unmarshal(source, &msg); err != nil {
		return receipt
	}

	receipt.Parsed = true
	receipt.SubmissionUID = msg.SubmissionUID
	if len(msg.AcceptedDocuments) > 0 {
		receipt.DocumentUUID = msg.AcceptedDocuments[0].UUID
		receipt.InvoiceCodeNumber = msg.AcceptedDocuments[0].InvoiceCodeNumber
	}
	return receipt
}

// Client posts submissions to the invoice endpoint.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a Client. A nil httpClient uses a client with the given timeout.
func NewClient(url string, timeout time.Duration, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{url: url, httpClient: httpClient}
}

func (c *Client) Submit(ctx context.Context, submission Submission) (*Receipt, error) {
	payload, err := json.Marshal(submission)
	if err != nil {
		return nil, fmt.Errorf("invoice: encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("invoice: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("invoice: request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("invoice: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	receipt := ParseReceipt(body)
	return &receipt, nil
}
