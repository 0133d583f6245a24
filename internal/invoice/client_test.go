package invoice

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expense-server/internal/categorize"
)

func sampleTransactions() []categorize.Transaction {
	return []categorize.Transaction{
		{Date: "21/09/2025", Description: "Payment", Reference: "R1", Merchant: "McDonalds", Amount: decimal.RequireFromString("12.50")},
		{Date: "21/09/2025", Description: "Payment", Reference: "R2", Merchant: "Nasi Lemak", Amount: decimal.RequireFromString("0.10")},
		{Date: "21/09/2025", Description: "Payment", Reference: "R3", Merchant: "KFC", Amount: decimal.RequireFromString("0.20")},
	}
}

// -- NewSubmission tests --

func TestNewSubmission_Totals(t *testing.T) {
	sub := NewSubmission(categorize.CategoryFoodDining, sampleTransactions())

	assert.Equal(t, "Food & Dining", sub.Category)
	assert.Equal(t, 3, sub.TotalTransactions)
	assert.Equal(t, json.Number("12.8"), sub.TotalAmount)
	require.Len(t, sub.Transactions, 3)
	assert.Equal(t, json.Number("12.5"), sub.Transactions[0].Amount)
}

func TestNewSubmission_WireFormat(t *testing.T) {
	data, err := json.Marshal(NewSubmission(categorize.CategoryOthers, sampleTransactions()[:1]))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"category":"Others",
		"total_transactions":1,
		"total_amount":12.5,
		"transactions":[{"date":"21/09/2025","description":"Payment","reference":"R1","merchant":"McDonalds","amount":12.5}]
	}`, string(data))
}

// -- ParseReceipt tests --

func TestParseReceipt_MessageWrapped(t *testing.T) {
	body := `{"message":{"submissionUid":"SUB123","acceptedDocuments":[{"uuid":"DOC1","invoiceCodeNumber":"INV-1"},{"uuid":"DOC2"}]}}`

	r := ParseReceipt([]byte(body))

	assert.True(t, r.Parsed)
	assert.Equal(t, body, r.Raw)
	assert.Equal(t, "SUB123", r.SubmissionUID)
	assert.Equal(t, "DOC1", r.DocumentUUID)
	assert.Equal(t, "INV-1", r.InvoiceCodeNumber)
}

func TestParseReceipt_Bare(t *testing.T) {
	r := ParseReceipt([]byte(`{"submissionUid":"SUB9","acceptedDocuments":[]}`))

	assert.True(t, r.Parsed)
	assert.Equal(t, "SUB9", r.SubmissionUID)
	assert.Empty(t, r.DocumentUUID)
}

func TestParseReceipt_MessageNotObject(t *testing.T) {
	r := ParseReceipt([]byte(`{"message":"accepted","submissionUid":"SUB7"}`))

	assert.True(t, r.Parsed)
	assert.Equal(t, "SUB7", r.SubmissionUID)
}

func TestParseReceipt_NotParseable(t *testing.T) {
	for _, body := range []string{`OK`, `[1,2]`, `"done"`, `null`, `{"submissionUid":5}`} {
		r := ParseReceipt([]byte(body))
		assert.False(t, r.Parsed, body)
		assert.Equal(t, body, r.Raw)
	}
}

// -- Submit tests --

func TestSubmit_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		var sub map[string]any
		assert.NoError(t, json.Unmarshal(body, &sub))
		assert.Equal(t, "Food & Dining", sub["category"])
		assert.EqualValues(t, 3, sub["total_transactions"])

		_, _ = w.Write([]byte(`{"message":{"submissionUid":"SUB1","acceptedDocuments":[{"uuid":"U1","invoiceCodeNumber":"C1"}]}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nil)
	receipt, err := client.Submit(context.Background(), NewSubmission(categorize.CategoryFoodDining, sampleTransactions()))

	require.NoError(t, err)
	assert.True(t, receipt.Parsed)
	assert.Equal(t, "SUB1", receipt.SubmissionUID)
	assert.Equal(t, "U1", receipt.DocumentUUID)
	assert.Equal(t, "C1", receipt.InvoiceCodeNumber)
}

func TestSubmit_PlainTextResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`received`))
	}))
	defer srv.Close()

	receipt, err := NewClient(srv.URL, 5*time.Second, nil).Submit(context.Background(), Submission{})

	require.NoError(t, err)
	assert.False(t, receipt.Parsed)
	assert.Equal(t, "received", receipt.Raw)
}

func TestSubmit_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, 5*time.Second, nil).Submit(context.Background(), Submission{})

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
}

func TestSubmit_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewClient(srv.URL, time.Second, nil).Submit(context.Background(), Submission{})
	assert.Error(t, err)
}
