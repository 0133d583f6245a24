package categorize

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// localDateLayout matches the en-US short date the dashboard has always shown.
const localDateLayout = "1/2/2006"

// Field is an optional value of a raw record. It accepts a JSON string or a
// JSON number (kept as its literal text); null and absent both mean "not set".
type Field struct {
	Value string
	Set   bool
}

func (f *Field) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = Field{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Field{Value: s, Set: true}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = Field{Value: n.String(), Set: true}
	return nil
}

func (f Field) MarshalJSON() ([]byte, error) {
	if !f.Set {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// orElse mirrors a falsy check: an unset or empty field yields the fallback.
func (f Field) orElse(fallback string) string {
	if f.Set && f.Value != "" {
		return f.Value
	}
	return fallback
}

// RawRecord is a transaction as received from the remote source.
type RawRecord struct {
	Date            Field `json:"date"`
	TransactionType Field `json:"transaction_type"`
	Details         Field `json:"details"`
	Reference       Field `json:"reference"`
	Amount          Field `json:"amount"`
}

// Transaction is the canonical record used after normalization.
type Transaction struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Reference   string          `json:"reference"`
	Merchant    string          `json:"merchant"`
	Amount      decimal.Decimal `json:"amount"`
}

var (
	currencyPrefixPattern = regexp.MustCompile(`^[\p{L}\p{Sc}\s]*`)
	groupSeparatorPattern = regexp.MustCompile(`,`)
)

// ParseAmount parses an amount such as "RM12.50", "-RM 1,200.00" or "7.5".
// Empty or unparsable input yields zero.
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	s = currencyPrefixPattern.ReplaceAllString(s, "")
	s = groupSeparatorPattern.ReplaceAllString(s, "")
	if s == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if negative {
		return amount.Neg()
	}
	return amount
}

// Normalizer converts raw records into canonical transactions.
type Normalizer struct {
	now func() time.Time
}

// NewNormalizer creates a Normalizer. A nil clock defaults to time.Now and is
// only consulted for records without a date.
func NewNormalizer(now func() time.Time) *Normalizer {
	if now == nil {
		now = time.Now
	}
	return &Normalizer{now: now}
}

// Transaction normalizes a single raw record.
func (n *Normalizer) Transaction(raw RawRecord) Transaction {
	return Transaction{
		Date:        raw.Date.orElse(n.now().Local().Format(localDateLayout)),
		Description: raw.TransactionType.orElse(raw.Details.orElse("")),
		Reference:   raw.Reference.orElse(""),
		Merchant:    NormalizeMerchant(raw.Details.orElse(raw.TransactionType.orElse(""))),
		Amount:      ParseAmount(raw.Amount.Value),
	}
}

// Transactions normalizes a batch, preserving source order.
func (n *Normalizer) Transactions(raws []RawRecord) []Transaction {
	out := make([]Transaction, len(raws))
	for i, raw := range raws {
		out[i] = n.Transaction(raw)
	}
	return out
}
