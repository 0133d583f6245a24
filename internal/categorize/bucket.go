package categorize

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Bucket is a category and the transactions assigned to it, in source order.
// Count and Amount are always derived from the transaction list.
type Bucket struct {
	category     Category
	transactions []Transaction
}

func newBucket(category Category, transactions []Transaction) Bucket {
	return Bucket{category: category, transactions: transactions}
}

func (b Bucket) Category() Category {
	return b.category
}

// Transactions returns a copy of the bucket's transactions.
func (b Bucket) Transactions() []Transaction {
	out := make([]Transaction, len(b.transactions))
	copy(out, b.transactions)
	return out
}

func (b Bucket) Count() int {
	return len(b.transactions)
}

func (b Bucket) Amount() decimal.Decimal {
	sum := decimal.Zero
	for _, t := range b.transactions {
		sum = sum.Add(t.Amount)
	}
	return sum
}

// Snapshot is a complete categorization: one bucket per category, in
// display order. A Snapshot is never modified after it is built.
type Snapshot struct {
	buckets []Bucket
}

// EmptySnapshot returns the six categories with no transactions.
func EmptySnapshot() Snapshot {
	return Categorize(nil)
}

// Categorize assigns every transaction to exactly one bucket.
func Categorize(transactions []Transaction) Snapshot {
	groups := make(map[Category][]Transaction, len(categoryOrder))
	for _, t := range transactions {
		c := Classify(t.Description, t.Merchant)
		groups[c] = append(groups[c], t)
	}
	return snapshotFromGroups(groups)
}

func snapshotFromGroups(groups map[Category][]Transaction) Snapshot {
	buckets := make([]Bucket, len(categoryOrder))
	for i, c := range categoryOrder {
		buckets[i] = newBucket(c, groups[c])
	}
	return Snapshot{buckets: buckets}
}

// Buckets returns the buckets in display order.
func (s Snapshot) Buckets() []Bucket {
	if s.buckets == nil {
		return EmptySnapshot().buckets
	}
	out := make([]Bucket, len(s.buckets))
	copy(out, s.buckets)
	return out
}

// Bucket looks a bucket up by category.
func (s Snapshot) Bucket(c Category) (Bucket, bool) {
	for _, b := range s.Buckets() {
		if b.category == c {
			return b, true
		}
	}
	return Bucket{}, false
}

func (s Snapshot) TotalCount() int {
	total := 0
	for _, b := range s.buckets {
		total += b.Count()
	}
	return total
}

func (s Snapshot) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, b := range s.buckets {
		total = total.Add(b.Amount())
	}
	return total
}

type bucketJSON struct {
	Name         string          `json:"name"`
	Count        int             `json:"count"`
	Amount       decimal.Decimal `json:"amount"`
	Transactions []Transaction   `json:"transactions"`
}

type snapshotJSON struct {
	Categories []bucketJSON `json:"categories"`
}

func (s Snapshot) MarshalJSON() ([]byte, error) {
	buckets := s.Buckets()
	out := snapshotJSON{Categories: make([]bucketJSON, len(buckets))}
	for i, b := range buckets {
		txs := b.Transactions()
		if txs == nil {
			txs = []Transaction{}
		}
		out.Categories[i] = bucketJSON{
			Name:         b.category.String(),
			Count:        b.Count(),
			Amount:       b.Amount(),
			Transactions: txs,
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON rebuilds the buckets from their transaction lists. Stored
// counts and amounts are ignored. Unknown or repeated categories are an error.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var in snapshotJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	groups := make(map[Category][]Transaction, len(categoryOrder))
	seen := make(map[Category]bool, len(categoryOrder))
	for _, b := range in.Categories {
		c, ok := ParseCategory(b.Name)
		if !ok {
			return fmt.Errorf("categorize: unknown category %q", b.Name)
		}
		if seen[c] {
			return fmt.Errorf("categorize: duplicate category %q", b.Name)
		}
		seen[c] = true
		groups[c] = b.Transactions
	}

	*s = snapshotFromGroups(groups)
	return nil
}
