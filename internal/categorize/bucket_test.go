package categorize

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(description, merchant, amount string) Transaction {
	return Transaction{
		Date:        "21/09/2025",
		Description: description,
		Merchant:    merchant,
		Amount:      decimal.RequireFromString(amount),
	}
}

func sampleTransactions() []Transaction {
	return []Transaction{
		tx("Fund Transfer", "John Tan", "100.00"),
		tx("Payment", "McDonalds Bangsar", "12.50"),
		tx("SETEL", "Setel", "50.00"),
		tx("Payment", "PLUS Toll", "2.30"),
		tx("Card Reload", "TNG Wallet", "20.00"),
		tx("Payment", "Uniqlo", "79.90"),
		tx("DUITNOW_RECEIVEFROM", "Ali", "-30.00"),
		tx("Payment", "Nasi Lemak Wanjo", "8.00"),
	}
}

func TestCategorize_Exhaustive(t *testing.T) {
	txs := sampleTransactions()
	snapshot := Categorize(txs)

	total := 0
	for _, b := range snapshot.Buckets() {
		total += b.Count()
	}
	assert.Equal(t, len(txs), total)
	assert.Equal(t, len(txs), snapshot.TotalCount())
}

func TestCategorize_ConservesAmount(t *testing.T) {
	txs := sampleTransactions()
	snapshot := Categorize(txs)

	want := decimal.Zero
	for _, x := range txs {
		want = want.Add(x.Amount)
	}
	got := decimal.Zero
	for _, b := range snapshot.Buckets() {
		got = got.Add(b.Amount())
	}
	assert.True(t, want.Equal(got), "want %s got %s", want, got)
	assert.True(t, want.Equal(snapshot.TotalAmount()))
}

func TestCategorize_BucketContentsInSourceOrder(t *testing.T) {
	snapshot := Categorize(sampleTransactions())

	transfer, ok := snapshot.Bucket(CategoryTransfer)
	require.True(t, ok)
	require.Equal(t, 2, transfer.Count())
	assert.Equal(t, "John Tan", transfer.Transactions()[0].Merchant)
	assert.Equal(t, "Ali", transfer.Transactions()[1].Merchant)
	assert.True(t, transfer.Amount().Equal(decimal.RequireFromString("70")))

	food, ok := snapshot.Bucket(CategoryFoodDining)
	require.True(t, ok)
	assert.Equal(t, 2, food.Count())

	others, ok := snapshot.Bucket(CategoryOthers)
	require.True(t, ok)
	assert.Equal(t, 1, others.Count())
	assert.Equal(t, "Uniqlo", others.Transactions()[0].Merchant)
}

func TestCategorize_SixBucketsInOrder(t *testing.T) {
	buckets := Categorize(nil).Buckets()

	require.Len(t, buckets, 6)
	for i, c := range Categories() {
		assert.Equal(t, c, buckets[i].Category())
		assert.Equal(t, 0, buckets[i].Count())
		assert.True(t, buckets[i].Amount().IsZero())
	}
}

func TestCategorize_Idempotent(t *testing.T) {
	n := NewNormalizer(fixedClock)
	raws := []RawRecord{
		{TransactionType: Field{Value: "Fund Transfer", Set: true}, Details: Field{Value: "1 Fund Transfer Ali", Set: true}, Amount: Field{Value: "RM10.00", Set: true}},
		{Details: Field{Value: "McDonalds 21/09/2025 12:00", Set: true}, Amount: Field{Value: "RM9.90", Set: true}},
		{Details: Field{Value: "Uniqlo", Set: true}},
	}

	first, err := json.Marshal(Categorize(n.Transactions(raws)))
	require.NoError(t, err)
	second, err := json.Marshal(Categorize(n.Transactions(raws)))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestBucket_TransactionsReturnsCopy(t *testing.T) {
	snapshot := Categorize(sampleTransactions())
	transfer, _ := snapshot.Bucket(CategoryTransfer)

	txs := transfer.Transactions()
	txs[0].Amount = decimal.RequireFromString("999")

	again, _ := snapshot.Bucket(CategoryTransfer)
	assert.True(t, again.Amount().Equal(decimal.RequireFromString("70")))
}

func TestSnapshot_ZeroValueBehavesAsEmpty(t *testing.T) {
	var snapshot Snapshot

	assert.Len(t, snapshot.Buckets(), 6)
	b, ok := snapshot.Bucket(CategoryOthers)
	assert.True(t, ok)
	assert.Equal(t, 0, b.Count())
}

// -- JSON tests --

func TestSnapshot_JSONRoundTripRecomputesDerivedFields(t *testing.T) {
	data, err := json.Marshal(Categorize(sampleTransactions()))
	require.NoError(t, err)

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(data, &decoded))

	transfer, _ := decoded.Bucket(CategoryTransfer)
	assert.Equal(t, 2, transfer.Count())
	assert.True(t, transfer.Amount().Equal(decimal.RequireFromString("70")))
	assert.Equal(t, 8, decoded.TotalCount())
}

func TestSnapshot_UnmarshalIgnoresStoredCountAndAmount(t *testing.T) {
	data := `{"categories":[{"name":"Others","count":99,"amount":"1000","transactions":[{"date":"d","description":"x","reference":"","merchant":"m","amount":"5"}]}]}`

	var decoded Snapshot
	require.NoError(t, json.Unmarshal([]byte(data), &decoded))

	others, _ := decoded.Bucket(CategoryOthers)
	assert.Equal(t, 1, others.Count())
	assert.True(t, others.Amount().Equal(decimal.RequireFromString("5")))
	assert.Len(t, decoded.Buckets(), 6)
}

func TestSnapshot_UnmarshalRejectsUnknownCategory(t *testing.T) {
	var decoded Snapshot
	err := json.Unmarshal([]byte(`{"categories":[{"name":"Groceries","transactions":[]}]}`), &decoded)
	assert.Error(t, err)
}

func TestSnapshot_UnmarshalRejectsDuplicateCategory(t *testing.T) {
	var decoded Snapshot
	err := json.Unmarshal([]byte(`{"categories":[{"name":"Others"},{"name":"Others"}]}`), &decoded)
	assert.Error(t, err)
}

func TestSnapshot_MarshalEmptyBucketsAsArrays(t *testing.T) {
	data, err := json.Marshal(EmptySnapshot())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "null")
}
