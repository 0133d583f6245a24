package transaction

import (
	"github.com/carson-networks/expense-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/expense-server/internal/service"
)

// Transaction is the API response model for a transaction row of a category.
// It is used only for responses, not for request bodies.
type Transaction struct {
	Index       int    `json:"index" doc:"Position of the transaction inside its category, used for selection"`
	Date        string `json:"date" doc:"Transaction date as received, or the load date when missing"`
	Description string `json:"description" doc:"Transaction type or details"`
	Reference   string `json:"reference" doc:"Source reference"`
	Merchant    string `json:"merchant" doc:"Merchant with all but the first word masked"`
	Amount      string `json:"amount" doc:"Decimal amount with two decimals"`
}

// FromPageRow converts a service page row. The merchant is always the masked form.
func FromPageRow(row service.PageRow) Transaction {
	return Transaction{
		Index:       row.Index,
		Date:        row.Date,
		Description: row.Description,
		Reference:   row.Reference,
		Merchant:    row.MaskedMerchant,
		Amount:      apiutil.Money(row.Amount),
	}
}
