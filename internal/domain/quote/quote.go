package quote

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is one document from the quotes collection. ID is the document id,
// OrgID the owning organization.
type Quote struct {
	ID         string
	OrgID      string
	ClientName string
	CreatedAt  time.Time
	Items      []LineItem

	// Output of the last generation run, absent until generated.
	PDFURL         string
	PDFGeneratedAt time.Time
}

type LineItem struct {
	Description string
	Quantity    int64
	UnitPrice   decimal.Decimal
}

func (it LineItem) Total() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity))
}

// Total is the running sum of quantity × unit price over all items.
func (q Quote) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range q.Items {
		total = total.Add(it.Total())
	}
	return total
}
