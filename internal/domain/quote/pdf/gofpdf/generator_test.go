package gofpdf

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotemint/go_backend/internal/domain/quote"
)

func TestGenerateProducesPDF(t *testing.T) {
	q := quote.Quote{
		ID:         "Q1",
		OrgID:      "ORG1",
		ClientName: "Acme",
		CreatedAt:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Items: []quote.LineItem{
			{Description: "Widget", Quantity: 2, UnitPrice: decimal.RequireFromString("9.99")},
		},
	}

	out, err := New().Generate(q)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateEmptyItems(t *testing.T) {
	q := quote.Quote{ID: "Q2", ClientName: "Empty Co", CreatedAt: time.Now()}

	out, err := New().Generate(q)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestMoneyTwoFractionDigits(t *testing.T) {
	assert.Equal(t, "$19.98", money(decimal.RequireFromString("19.98")))
	assert.Equal(t, "$0.00", money(decimal.Zero))
	assert.Equal(t, "$5.00", money(decimal.NewFromInt(5)))
}
