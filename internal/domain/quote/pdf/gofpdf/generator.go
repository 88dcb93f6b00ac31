package gofpdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"quotemint/go_backend/internal/domain/quote"
)

// Column positions in points on an ISO A4 page.
const (
	marginLeft = 50
	colQty     = 300
	colPrice   = 350
	colTotal   = 450
	ruleRight  = 545
)

type Generator struct{}

func New() *Generator { return &Generator{} }

func (g *Generator) Generate(q quote.Quote) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Quote %s", q.ID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 24)
	pdf.Text(marginLeft, 50, "QUOTE")

	y := 100.0
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(marginLeft, y, fmt.Sprintf("Quote #: %s", q.ID))
	y += 20
	pdf.Text(marginLeft, y, fmt.Sprintf("Date: %s", q.CreatedAt.Format("2006-01-02")))
	y += 40

	pdf.SetFont("Helvetica", "", 14)
	pdf.Text(marginLeft, y, "BILL TO:")
	y += 20
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(marginLeft, y, q.ClientName)
	y += 15

	y += 30
	pdf.SetFont("Helvetica", "", 14)
	pdf.Text(marginLeft, y, "ITEMS")
	y += 20

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(marginLeft, y, "Description")
	pdf.Text(colQty, y, "Qty")
	pdf.Text(colPrice, y, "Price")
	pdf.Text(colTotal, y, "Total")
	y += 20

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range q.Items {
		pdf.Text(marginLeft, y, it.Description)
		pdf.Text(colQty, y, fmt.Sprintf("%d", it.Quantity))
		pdf.Text(colPrice, y, money(it.UnitPrice))
		pdf.Text(colTotal, y, money(it.Total()))
		y += 15
	}

	y += 20
	pdf.SetLineWidth(1)
	pdf.Line(marginLeft, y, ruleRight, y)
	y += 20

	pdf.SetFont("Helvetica", "", 14)
	pdf.Text(colPrice, y, "TOTAL:")
	pdf.Text(colTotal, y, money(q.Total()))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
