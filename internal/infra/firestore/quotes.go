package firestore

import (
	"context"
	"fmt"
	"time"

	fs "cloud.google.com/go/firestore"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"quotemint/go_backend/internal/domain/apperr"
	"quotemint/go_backend/internal/domain/quote"
)

const quotesCollection = "quotes"

// QuoteStore is the Firestore-backed quote.Store.
type QuoteStore struct {
	client *Client
}

func NewQuoteStore(c *Client) *QuoteStore {
	return &QuoteStore{client: c}
}

type quoteDoc struct {
	OrgID      string    `firestore:"orgId"`
	ClientName string    `firestore:"clientName"`
	CreatedAt  time.Time `firestore:"createdAt"`
	Items      []itemDoc `firestore:"items"`
}

type itemDoc struct {
	Description string  `firestore:"description"`
	Quantity    int64   `firestore:"quantity"`
	Price       float64 `firestore:"price"`
}

func (s *QuoteStore) Get(ctx context.Context, docID string) (quote.Quote, error) {
	snap, err := s.client.FS.Collection(quotesCollection).Doc(docID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return quote.Quote{}, apperr.NotFound("quote not found")
	}
	if err != nil {
		return quote.Quote{}, fmt.Errorf("get quote %s: %w", docID, err)
	}
	if len(snap.Data()) == 0 {
		// Reference resolved but the document carries no contents.
		return quote.Quote{}, apperr.DataLoss("quote data missing")
	}

	var doc quoteDoc
	if err := snap.DataTo(&doc); err != nil {
		return quote.Quote{}, apperr.DataLoss("quote data missing")
	}

	q := quote.Quote{
		ID:         snap.Ref.ID,
		OrgID:      doc.OrgID,
		ClientName: doc.ClientName,
		CreatedAt:  doc.CreatedAt,
	}
	for _, it := range doc.Items {
		q.Items = append(q.Items, quote.LineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   decimal.NewFromFloat(it.Price),
		})
	}
	return q, nil
}

// SetPDF patches the record with the retrieval URL; the generation timestamp
// is assigned server-side.
func (s *QuoteStore) SetPDF(ctx context.Context, docID, url string) error {
	_, err := s.client.FS.Collection(quotesCollection).Doc(docID).Update(ctx, []fs.Update{
		{Path: "pdfUrl", Value: url},
		{Path: "pdfGeneratedAt", Value: fs.ServerTimestamp},
	})
	if err != nil {
		return fmt.Errorf("update quote %s: %w", docID, err)
	}
	return nil
}
