package quote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"quotemint/go_backend/internal/domain/apperr"
)

const (
	contentTypePDF  = "application/pdf"
	cacheControlPDF = "public, max-age=31536000"
)

// Store reads and patches quote documents by id.
type Store interface {
	Get(ctx context.Context, docID string) (Quote, error)
	SetPDF(ctx context.Context, docID, url string) error
}

// ObjectStore persists rendered artifacts and issues read links for them.
type ObjectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType, cacheControl string) error
	SignedURL(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

type Renderer interface {
	Generate(q Quote) ([]byte, error)
}

type Service struct {
	Store    Store
	Objects  ObjectStore
	Renderer Renderer
	Log      *logrus.Logger

	// TmpDir overrides the staging directory; empty means os.TempDir.
	TmpDir string
}

func NewService(store Store, objects ObjectStore, renderer Renderer, log *logrus.Logger) *Service {
	return &Service{Store: store, Objects: objects, Renderer: renderer, Log: log}
}

type GenerateResult struct {
	PDFURL  string
	QuoteID string
}

// ObjectKey is the storage path of a quote's rendered artifact, scoped by
// organization. Regeneration overwrites the same key.
func ObjectKey(orgID, docID string) string {
	return fmt.Sprintf("orgs/%s/quotes/%s.pdf", orgID, docID)
}

// GeneratePDF runs the whole pipeline for one quote: fetch, render, stage,
// upload, sign, patch the record. Single pass, at most once; no step retries.
func (s *Service) GeneratePDF(ctx context.Context, docID, orgID string) (GenerateResult, error) {
	q, err := s.Store.Get(ctx, docID)
	if err != nil {
		var ae *apperr.Error
		if errors.As(err, &ae) {
			return GenerateResult{}, err
		}
		return GenerateResult{}, apperr.Internal("failed to generate PDF", err)
	}
	q.ID = docID
	q.OrgID = orgID

	data, err := s.Renderer.Generate(q)
	if err != nil {
		return GenerateResult{}, apperr.Internal("failed to generate PDF", err)
	}

	url, err := s.uploadStaged(ctx, docID, orgID, data)
	if err != nil {
		return GenerateResult{}, err
	}
	return GenerateResult{PDFURL: url, QuoteID: docID}, nil
}

// uploadStaged writes the rendered bytes through a scoped temp file, uploads
// them and patches the record. The temp file is removed on every exit path.
func (s *Service) uploadStaged(ctx context.Context, docID, orgID string, data []byte) (string, error) {
	dir := s.TmpDir
	if dir == "" {
		dir = os.TempDir()
	}
	f, err := os.CreateTemp(dir, fmt.Sprintf("%s-%s-*.pdf", docID, uuid.NewString()))
	if err != nil {
		return "", apperr.Internal("failed to generate PDF", err)
	}
	name := f.Name()
	defer os.Remove(name)

	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", apperr.Internal("failed to generate PDF", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return "", apperr.Internal("failed to generate PDF", err)
	}
	defer f.Close()

	key := ObjectKey(orgID, docID)
	if err := s.Objects.Upload(ctx, key, f, contentTypePDF, cacheControlPDF); err != nil {
		return "", apperr.Internal("failed to generate PDF", err)
	}

	url, err := s.Objects.SignedURL(ctx, key)
	if err != nil {
		return "", apperr.Internal("failed to generate PDF", err)
	}

	if err := s.Store.SetPDF(ctx, docID, url); err != nil {
		// Best effort: don't leave an artifact no record points at.
		if delErr := s.Objects.Delete(ctx, key); delErr != nil {
			s.Log.WithFields(logrus.Fields{"docId": docID, "objectKey": key}).
				WithError(delErr).Warn("compensating delete failed")
		}
		return "", apperr.Internal("failed to generate PDF", err)
	}
	return url, nil
}
