package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// Storage wraps one bucket of Google Cloud Storage for artifact uploads.
type Storage struct {
	client *storage.Client
	bucket string
	signer *signer
}

type Config struct {
	Bucket string

	// CredentialsJSON is an optional service-account key; when empty the
	// client falls back to ADC and URL signing goes through iamcredentials.
	CredentialsJSON  string
	SignerEmail      string
	SignerPrivateKey string
}

func New(ctx context.Context, cfg Config) (*Storage, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, errors.New("gcs: bucket is required")
	}

	var opts []option.ClientOption
	if strings.TrimSpace(cfg.CredentialsJSON) != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}

	sg, err := newSigner(cfg)
	if err != nil {
		return nil, err
	}

	return &Storage{client: client, bucket: cfg.Bucket, signer: sg}, nil
}

func (s *Storage) Close() error { return s.client.Close() }

// Upload writes r to the given object key, overwriting any previous artifact
// at that key.
func (s *Storage) Upload(ctx context.Context, key string, r io.Reader, contentType, cacheControl string) error {
	wc := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = cacheControl

	if _, err := io.Copy(wc, r); err != nil {
		wc.Close()
		return fmt.Errorf("upload %s: %w", key, err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	return nil
}

// Delete removes an object; a missing object is not an error.
func (s *Storage) Delete(ctx context.Context, key string) error {
	err := s.client.Bucket(s.bucket).Object(key).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil
	}
	return err
}
