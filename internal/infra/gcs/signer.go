package gcs

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/compute/metadata"
	"cloud.google.com/go/storage"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/iamcredentials/v1"
	"google.golang.org/api/option"
)

// Retrieval links are effectively non-expiring; quote records store them
// verbatim. V4 signing caps expiry at seven days, so the V2 scheme is used.
var farFutureExpiry = time.Date(2491, time.March, 9, 0, 0, 0, 0, time.UTC)

type signer struct {
	email      string
	privateKey []byte
}

type serviceAccountJSON struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

func newSigner(cfg Config) (*signer, error) {
	if credJSON := strings.TrimSpace(cfg.CredentialsJSON); credJSON != "" {
		var key serviceAccountJSON
		if err := json.Unmarshal([]byte(credJSON), &key); err != nil {
			return nil, fmt.Errorf("gcs: invalid credentials JSON: %w", err)
		}
		if key.ClientEmail == "" || key.PrivateKey == "" {
			return nil, errors.New("gcs: credentials JSON missing client_email or private_key")
		}
		return &signer{email: key.ClientEmail, privateKey: normalizePrivateKey(key.PrivateKey)}, nil
	}

	email := strings.TrimSpace(cfg.SignerEmail)
	privateKey := strings.TrimSpace(cfg.SignerPrivateKey)
	if email != "" && privateKey != "" {
		return &signer{email: email, privateKey: normalizePrivateKey(privateKey)}, nil
	}

	// No local key material; SignedURL falls back to the IAM API per call.
	return &signer{email: email}, nil
}

func normalizePrivateKey(key string) []byte {
	return []byte(strings.ReplaceAll(key, "\\n", "\n"))
}

// SignedURL issues a capability-bearing read link for the given object key.
func (s *Storage) SignedURL(ctx context.Context, key string) (string, error) {
	opts := &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV2,
		Method:  http.MethodGet,
		Expires: farFutureExpiry,
	}

	if len(s.signer.privateKey) > 0 {
		opts.GoogleAccessID = s.signer.email
		opts.PrivateKey = s.signer.privateKey
	} else {
		email, signBytes, err := iamSigner(ctx, s.signer.email)
		if err != nil {
			return "", err
		}
		opts.GoogleAccessID = email
		opts.SignBytes = signBytes
	}

	return storage.SignedURL(s.bucket, key, opts)
}

// iamSigner signs via the iamcredentials SignBlob API using ADC, for
// deployments where no private key is mounted.
func iamSigner(ctx context.Context, email string) (string, func([]byte) ([]byte, error), error) {
	if email == "" && metadata.OnGCE() {
		defaultEmail, err := metadata.Email("default")
		if err != nil {
			return "", nil, fmt.Errorf("gcs: default service account email: %w", err)
		}
		email = defaultEmail
	}
	if email == "" {
		return "", nil, errors.New("gcs: signer email is required when no private key is provided")
	}

	creds, err := google.FindDefaultCredentials(ctx, iamcredentials.CloudPlatformScope)
	if err != nil {
		return "", nil, fmt.Errorf("gcs: load ADC credentials: %w", err)
	}
	svc, err := iamcredentials.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return "", nil, fmt.Errorf("gcs: iamcredentials service: %w", err)
	}

	resource := fmt.Sprintf("projects/-/serviceAccounts/%s", email)
	signBytes := func(data []byte) ([]byte, error) {
		req := &iamcredentials.SignBlobRequest{
			Payload: base64.StdEncoding.EncodeToString(data),
		}
		resp, err := svc.Projects.ServiceAccounts.SignBlob(resource, req).Do()
		if err != nil {
			return nil, err
		}
		return base64.StdEncoding.DecodeString(resp.SignedBlob)
	}
	return email, signBytes, nil
}
