package http

import (
	"context"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotemint/go_backend/internal/app/config"
	"quotemint/go_backend/internal/app/http/handlers"
	"quotemint/go_backend/internal/domain/org"
	"quotemint/go_backend/internal/domain/quote"
)

type routerStore struct{}

func (routerStore) Get(ctx context.Context, docID string) (quote.Quote, error) {
	return quote.Quote{ClientName: "Acme"}, nil
}
func (routerStore) SetPDF(ctx context.Context, docID, url string) error { return nil }

type routerObjects struct{}

func (routerObjects) Upload(ctx context.Context, key string, r io.Reader, contentType, cacheControl string) error {
	return nil
}
func (routerObjects) SignedURL(ctx context.Context, key string) (string, error) {
	return "https://example.com/" + key, nil
}
func (routerObjects) Delete(ctx context.Context, key string) error { return nil }

type routerRenderer struct{}

func (routerRenderer) Generate(q quote.Quote) ([]byte, error) { return []byte("%PDF"), nil }

type routerTokens struct{}

func (routerTokens) AccessToken(ctx context.Context) (string, error) { return "tok", nil }

type routerMailer struct{}

func (routerMailer) Send(ctx context.Context, accessToken string, msg org.Message) error { return nil }

func testRouter(t *testing.T) nethttp.Handler {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	quotes := quote.NewService(routerStore{}, routerObjects{}, routerRenderer{}, log)
	quotes.TmpDir = t.TempDir()
	orgSvc := org.NewService(routerTokens{}, routerMailer{}, log)

	cfg := config.Config{InternalToken: "secret"}
	return NewRouter(cfg, log, handlers.New(log, quotes, orgSvc))
}

func TestHealthIsPublic(t *testing.T) {
	router := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/health", nil))

	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestCallableEndpointsRequireToken(t *testing.T) {
	router := testRouter(t)

	for _, path := range []string{"/v1/quotes/generate-pdf", "/v1/orgs/join-request"} {
		req := httptest.NewRequest(nethttp.MethodPost, path, strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, nethttp.StatusUnauthorized, rec.Code, path)
	}
}

func TestCallableEndpointsWithToken(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(nethttp.MethodPost, "/v1/quotes/generate-pdf",
		strings.NewReader(`{"docId":"Q1","orgId":"ORG1"}`))
	req.Header.Set("X-Internal-Token", "secret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}
