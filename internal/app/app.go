package app

import (
	"context"
	"net/http"
	"time"

	"quotemint/go_backend/internal/app/config"
	apphttp "quotemint/go_backend/internal/app/http"
	"quotemint/go_backend/internal/app/http/handlers"
	"quotemint/go_backend/internal/domain/org"
	"quotemint/go_backend/internal/domain/quote"
	pdfgen "quotemint/go_backend/internal/domain/quote/pdf/gofpdf"
	"quotemint/go_backend/internal/infra/firestore"
	"quotemint/go_backend/internal/infra/gcs"
	"quotemint/go_backend/internal/infra/logging"
	"quotemint/go_backend/internal/infra/mail"
)

func Run() {
	log := logging.New()
	cfg := config.MustLoad()
	ctx := context.Background()

	fsClient, err := firestore.New(ctx, cfg.GCPProjectID, cfg.GCSCredentialsJSON)
	if err != nil {
		log.WithError(err).Fatal("firestore client")
	}
	defer fsClient.Close()

	storage, err := gcs.New(ctx, gcs.Config{
		Bucket:           cfg.StorageBucket,
		CredentialsJSON:  cfg.GCSCredentialsJSON,
		SignerEmail:      cfg.GCSSignerEmail,
		SignerPrivateKey: cfg.GCSSignerPrivateKey,
	})
	if err != nil {
		log.WithError(err).Fatal("gcs client")
	}
	defer storage.Close()

	quotes := quote.NewService(
		firestore.NewQuoteStore(fsClient),
		storage,
		pdfgen.New(),
		log,
	)
	orgSvc := org.NewService(
		mail.NewTokenSource(cfg.MailClientID, cfg.MailClientSecret, cfg.MailRedirectURI, cfg.MailRefreshToken),
		mail.NewGmail(cfg.MailSender),
		log,
	)

	h := handlers.New(log, quotes, orgSvc)
	router := apphttp.NewRouter(cfg, log, h)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.WithField("addr", cfg.HTTPAddr).Info("listening")
	log.Fatal(srv.ListenAndServe())
}
