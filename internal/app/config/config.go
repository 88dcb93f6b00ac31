package config

import (
	"log"
	"os"
)

type Config struct {
	HTTPAddr      string
	InternalToken string

	GCPProjectID  string
	StorageBucket string
	TemplatePath  string

	// Optional local signing material; empty values fall back to ADC.
	GCSCredentialsJSON  string
	GCSSignerEmail      string
	GCSSignerPrivateKey string

	MailClientID     string
	MailClientSecret string
	MailRefreshToken string
	MailRedirectURI  string
	MailSender       string
}

func MustLoad() Config {
	return Config{
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		InternalToken: mustEnv("INTERNAL_TOKEN"),

		GCPProjectID:  mustEnv("GCP_PROJECT_ID"),
		StorageBucket: env("STORAGE_BUCKET", "default-bucket"),
		TemplatePath:  env("PDF_TEMPLATE_PATH", "templates/default.html"),

		GCSCredentialsJSON:  env("GCS_CREDENTIALS_JSON", ""),
		GCSSignerEmail:      env("GCS_SIGNER_EMAIL", ""),
		GCSSignerPrivateKey: env("GCS_SIGNER_PRIVATE_KEY", ""),

		MailClientID:     mustEnv("MAIL_CLIENT_ID"),
		MailClientSecret: mustEnv("MAIL_CLIENT_SECRET"),
		MailRefreshToken: mustEnv("MAIL_REFRESH_TOKEN"),
		MailRedirectURI:  mustEnv("MAIL_REDIRECT_URI"),
		MailSender:       mustEnv("MAIL_SENDER"),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}
