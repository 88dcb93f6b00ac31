package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"quotemint/go_backend/internal/domain/org"
)

const (
	gmailScope = "https://mail.google.com/"
	smtpHost   = "smtp.gmail.com"
	smtpPort   = 587
)

// TokenSource exchanges the configured refresh credential against Google's
// token endpoint. Every call performs a fresh exchange.
type TokenSource struct {
	cfg          *oauth2.Config
	refreshToken string
}

func NewTokenSource(clientID, clientSecret, redirectURL, refreshToken string) *TokenSource {
	return &TokenSource{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     google.Endpoint,
			Scopes:       []string{gmailScope},
		},
		refreshToken: refreshToken,
	}
}

func (t *TokenSource) AccessToken(ctx context.Context) (string, error) {
	tok, err := t.cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: t.refreshToken}).Token()
	if err != nil {
		return "", fmt.Errorf("exchange refresh token: %w", err)
	}
	return tok.AccessToken, nil
}

// Gmail sends messages over Gmail's SMTP endpoint, authenticating each
// dispatch with XOAUTH2 and the supplied access token.
type Gmail struct {
	sender string
}

func NewGmail(sender string) *Gmail {
	return &Gmail{sender: sender}
}

func (g *Gmail) Send(ctx context.Context, accessToken string, msg org.Message) error {
	client, err := gomail.NewClient(smtpHost,
		gomail.WithPort(smtpPort),
		gomail.WithSMTPAuth(gomail.SMTPAuthXOAUTH2),
		gomail.WithUsername(g.sender),
		gomail.WithPassword(accessToken),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("mail client: %w", err)
	}

	m := gomail.NewMsg()
	if err := m.From(g.sender); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)

	return client.DialAndSendWithContext(ctx, m)
}
