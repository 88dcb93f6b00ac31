package org

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"quotemint/go_backend/internal/domain/apperr"
)

// TokenSource exchanges the stored refresh credential for a short-lived
// access token. One exchange per invocation, nothing is cached.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Mailer dispatches one composed message over a transport authenticated with
// the given access token.
type Mailer interface {
	Send(ctx context.Context, accessToken string, msg Message) error
}

type Service struct {
	Tokens TokenSource
	Mailer Mailer
	Log    *logrus.Logger
}

func NewService(tokens TokenSource, mailer Mailer, log *logrus.Logger) *Service {
	return &Service{Tokens: tokens, Mailer: mailer, Log: log}
}

// SendJoinRequest notifies the organization admin about one join request.
// Single attempt; transport acceptance is the only delivery confirmation.
func (s *Service) SendJoinRequest(ctx context.Context, req JoinRequest) error {
	token, err := s.Tokens.AccessToken(ctx)
	if err != nil {
		return apperr.Internal("failed to send join request", err)
	}
	if token == "" {
		return apperr.Internal("failed to send join request",
			errors.New("token endpoint returned no access token"))
	}

	if err := s.Mailer.Send(ctx, token, req.Message()); err != nil {
		return apperr.Internal("failed to send join request", err)
	}

	s.Log.WithFields(logrus.Fields{"org": req.OrgName, "admin": req.AdminEmail}).
		Info("join request notification sent")
	return nil
}
