package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"quotemint/go_backend/internal/domain/org"
	"quotemint/go_backend/internal/domain/quote"
)

type Handlers struct {
	Log    *logrus.Logger
	Quotes *quote.Service
	Org    *org.Service

	validate *validator.Validate
}

func New(log *logrus.Logger, quotes *quote.Service, orgSvc *org.Service) *Handlers {
	return &Handlers{
		Log:      log,
		Quotes:   quotes,
		Org:      orgSvc,
		validate: validator.New(),
	}
}
