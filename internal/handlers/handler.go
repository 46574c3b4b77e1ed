package handlers

import (
	"healthbridge-api/internal/config"
	"healthbridge-api/internal/notify"
	"healthbridge-api/internal/store"
)

// Handler carries the dependencies shared by all workflow handlers.
type Handler struct {
	Store  store.Store
	Mailer notify.EmailSender
	SMS    notify.SMSSender
	Config *config.Config
}

func NewHandler(st store.Store, mailer notify.EmailSender, sms notify.SMSSender, cfg *config.Config) *Handler {
	return &Handler{
		Store:  st,
		Mailer: mailer,
		SMS:    sms,
		Config: cfg,
	}
}
