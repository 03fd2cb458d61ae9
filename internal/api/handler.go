package api

import (
	"github.com/SherClockHolmes/webpush-go"

	"seatportal-backend/internal/auth"
	"seatportal-backend/internal/store"
)

// Notifier dispatches a semester id whose seats just opened up.
type Notifier interface {
	Dispatch(semesterID int64)
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store    store.Store
	tokens   *auth.TokenService
	notifier Notifier
	webpush  *webpush.Options
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, tokens *auth.TokenService, notifier Notifier, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		store:    s,
		tokens:   tokens,
		notifier: notifier,
		webpush:  webpushOptions,
	}
}
