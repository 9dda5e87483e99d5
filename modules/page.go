// Package modules holds what the storefront feature modules share: the page
// chrome every full page renders and the session persistence they need.
package modules

import (
	"context"

	"github.com/dmitrymomot/atelier/handler"
	"github.com/dmitrymomot/atelier/pkg/session"
	"github.com/dmitrymomot/atelier/shopper"
)

// SessionSaver persists session changes. *session.Manager implements it.
type SessionSaver interface {
	Save(ctx context.Context, s *session.Session) error
}

// Meta is the layout data shared by every full page.
type Meta struct {
	Title    string
	Path     string
	BagCount int
	// Toasts are rendered into the toast container on load.
	Toasts []shopper.Toast
}

// WithToast returns a copy of m that also shows t.
func (m Meta) WithToast(t shopper.Toast) Meta {
	toasts := make([]shopper.Toast, 0, len(m.Toasts)+1)
	m.Toasts = append(append(toasts, m.Toasts...), t)
	return m
}

// NewMeta builds the page chrome for the current request. A queued flash toast
// is consumed here, so it shows on exactly one page load.
func NewMeta(ctx handler.Context, sessions SessionSaver, title string) (Meta, error) {
	s, err := shopper.Current(ctx.Request().Context())
	if err != nil {
		return Meta{}, err
	}

	m := Meta{
		Title:    title,
		Path:     ctx.Request().URL.Path,
		BagCount: len(shopper.Bag(s)),
	}

	// Datastar requests patch fragments; the flash waits for a full page.
	if handler.IsDataStar(ctx.Request()) {
		return m, nil
	}

	if flash, ok := shopper.PopFlash(s); ok {
		if err := sessions.Save(ctx, s); err != nil {
			return Meta{}, err
		}
		m.Toasts = append(m.Toasts, flash)
	}
	return m, nil
}
