package modules_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/atelier/catalog"
	"github.com/dmitrymomot/atelier/handler"
	"github.com/dmitrymomot/atelier/modules"
	"github.com/dmitrymomot/atelier/pkg/session"
	"github.com/dmitrymomot/atelier/shopper"
)

type saverFunc func(ctx context.Context, s *session.Session) error

func (f saverFunc) Save(ctx context.Context, s *session.Session) error { return f(ctx, s) }

func newContext(t *testing.T, s *session.Session, datastar bool) handler.Context {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/checkoutpage", nil)
	if datastar {
		r.Header.Set("Accept", "text/event-stream")
	}
	if s != nil {
		r = r.WithContext(session.WithSession(r.Context(), s))
	}
	return handler.NewContext(httptest.NewRecorder(), r)
}

func TestNewMeta(t *testing.T) {
	t.Parallel()

	flash := shopper.Toast{Variant: shopper.VariantDefault, Title: "Order Placed!"}

	t.Run("pops the flash once on a full page", func(t *testing.T) {
		t.Parallel()
		s := session.NewSession("tok", time.Hour)
		shopper.SetFlash(s, flash)
		shopper.AddToBag(s, catalog.LineItem{Name: "Shirt", Quantity: 1})

		saves := 0
		saver := saverFunc(func(context.Context, *session.Session) error { saves++; return nil })

		m, err := modules.NewMeta(newContext(t, s, false), saver, "Checkout")
		require.NoError(t, err)
		assert.Equal(t, "Checkout", m.Title)
		assert.Equal(t, "/checkoutpage", m.Path)
		assert.Equal(t, 1, m.BagCount)
		assert.Equal(t, []shopper.Toast{flash}, m.Toasts)
		assert.Equal(t, 1, saves)

		m, err = modules.NewMeta(newContext(t, s, false), saver, "Checkout")
		require.NoError(t, err)
		assert.Empty(t, m.Toasts)
		assert.Equal(t, 1, saves)
	})

	t.Run("datastar requests leave the flash queued", func(t *testing.T) {
		t.Parallel()
		s := session.NewSession("tok", time.Hour)
		shopper.SetFlash(s, flash)

		m, err := modules.NewMeta(newContext(t, s, true), saverFunc(func(context.Context, *session.Session) error {
			t.Fatal("unexpected save")
			return nil
		}), "Dashboard")
		require.NoError(t, err)
		assert.Empty(t, m.Toasts)

		_, ok := shopper.PopFlash(s)
		assert.True(t, ok)
	})

	t.Run("save failure is returned", func(t *testing.T) {
		t.Parallel()
		s := session.NewSession("tok", time.Hour)
		shopper.SetFlash(s, flash)
		boom := errors.New("boom")

		_, err := modules.NewMeta(newContext(t, s, false), saverFunc(func(context.Context, *session.Session) error {
			return boom
		}), "Dashboard")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("missing session", func(t *testing.T) {
		t.Parallel()
		_, err := modules.NewMeta(newContext(t, nil, false), saverFunc(func(context.Context, *session.Session) error {
			return nil
		}), "Home")
		assert.ErrorIs(t, err, session.ErrNoSessionInContext)
	})
}

func TestMetaWithToast(t *testing.T) {
	t.Parallel()

	base := modules.Meta{Toasts: []shopper.Toast{{Title: "a"}}}
	next := base.WithToast(shopper.Toast{Title: "b"})

	assert.Len(t, base.Toasts, 1)
	require.Len(t, next.Toasts, 2)
	assert.Equal(t, "b", next.Toasts[1].Title)
}
