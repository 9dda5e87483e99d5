package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/atelier/handler"
)

type ctxKey struct{}

func TestNewContext(t *testing.T) {
	t.Parallel()

	t.Run("datastar request gets an event stream", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/checkoutpage/validate/cvc", nil)
		req.Header.Set("Accept", "text/event-stream")
		w := httptest.NewRecorder()

		sse := handler.NewContext(w, req).SSE()
		require.NotNil(t, sse)

		require.NoError(t, sse.Redirect("/userdashboardpage"))
		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "/userdashboardpage")
	})

	t.Run("plain form post has no stream", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/checkoutpage", nil)
		assert.Nil(t, handler.NewContext(httptest.NewRecorder(), req).SSE())
	})

	t.Run("delegates to the request context", func(t *testing.T) {
		t.Parallel()
		base, cancel := context.WithCancel(context.WithValue(context.Background(), ctxKey{}, "tok"))
		req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(base)
		w := httptest.NewRecorder()

		ctx := handler.NewContext(w, req)
		assert.Same(t, req, ctx.Request())
		assert.Equal(t, w, ctx.ResponseWriter())
		assert.Equal(t, "tok", ctx.Value(ctxKey{}))

		_, ok := ctx.Deadline()
		assert.False(t, ok)
		require.NoError(t, ctx.Err())

		cancel()
		<-ctx.Done()
		assert.ErrorIs(t, ctx.Err(), context.Canceled)
	})
}
