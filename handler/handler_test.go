package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/atelier/handler"
	"github.com/dmitrymomot/atelier/pkg/binder"
)

type mockResponse struct {
	statusCode int
	body       string
	renderErr  error
}

func (m mockResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if m.renderErr != nil {
		return m.renderErr
	}
	w.WriteHeader(m.statusCode)
	_, _ = w.Write([]byte(m.body))
	return nil
}

type profileRequest struct {
	Name  string `form:"name"`
	Email string `form:"email"`
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("basic handler without options", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
			assert.NotNil(t, ctx)
			assert.Empty(t, req)
			return mockResponse{statusCode: http.StatusOK, body: "success"}
		})

		rec := httptest.NewRecorder()
		handler.Wrap(h)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "success", rec.Body.String())
	})

	t.Run("render error goes to default error handler", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
			return mockResponse{renderErr: errors.New("render failed")}
		})

		rec := httptest.NewRecorder()
		handler.Wrap(h)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "render failed")
	})

	t.Run("http error keeps its status", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
			return mockResponse{renderErr: handler.ErrNotFound}
		})

		rec := httptest.NewRecorder()
		handler.Wrap(h)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "not_found")
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
			return nil
		})

		rec := httptest.NewRecorder()
		handler.Wrap(h)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), handler.ErrNilResponse.Error())
	})

	t.Run("form binder", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[handler.Context, profileRequest](func(ctx handler.Context, req profileRequest) handler.Response {
			return mockResponse{statusCode: http.StatusOK, body: req.Name + "|" + req.Email}
		})

		form := url.Values{"name": {"Jane Doe"}, "email": {"jane@example.com"}}
		r := httptest.NewRequest(http.MethodPost, "/userdashboardpage/profile", strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()

		handler.Wrap(h, handler.WithBinders[handler.Context, profileRequest](binder.Form()))(rec, r)

		assert.Equal(t, "Jane Doe|jane@example.com", rec.Body.String())
	})

	t.Run("not applicable binder is skipped", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[handler.Context, profileRequest](func(ctx handler.Context, req profileRequest) handler.Response {
			return mockResponse{statusCode: http.StatusOK, body: "name=" + req.Name}
		})

		r := httptest.NewRequest(http.MethodGet, "/userdashboardpage?name=Jane", nil)
		rec := httptest.NewRecorder()

		handler.Wrap(h, handler.WithBinders[handler.Context, profileRequest](binder.Form(), binder.Query()))(rec, r)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "name=Jane", rec.Body.String())
	})

	t.Run("binder error goes to custom error handler", func(t *testing.T) {
		t.Parallel()
		var handled error
		h := handler.HandlerFunc[handler.Context, profileRequest](func(ctx handler.Context, req profileRequest) handler.Response {
			t.Fatal("handler must not run after bind failure")
			return nil
		})
		failing := func(r *http.Request, v any) error { return handler.ErrUnsupportedMediaType }

		rec := httptest.NewRecorder()
		handler.Wrap(h,
			handler.WithBinder[handler.Context, profileRequest](failing),
			handler.WithErrorHandler[handler.Context, profileRequest](func(ctx handler.Context, err error) {
				handled = err
				ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
			}),
		)(rec, httptest.NewRequest(http.MethodPost, "/", nil))

		assert.ErrorIs(t, handled, handler.ErrUnsupportedMediaType)
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("custom context factory", func(t *testing.T) {
		t.Parallel()
		created := false
		factory := func(w http.ResponseWriter, r *http.Request) handler.Context {
			created = true
			return handler.NewContext(w, r)
		}
		h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
			return mockResponse{statusCode: http.StatusOK}
		})

		rec := httptest.NewRecorder()
		handler.Wrap(h, handler.WithContextFactory[handler.Context, string](factory))(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.True(t, created)
	})
}

func TestWrapWithDecorators(t *testing.T) {
	t.Parallel()

	var order []string
	trace := func(name string) handler.Decorator[handler.Context, string] {
		return func(next handler.HandlerFunc[handler.Context, string]) handler.HandlerFunc[handler.Context, string] {
			return func(ctx handler.Context, req string) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}
	h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
		order = append(order, "handler")
		return mockResponse{statusCode: http.StatusOK}
	})

	rec := httptest.NewRecorder()
	handler.Wrap(h, handler.WithDecorators(trace("outer"), trace("inner")))(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}
