package handler_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/atelier/handler"
)

func mockErrorPage(params handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "Error: "+params.Error)
		return err
	})
}

func mockErrorToast(params handler.ErrorToastParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<div>Toast: "+params.Message+"</div>")
		return err
	})
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewErrorHandler_HTTPRequest(t *testing.T) {
	t.Parallel()

	errorHandler := handler.NewErrorHandler(discardLogger(), handler.ErrorHandlerConfig{
		ErrorPage: mockErrorPage,
	})

	t.Run("generic error", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/checkoutpage", nil)

		errorHandler(handler.NewContext(w, r), errors.New("catalog unavailable"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "An error occurred processing your request")
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	})

	t.Run("http error", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/userdashboardpage/measurements/nope", nil)

		errorHandler(handler.NewContext(w, r), handler.NewHTTPError(http.StatusNotFound, "profile_not_found"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "profile_not_found")
	})

	t.Run("wrapped http error", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		errorHandler(handler.NewContext(w, r), errors.Join(errors.New("lookup"), handler.ErrNotFound))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("validation errors are sorted", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/checkoutpage", nil)

		errorHandler(handler.NewContext(w, r), handler.ValidationError{
			"zip":        {"Invalid ZIP code"},
			"cardNumber": {"Must be 16 digits", "Required"},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "cardNumber: Must be 16 digits; cardNumber: Required; zip: Invalid ZIP code")
	})
}

func TestNewErrorHandler_DataStarRequest(t *testing.T) {
	t.Parallel()

	errorHandler := handler.NewErrorHandler(discardLogger(), handler.ErrorHandlerConfig{
		ErrorToast: mockErrorToast,
	})

	t.Run("validation error becomes toast", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/userdashboardpage/profile", nil)
		r.Header.Set("Accept", "text/event-stream")

		errorHandler(handler.NewContext(w, r), handler.ValidationError{"email": {"Invalid email address"}})

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "email: Invalid email address")
		assert.Contains(t, body, "selector #toast-container")
		assert.Contains(t, body, "mode prepend")
	})

	t.Run("server error becomes toast", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/checkoutpage", nil)
		r.Header.Set("Accept", "text/event-stream")

		errorHandler(handler.NewContext(w, r), handler.ErrInternalServerError)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "internal_server_error")
	})
}

func TestNewErrorHandler_NoComponentsConfigured(t *testing.T) {
	t.Parallel()

	errorHandler := handler.NewErrorHandler(discardLogger(), handler.ErrorHandlerConfig{})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	errorHandler(handler.NewContext(w, r), errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w2 := httptest.NewRecorder()
	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.Header.Set("Accept", "text/event-stream")
	errorHandler(handler.NewContext(w2, r2), errors.New("boom"))
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Empty(t, w2.Body.String())
}

func TestNewErrorHandler_CustomToastConfig(t *testing.T) {
	t.Parallel()

	errorHandler := handler.NewErrorHandler(nil, handler.ErrorHandlerConfig{
		ErrorToast:  mockErrorToast,
		ToastTarget: "#notifications",
		ToastMode:   datastar.ElementPatchModeAppend,
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/customizationstudiopage/bag", nil)
	r.Header.Set("Accept", "text/event-stream")

	errorHandler(handler.NewContext(w, r), errors.New("bag unavailable"))

	body := w.Body.String()
	assert.Contains(t, body, "selector #notifications")
	assert.Contains(t, body, "mode append")
}

func TestNewErrorHandler_StatusCodeClassification(t *testing.T) {
	t.Parallel()

	errorHandler := handler.NewErrorHandler(discardLogger(), handler.ErrorHandlerConfig{
		ErrorPage: mockErrorPage,
	})

	tests := []struct {
		name       string
		err        error
		expectCode int
	}{
		{"bad request", handler.ErrBadRequest, http.StatusBadRequest},
		{"not found", handler.ErrNotFound, http.StatusNotFound},
		{"unprocessable", handler.ErrUnprocessableEntity, http.StatusUnprocessableEntity},
		{"server error", handler.ErrInternalServerError, http.StatusInternalServerError},
		{"unavailable", handler.ErrServiceUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)

			errorHandler(handler.NewContext(w, r), tt.err)

			assert.Equal(t, tt.expectCode, w.Code)
		})
	}
}
