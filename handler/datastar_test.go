package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/atelier/handler"
)

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		accept string
		query  string
		want   bool
	}{
		{name: "action post", accept: "text/event-stream", want: true},
		{name: "mixed accept list", accept: "text/html, text/event-stream, */*", want: true},
		{name: "signals in query", query: `?datastar={"tab":"orders"}`, want: true},
		{name: "browser navigation", accept: "text/html,application/xhtml+xml", want: false},
		{name: "plain form post", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/userdashboardpage"+tt.query, nil)
			if tt.accept != "" {
				r.Header.Set("Accept", tt.accept)
			}
			assert.Equal(t, tt.want, handler.IsDataStar(r))
		})
	}
}

func TestToastPrependsToContainer(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/customizationstudiopage/bag", nil)
	r.Header.Set("Accept", "text/event-stream")

	err := handler.TemplMulti(handler.Toast(mockErrorToast(handler.ErrorToastParams{Message: "Added to Bag!"}))).Render(w, r)

	assert.NoError(t, err)
	body := w.Body.String()
	assert.Contains(t, body, "selector "+handler.ToastTarget)
	assert.Contains(t, body, "mode prepend")
}
