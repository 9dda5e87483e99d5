package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/atelier/pkg/cookie"
	"github.com/dmitrymomot/atelier/pkg/session"
)

func setupManager(t *testing.T, opts ...session.Option) *session.Manager {
	t.Helper()
	cookieMgr, err := cookie.New([]string{"test-secret-key-that-is-long-enough"})
	require.NoError(t, err)

	cfg := session.DefaultConfig()
	cfg.CookieName = "test-sid"
	cfg.CleanupInterval = 0

	m := session.NewFromConfig(cfg, append([]session.Option{session.WithCookieManager(cookieMgr)}, opts...)...)
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func withCookies(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestManager_Ensure(t *testing.T) {
	t.Parallel()
	manager := setupManager(t)
	ctx := context.Background()

	w1 := httptest.NewRecorder()
	sess1, err := manager.Ensure(ctx, w1, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	require.NotNil(t, sess1)
	assert.NotEmpty(t, sess1.Token)

	cookies := w1.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "test-sid", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	w2 := httptest.NewRecorder()
	sess2, err := manager.Ensure(ctx, w2, withCookies(w1))
	require.NoError(t, err)
	assert.Equal(t, sess1.ID, sess2.ID)
	assert.Empty(t, w2.Result().Cookies(), "existing session keeps its cookie")
}

func TestManager_EnsureReplacesUnknownToken(t *testing.T) {
	t.Parallel()
	manager := setupManager(t)
	other := setupManager(t)
	ctx := context.Background()

	w1 := httptest.NewRecorder()
	sess1, err := other.Ensure(ctx, w1, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	w2 := httptest.NewRecorder()
	sess2, err := manager.Ensure(ctx, w2, withCookies(w1))
	require.NoError(t, err)
	assert.NotEqual(t, sess1.ID, sess2.ID)
	assert.NotEmpty(t, w2.Result().Cookies())
}

func TestManager_SaveAndGet(t *testing.T) {
	t.Parallel()
	manager := setupManager(t)
	ctx := context.Background()

	w := httptest.NewRecorder()
	sess, err := manager.Ensure(ctx, w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	sess.Set("style", "Polo")
	require.NoError(t, manager.Save(ctx, sess))

	got, err := manager.Get(ctx, withCookies(w))
	require.NoError(t, err)
	v, ok := session.Value[string](got, "style")
	assert.True(t, ok)
	assert.Equal(t, "Polo", v)

	_, err = manager.Get(ctx, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestManager_Refresh(t *testing.T) {
	t.Parallel()
	manager := setupManager(t, session.WithTTL(time.Hour, 2*time.Hour))
	ctx := context.Background()

	w := httptest.NewRecorder()
	sess, err := manager.Ensure(ctx, w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	w2 := httptest.NewRecorder()
	require.NoError(t, manager.Refresh(ctx, w2, withCookies(w)))

	got, err := manager.Get(ctx, withCookies(w))
	require.NoError(t, err)
	assert.False(t, got.ExpiresAt.Before(sess.ExpiresAt))
	assert.False(t, got.ExpiresAt.After(sess.CreatedAt.Add(2*time.Hour)))
	assert.NotEmpty(t, w2.Result().Cookies())
}

func TestManager_Destroy(t *testing.T) {
	t.Parallel()
	manager := setupManager(t)
	ctx := context.Background()

	w := httptest.NewRecorder()
	_, err := manager.Ensure(ctx, w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	w2 := httptest.NewRecorder()
	require.NoError(t, manager.Destroy(ctx, w2, withCookies(w)))
	assert.Equal(t, -1, w2.Result().Cookies()[0].MaxAge)

	_, err = manager.Get(ctx, withCookies(w))
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestManager_ExpiredSession(t *testing.T) {
	t.Parallel()
	manager := setupManager(t, session.WithTTL(-time.Second, time.Hour))
	ctx := context.Background()

	w := httptest.NewRecorder()
	_, err := manager.Ensure(ctx, w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	_, err = manager.Get(ctx, withCookies(w))
	assert.ErrorIs(t, err, session.ErrSessionExpired)
}

func TestNew_RequiresTransport(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { session.New() })
}
