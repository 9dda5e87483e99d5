package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/atelier/pkg/cookie"
	"github.com/dmitrymomot/atelier/pkg/logger"
)

// Manager handles session operations
type Manager struct {
	store         Store
	transport     Transport
	config        Config
	cookieManager *cookie.Manager
	logger        *slog.Logger
	activityChan  chan activityUpdate
	done          chan struct{}
	ownsStore     bool
}

// activityUpdate represents a session activity update
type activityUpdate struct {
	token string
	time  time.Time
}

// New creates a new session manager with the given options.
// It panics when neither a transport nor a cookie manager is configured.
func New(opts ...Option) *Manager {
	m := &Manager{
		config:       DefaultConfig(),
		activityChan: make(chan activityUpdate, 1000),
		done:         make(chan struct{}),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if m.store == nil {
		m.store = NewMemoryStore(m.config.CleanupInterval)
		m.ownsStore = true
	}

	if m.transport == nil {
		if m.cookieManager == nil {
			panic("session: cookie manager is required when using default cookie transport")
		}
		m.transport = NewCookieTransport(m.cookieManager, m.config.CookieName, m.config.SecureCookies)
	}

	go m.activityWorker()

	return m
}

// Ensure returns the request's session, creating one and setting its cookie
// when there is none or it has expired.
func (m *Manager) Ensure(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Session, error) {
	session, err := m.Get(ctx, r)
	if err == nil {
		if m.shouldUpdateActivity(session) {
			m.queueActivityUpdate(session.Token)
		}
		return session, nil
	}
	if !errors.Is(err, ErrSessionNotFound) {
		_ = m.transport.ClearToken(w)
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session = NewSession(token, m.calculateExpiry(now, now).Sub(now))
	if err := m.store.Create(ctx, session); err != nil {
		return nil, err
	}

	if err := m.transport.SetToken(w, session.Token, m.config.TTL); err != nil {
		_ = m.store.Delete(ctx, session.Token)
		return nil, err
	}

	return session, nil
}

// Get retrieves an existing session
func (m *Manager) Get(ctx context.Context, r *http.Request) (*Session, error) {
	token, err := m.transport.GetToken(r)
	if err != nil {
		return nil, err
	}

	session, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	if session.IsExpired() {
		return nil, ErrSessionExpired
	}

	return session, nil
}

// Save persists changes made to the session's data.
func (m *Manager) Save(ctx context.Context, session *Session) error {
	return m.store.Update(ctx, session)
}

// Destroy deletes the session
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	token, err := m.transport.GetToken(r)
	if err == nil && token != "" {
		_ = m.store.Delete(ctx, token)
	}

	return m.transport.ClearToken(w)
}

// Refresh extends the session expiry by the idle timeout, capped at the maximum lifetime.
func (m *Manager) Refresh(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	session, err := m.Get(ctx, r)
	if err != nil {
		return err
	}

	session.ExpiresAt = m.calculateExpiry(session.CreatedAt, time.Now())
	session.Touch()

	if err := m.store.Update(ctx, session); err != nil {
		return err
	}

	return m.transport.SetToken(w, session.Token, m.config.TTL)
}

// shouldUpdateActivity checks if activity should be updated
func (m *Manager) shouldUpdateActivity(session *Session) bool {
	return time.Since(session.LastActivityAt) >= m.config.ActivityUpdateThreshold
}

// queueActivityUpdate queues a session activity update
func (m *Manager) queueActivityUpdate(token string) {
	select {
	case m.activityChan <- activityUpdate{token: token, time: time.Now()}:
	default:
		// full; drop the update rather than block the request
	}
}

func (m *Manager) updateActivity(update activityUpdate) {
	err := m.store.UpdateActivity(context.Background(), update.token, update.time)
	if err != nil && !errors.Is(err, ErrSessionNotFound) {
		m.logger.Warn("session activity update failed", logger.Component("session"), logger.Error(err))
	}
}

// activityWorker processes activity updates
func (m *Manager) activityWorker() {
	for {
		select {
		case update := <-m.activityChan:
			m.updateActivity(update)
		case <-m.done:
			for {
				select {
				case update := <-m.activityChan:
					m.updateActivity(update)
				default:
					return
				}
			}
		}
	}
}

// Close stops the activity worker and, when the manager created its own
// memory store, the store's cleanup loop.
func (m *Manager) Close() error {
	select {
	case <-m.done:
		return nil
	default:
		close(m.done)
	}

	if closer, ok := m.store.(io.Closer); ok && m.ownsStore {
		return closer.Close()
	}
	return nil
}

// calculateExpiry returns the next expiry time (min of idle and max lifetime)
func (m *Manager) calculateExpiry(createdAt, now time.Time) time.Time {
	idleExpiry := now.Add(m.config.TTL)
	maxExpiry := createdAt.Add(m.config.MaxLifetime)

	if maxExpiry.Before(idleExpiry) {
		return maxExpiry
	}
	return idleExpiry
}

// generateToken creates a cryptographically secure token
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
