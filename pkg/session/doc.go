// Package session keeps anonymous visitor sessions in memory, identified by a
// signed cookie.
//
// A Manager ties a Transport, which carries the session token, to a Store,
// which holds session state. The bundled MemoryStore guards its map with a
// sync.RWMutex and copies sessions on every read and write; an optional ticker
// drops expired sessions until Close. Activity timestamps are updated by a
// background worker so requests never wait on them.
//
// # Usage
//
//	cookies, err := cookie.New([]string{secret})
//	if err != nil {
//	    return err
//	}
//	sessions := session.NewFromConfig(cfg, session.WithCookieManager(cookies))
//	defer sessions.Close()
//
//	r.Use(sessions.EnsureSession)
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    sess, _ := session.FromContext(r.Context())
//	    sess.Set("bag", items)
//	    _ = sessions.Save(r.Context(), sess)
//	}
//
// Values are read back with the generic helpers Value and Pop. Stored values
// are shared between copies of a session, so replace them instead of mutating
// them in place.
//
// # Configuration
//
// Config is loaded from the environment (SESSION_COOKIE_NAME, SESSION_TTL,
// SESSION_MAX_LIFETIME, SESSION_CLEANUP_INTERVAL, SESSION_SECURE_COOKIES).
package session
