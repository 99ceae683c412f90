package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-room-booking/internal/config"
	"github.com/MKhiriev/go-room-booking/internal/logger"
	"github.com/MKhiriev/go-room-booking/internal/utils"
)

// Manager ties a [Store] to the session cookie.
type Manager struct {
	store      Store
	cookieName string
	ttl        time.Duration

	now      func() time.Time
	newToken func() string
	logger   *logger.Logger
}

// NewManager creates a Manager using the cookie name and TTL from cfg.
func NewManager(store Store, cfg config.App, log *logger.Logger) *Manager {
	return &Manager{
		store:      store,
		cookieName: cfg.SessionCookie,
		ttl:        cfg.SessionTTL,
		now:        time.Now,
		newToken:   utils.NewUUIDGenerator().Generate,
		logger:     log,
	}
}

// Store returns the underlying session store.
func (m *Manager) Store() Store {
	return m.store
}

// Middleware makes sure every request carries a live session. An unknown
// or expired cookie is replaced by a fresh session; a known one has its
// expiry extended. The session is available via [FromContext].
//
// Store failures are logged and the request continues without a session.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()
		now := m.now()

		if c, err := r.Cookie(m.cookieName); err == nil && c.Value != "" {
			s, err := m.store.Modify(ctx, c.Value, func(s *Session) { s.Touch(m.ttl, now) })
			switch {
			case err == nil:
				next.ServeHTTP(w, r.WithContext(WithSession(ctx, s)))
				return
			case !errors.Is(err, ErrSessionNotFound) && !errors.Is(err, ErrSessionExpired):
				log.Err(err).Str("func", "session.Middleware").Msg("error loading session")
				next.ServeHTTP(w, r)
				return
			}
		}

		s := New(m.newToken(), m.ttl, now)
		if err := m.store.Create(ctx, s); err != nil {
			log.Err(err).Str("func", "session.Middleware").Msg("error creating session")
			next.ServeHTTP(w, r)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     m.cookieName,
			Value:    s.Token,
			Path:     "/",
			MaxAge:   int(m.ttl.Seconds()),
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})
		log.Debug().Str("func", "session.Middleware").Msg("new session started")

		next.ServeHTTP(w, r.WithContext(WithSession(ctx, s)))
	})
}
