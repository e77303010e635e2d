package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// CookieName is the session cookie. The value is an opaque token; it must
// round-trip unchanged between issuance and later requests.
const CookieName = "inkwell_session"

// DefaultSessionTTL matches the one-hour cookie lifetime of the API.
const DefaultSessionTTL = time.Hour

// Sessions issues, resolves and destroys server-side sessions. The store
// and the clock are injected so expiry is deterministic in tests.
type Sessions struct {
	repo   repositories.SessionRepository
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

// NewSessions creates a session manager over the given store. A zero ttl
// falls back to DefaultSessionTTL. secure marks issued cookies
// Secure, for production deployments behind TLS.
func NewSessions(repo repositories.SessionRepository, ttl time.Duration, secure bool) *Sessions {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Sessions{repo: repo, ttl: ttl, secure: secure, now: time.Now}
}

// SetClock replaces the time source, for tests.
func (s *Sessions) SetClock(now func() time.Time) {
	s.now = now
}

// Create issues a new session bound to the user with a cryptographically
// random token.
func (s *Sessions) Create(userID int) (*models.Session, error) {
	now := s.now()
	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.repo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Resolve maps a token to the bound user. Unknown and expired tokens both
// resolve to no identity; expired records are removed on the way out.
func (s *Sessions) Resolve(token string) (int, bool) {
	if token == "" {
		return 0, false
	}
	session, err := s.repo.Get(token)
	if err != nil {
		return 0, false
	}
	if !s.now().Before(session.ExpiresAt) {
		_ = s.repo.Delete(token)
		return 0, false
	}
	return session.UserID, true
}

// Destroy removes the binding. Destroying an unknown or already-destroyed
// token is a no-op.
func (s *Sessions) Destroy(token string) error {
	if token == "" {
		return nil
	}
	err := s.repo.Delete(token)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil
	}
	return err
}

// TokenFrom reads the session token carried by the request, if any.
func TokenFrom(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// SetCookie attaches the session to the response as a scoped cookie.
func (s *Sessions) SetCookie(w http.ResponseWriter, session *models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.secure,
	})
}

// ClearCookie tells the client to drop the session cookie.
func (s *Sessions) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.secure,
	})
}
