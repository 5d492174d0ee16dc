package handlers

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"quoteadmin/templates"
)

const sessionCookie = "quoteadmin_session"

// sessionTTL bounds how long a login stays valid without re-entering
// the password.
const sessionTTL = 12 * time.Hour

// SessionStore keeps issued session tokens in memory. The console is a
// single-process deployment, so sessions do not need to survive a
// restart; operators just log in again.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]time.Time)}
}

// Issue creates a new session token.
func (s *SessionStore) Issue() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = time.Now().Add(sessionTTL)
	return token, nil
}

// Valid reports whether the token belongs to a live session. Expired
// tokens are pruned as they are seen.
func (s *SessionStore) Valid(token string) bool {
	if token == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.sessions[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(s.sessions, token)
		return false
	}
	return true
}

// Revoke drops the token.
func (s *SessionStore) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// HandleLoginPage renders the password gate.
func HandleLoginPage(store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if c, err := e.Request.Cookie(sessionCookie); err == nil && store.Valid(c.Value) {
			return e.Redirect(http.StatusFound, "/quotes")
		}
		return templates.LoginPage(templates.LoginData{}).Render(e.Request.Context(), e.Response)
	}
}

// HandleLogin checks the submitted password against the deployment
// password and issues a session cookie on success.
func HandleLogin(store *SessionStore, adminPassword string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		submitted := e.Request.FormValue("password")
		if subtle.ConstantTimeCompare([]byte(submitted), []byte(adminPassword)) != 1 {
			log.Printf("auth: failed login attempt from %s", e.Request.RemoteAddr)
			e.Response.WriteHeader(http.StatusUnauthorized)
			return templates.LoginPage(templates.LoginData{
				Error: "Incorrect password.",
			}).Render(e.Request.Context(), e.Response)
		}

		token, err := store.Issue()
		if err != nil {
			log.Printf("auth: could not issue session: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		http.SetCookie(e.Response, &http.Cookie{
			Name:     sessionCookie,
			Value:    token,
			Path:     "/",
			MaxAge:   int(sessionTTL.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return e.Redirect(http.StatusFound, "/quotes")
	}
}

// HandleLogout revokes the session and clears the cookie.
func HandleLogout(store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if c, err := e.Request.Cookie(sessionCookie); err == nil {
			store.Revoke(c.Value)
		}
		http.SetCookie(e.Response, &http.Cookie{
			Name:   sessionCookie,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})
		return e.Redirect(http.StatusFound, "/login")
	}
}

// RequireSession guards every console route behind the password gate.
// The login page and static assets stay reachable.
func RequireSession(store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		path := e.Request.URL.Path
		if path == "/login" || strings.HasPrefix(path, "/static/") {
			return e.Next()
		}

		c, err := e.Request.Cookie(sessionCookie)
		if err != nil || !store.Valid(c.Value) {
			// HTMX requests get a client-side redirect instead of a 302,
			// otherwise the login page would be swapped into a fragment.
			if e.Request.Header.Get("HX-Request") == "true" {
				e.Response.Header().Set("HX-Redirect", "/login")
				return e.String(http.StatusUnauthorized, "Session expired")
			}
			return e.Redirect(http.StatusFound, "/login")
		}
		return e.Next()
	}
}
