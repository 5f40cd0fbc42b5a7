package auth

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/bcard/internal/domain"
	"github.com/nfrund/bcard/internal/view"
)

const (
	sessionName = "bcard-session"
	tokenKey    = "token"
	themeKey    = "theme"
	sessionKey  = "session"
)

// Theme values persisted alongside the token.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Store keeps the token and theme in the signed cookie session. It is the
// server-side counterpart of browser local storage.
type Store struct{}

// NewStore creates a Store. The session middleware must already be installed.
func NewStore() *Store {
	return &Store{}
}

func (s *Store) get(c echo.Context) *sessions.Session {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		// A cookie signed with an old secret still yields a fresh session.
		slog.Debug("discarding unreadable session cookie", "error", err)
	}
	if sess == nil {
		// No session middleware: behave as an empty, unsaved session.
		return sessions.NewSession(nil, sessionName)
	}
	return sess
}

func (s *Store) save(c echo.Context, sess *sessions.Session) {
	if sess.Store() == nil {
		return
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		slog.Error("Failed to save session", "error", err)
	}
}

// Token returns the persisted token, or "".
func (s *Store) Token(c echo.Context) string {
	token, _ := s.get(c).Values[tokenKey].(string)
	return token
}

// Load derives the Session for this request. A token that cannot be decoded
// is removed so later requests start anonymous.
func (s *Store) Load(c echo.Context) domain.Session {
	sess := s.get(c)
	token, _ := sess.Values[tokenKey].(string)
	if token == "" {
		return domain.Anonymous
	}
	if _, err := Decode(token); err != nil {
		slog.Warn("Clearing undecodable token", "error", err)
		delete(sess.Values, tokenKey)
		s.save(c, sess)
		return domain.Anonymous
	}
	return NewSession(token)
}

// Login persists token and returns the session it describes.
func (s *Store) Login(c echo.Context, token string) (domain.Session, error) {
	claims, err := Decode(token)
	if err != nil {
		return domain.Anonymous, err
	}
	sess := s.get(c)
	sess.Values[tokenKey] = token
	s.save(c, sess)
	view.SetFlashSuccess(c, "Log in successfully")
	return domain.Session{IsAuthenticated: true, Claims: claims}, nil
}

// Logout removes the token. The theme survives.
func (s *Store) Logout(c echo.Context) {
	sess := s.get(c)
	delete(sess.Values, tokenKey)
	s.save(c, sess)
	view.SetFlashSuccess(c, "Log out successfully")
}

// Theme returns the persisted theme, light by default.
func (s *Store) Theme(c echo.Context) string {
	if theme, _ := s.get(c).Values[themeKey].(string); theme == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// ToggleTheme flips between light and dark and returns the new theme.
func (s *Store) ToggleTheme(c echo.Context) string {
	next := ThemeDark
	if s.Theme(c) == ThemeDark {
		next = ThemeLight
	}
	sess := s.get(c)
	sess.Values[themeKey] = next
	s.save(c, sess)
	return next
}

// SetSession stores the request's session on the echo context.
func SetSession(c echo.Context, s domain.Session) {
	c.Set(sessionKey, s)
}

// FromContext returns the session placed by SetSession, or the anonymous session.
func FromContext(c echo.Context) domain.Session {
	if s, ok := c.Get(sessionKey).(domain.Session); ok {
		return s
	}
	return domain.Anonymous
}

// CookieOptions are the options for the session cookie store.
func CookieOptions(secure bool) *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
