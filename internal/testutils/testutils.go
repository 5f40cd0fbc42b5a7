// Package testutils holds helpers shared by package tests: configuration,
// tokens, in-memory remote API fakes and a ready-to-use echo instance.
package testutils

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/bcard/internal/auth"
	"github.com/nfrund/bcard/internal/config"
	"github.com/nfrund/bcard/internal/domain"
	"github.com/nfrund/bcard/internal/handlers"
	"github.com/nfrund/bcard/internal/rendering"
	"github.com/nfrund/bcard/internal/validation"
	"github.com/stretchr/testify/require"
)

// SessionSecret signs cookies in tests.
const SessionSecret = "a-very-secret-key-for-testing-!"

// ConfigForTests returns a valid config.Provider. Values from an optional
// .env.test at the project root are applied first.
func ConfigForTests(t *testing.T) config.Provider {
	t.Helper()

	if root, ok := projectRoot(); ok {
		env, err := godotenv.Read(filepath.Join(root, ".env.test"))
		if err == nil {
			for key, value := range env {
				t.Setenv(key, value)
			}
		}
	}
	if len(os.Getenv("SESSION_SECRET")) < len(SessionSecret) {
		t.Setenv("SESSION_SECRET", SessionSecret)
	}
	t.Setenv("CACHE_BACKEND", "memory")

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	return cfg
}

func projectRoot() (string, bool) {
	path, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path, true
		}
		if path == filepath.Dir(path) {
			return "", false
		}
		path = filepath.Dir(path)
	}
}

// MakeToken builds a JWT carrying claims. Signatures are never checked
// locally, so the third segment is a placeholder.
func MakeToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	enc := base64.RawURLEncoding
	header := enc.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	return header + "." + enc.EncodeToString(payload) + ".c2lnbmF0dXJl"
}

// SessionFor is an authenticated session with the given role.
func SessionFor(role domain.Role, userID string) domain.Session {
	claims := domain.Claims{UserID: userID}
	switch role {
	case domain.RoleAnonymous:
		return domain.Anonymous
	case domain.RoleBusiness:
		claims.IsBusiness = true
	case domain.RoleAdmin:
		claims.IsAdmin = true
	}
	return domain.Session{IsAuthenticated: true, Claims: claims}
}

// NewEcho returns an echo instance wired like the server: the form
// validator, cookie sessions and the page error handler. Every request runs
// as sess.
func NewEcho(t *testing.T, store *auth.Store, sess domain.Session) (*echo.Echo, *handlers.Pages) {
	t.Helper()
	pages := handlers.NewPages(store, rendering.NewUniversalRenderer())

	e := echo.New()
	e.Validator = validation.New()
	e.HTTPErrorHandler = pages.HandleError
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(SessionSecret))))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth.SetSession(c, sess)
			return next(c)
		}
	})
	return e, pages
}

// Flashes decodes the flash messages under key that the response left in the
// flash session. A session saved twice in one request emits its cookie twice;
// the last one wins.
func Flashes(t *testing.T, rec *httptest.ResponseRecorder, key string) []string {
	t.Helper()

	var ck *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "flash-session" {
			ck = c
		}
	}
	if ck == nil {
		return nil
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(ck)
	sess, err := sessions.NewCookieStore([]byte(SessionSecret)).Get(req, "flash-session")
	require.NoError(t, err)

	var out []string
	for _, f := range sess.Flashes(key) {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
