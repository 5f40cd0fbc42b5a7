package middleware

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/bcard/internal/apiclient"
	"github.com/nfrund/bcard/internal/auth"
	"github.com/nfrund/bcard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func makeToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	enc := base64.RawURLEncoding
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	return enc.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`)) + "." + enc.EncodeToString(payload) + ".c2lnbmF0dXJl"
}

// loginCookies performs a login against a throwaway route and returns the
// session cookies it set.
func loginCookies(t *testing.T, e *echo.Echo, store *auth.Store, token string) []*http.Cookie {
	t.Helper()
	e.POST("/test-login", func(c echo.Context) error {
		_, err := store.Login(c, token)
		return err
	})
	req := httptest.NewRequest(http.MethodPost, "/test-login", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Result().Cookies()
}

func TestSession(t *testing.T) {
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))
	store := auth.NewStore()
	e.Use(Session(store))

	var seen domain.Session
	var seenToken string
	e.GET("/", func(c echo.Context) error {
		seen = auth.FromContext(c)
		seenToken = apiclient.TokenFrom(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	t.Run("anonymous without cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, seen.IsAuthenticated)
		assert.Empty(t, seenToken)
	})

	t.Run("decodes stored token and forwards it", func(t *testing.T) {
		token := makeToken(t, map[string]any{"_id": "u1", "isBusiness": true})
		cookies := loginCookies(t, e, store, token)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, ck := range cookies {
			req.AddCookie(ck)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.True(t, seen.IsAuthenticated)
		assert.Equal(t, "u1", seen.UserID())
		assert.Equal(t, domain.RoleBusiness, seen.Role())
		assert.Equal(t, token, seenToken)
	})
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	run := func(sess domain.Session, mw echo.MiddlewareFunc) error {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		auth.SetSession(c, sess)
		return mw(ok)(c)
	}
	user := domain.Session{IsAuthenticated: true, Claims: domain.Claims{UserID: "u1"}}
	admin := domain.Session{IsAuthenticated: true, Claims: domain.Claims{UserID: "a1", IsAdmin: true}}
	adminOnly := RequireRole(auth.CanAdmin, "Must Login And Be An Admin")

	t.Run("anonymous gets 401", func(t *testing.T) {
		err := run(domain.Anonymous, RequireAuth())
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
		assert.Equal(t, "Please Login", he.Message)
	})

	t.Run("authenticated passes RequireAuth", func(t *testing.T) {
		assert.NoError(t, run(user, RequireAuth()))
	})

	t.Run("missing role gets 403 with message", func(t *testing.T) {
		err := run(user, adminOnly)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusForbidden, he.Code)
		assert.Equal(t, "Must Login And Be An Admin", he.Message)
	})

	t.Run("anonymous on role page still gets 401", func(t *testing.T) {
		err := run(domain.Anonymous, adminOnly)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		assert.NoError(t, run(admin, adminOnly))
	})
}

func TestRequestLogging(t *testing.T) {
	var buf bytes.Buffer
	original := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(original)

	e := echo.New()
	e.Use(RequestID(), Logger, AccessLog())
	e.GET("/ping", func(c echo.Context) error {
		FromContext(c.Request().Context()).Info("handling ping")
		return c.String(http.StatusOK, "pong")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	reqID := rec.Header().Get(echo.HeaderXRequestID)
	require.Len(t, reqID, 36)
	assert.Contains(t, buf.String(), "handling ping")
	assert.Contains(t, buf.String(), "request_id="+reqID)
	assert.Contains(t, buf.String(), "uri=/ping")
	assert.Contains(t, buf.String(), "status=200")
}
