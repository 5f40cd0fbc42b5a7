package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/bcard/internal/apiclient"
	"github.com/nfrund/bcard/internal/auth"
	"github.com/nfrund/bcard/internal/domain"
	"github.com/nfrund/bcard/internal/handlers"
	"github.com/nfrund/bcard/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"http error keeps its message", echo.NewHTTPError(http.StatusForbidden, "Business Account Required"), http.StatusForbidden, "Business Account Required"},
		{"http error without message", echo.NewHTTPError(http.StatusTeapot), http.StatusTeapot, http.StatusText(http.StatusTeapot)},
		{"not found", domain.ErrNotFound, http.StatusNotFound, "Page Not Found"},
		{"unauthorized", fmt.Errorf("load: %w", domain.ErrUnauthorized), http.StatusUnauthorized, "Please Login"},
		{"forbidden from api", &apiclient.Error{Operation: "edit", StatusCode: http.StatusForbidden, Message: "Not your card"}, http.StatusForbidden, "Not your card"},
		{"validation", domain.ErrValidation, http.StatusBadRequest, "The request was not valid"},
		{"unavailable", fmt.Errorf("list: %w: %w", domain.ErrUnavailable, errors.New("dial tcp")), http.StatusBadGateway, "The card service is unavailable, please try again"},
		{"api server error", &apiclient.Error{Operation: "list", StatusCode: http.StatusInternalServerError, Message: "boom"}, http.StatusBadGateway, "boom"},
		{"unknown", errors.New("nil pointer"), http.StatusInternalServerError, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := handlers.Status(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, message)
		})
	}
}

func TestFailedStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadGateway, handlers.FailedStatus(errors.New("odd")))
	assert.Equal(t, http.StatusBadRequest, handlers.FailedStatus(domain.ErrValidation))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Please Login", handlers.UserMessage(domain.ErrUnauthorized, "Failed"))
	assert.Equal(t, "Failed", handlers.UserMessage(errors.New("odd"), "Failed"))
	assert.Equal(t, "Token expired", handlers.UserMessage(&apiclient.Error{StatusCode: http.StatusUnauthorized, Message: "Token expired"}, "Failed"))
}

func TestHandleError(t *testing.T) {
	serve := func(sess domain.Session, err error, header http.Header) *httptest.ResponseRecorder {
		e, _ := testutils.NewEcho(t, auth.NewStore(), sess)
		e.GET("/boom", func(c echo.Context) error { return err })
		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		for k, v := range header {
			req.Header[k] = v
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("unknown route is the not found page", func(t *testing.T) {
		e, _ := testutils.NewEcho(t, auth.NewStore(), domain.Anonymous)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Page Not Found")
	})

	t.Run("forbidden page offers login to anonymous visitors", func(t *testing.T) {
		rec := serve(domain.Anonymous, echo.NewHTTPError(http.StatusForbidden, "Business Account Required"), nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Page Unavailable")
		assert.Contains(t, rec.Body.String(), "Business Account Required")
		assert.Contains(t, rec.Body.String(), `href="/login"`)
	})

	t.Run("htmx unauthorized redirects to login", func(t *testing.T) {
		rec := serve(domain.Anonymous, domain.ErrUnauthorized, http.Header{"Hx-Request": {"true"}})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get(handlers.HeaderHXRedirect))
		assert.Empty(t, rec.Body.String())
	})

	t.Run("htmx failure refreshes with a flash", func(t *testing.T) {
		rec := serve(testutils.SessionFor(domain.RoleUser, "u1"), domain.ErrUnavailable, http.Header{"Hx-Request": {"true"}})

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, "true", rec.Header().Get(handlers.HeaderHXRefresh))
		assert.Equal(t, "none", rec.Header().Get(handlers.HeaderHXReswap))
		assertFlashMessage(t, rec, "error", "The card service is unavailable, please try again")
	})

	t.Run("boosted requests get the full page", func(t *testing.T) {
		rec := serve(domain.Anonymous, domain.ErrNotFound, http.Header{"Hx-Request": {"true"}, "Hx-Boosted": {"true"}})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "<html")
	})
}

func TestRedirectBack(t *testing.T) {
	e := echo.New()
	cases := map[string]string{
		"":                               "/fallback",
		"http://example.com/favorites":   "/favorites",
		"http://example.com/?search=tea": "/?search=tea",
		"https://evil.test/phish":        "/fallback",
	}
	for referer, want := range cases {
		req := httptest.NewRequest(http.MethodPost, "/theme", nil)
		req.Host = "example.com"
		if referer != "" {
			req.Header.Set("Referer", referer)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.NoError(t, handlers.RedirectBack(c, "/fallback"))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, want, rec.Header().Get(echo.HeaderLocation), referer)
	}
}
