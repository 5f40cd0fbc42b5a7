package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/bcard/internal/apiclient"
	"github.com/nfrund/bcard/internal/auth"
	"github.com/nfrund/bcard/internal/domain"
	"github.com/nfrund/bcard/internal/handlers"
	"github.com/nfrund/bcard/internal/service"
	"github.com/nfrund/bcard/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func setupAuthTest(t *testing.T, sess domain.Session) (*echo.Echo, *testutils.FakeUserAPI) {
	t.Helper()
	api := testutils.NewFakeUserAPI()
	api.Token = testutils.MakeToken(t, map[string]any{"_id": "u1", "isBusiness": true})

	store := auth.NewStore()
	e, pages := testutils.NewEcho(t, store, sess)
	h := handlers.NewAuthHandler(service.NewUsers(api, &testutils.RecordingPublisher{}), store, pages)
	e.GET("/login", h.LoginGet)
	e.POST("/login", h.LoginPost)
	e.GET("/register", h.RegisterGet)
	e.POST("/register", h.RegisterPost)
	e.POST("/logout", h.Logout)
	return e, api
}

func postForm(e *echo.Echo, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func lastCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	var found *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			found = ck
		}
	}
	return found
}

// assertFlashMessage checks the flash session written by the response.
func assertFlashMessage(t *testing.T, rec *httptest.ResponseRecorder, key, expectedMessage string) {
	t.Helper()
	assert.Contains(t, testutils.Flashes(t, rec, key), expectedMessage, "expected flash message for key: %s", key)
}

func validLogin() url.Values {
	return url.Values{"email": {"ada@example.com"}, "password": {"Abcdefg1!"}}
}

func TestLoginGet(t *testing.T) {
	t.Run("renders the form", func(t *testing.T) {
		e, _ := setupAuthTest(t, domain.Anonymous)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `action="/login"`)
	})

	t.Run("sends logged in visitors home", func(t *testing.T) {
		e, _ := setupAuthTest(t, testutils.SessionFor(domain.RoleUser, "u1"))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	})
}

func TestLoginPost(t *testing.T) {
	t.Run("stores the token and flashes", func(t *testing.T) {
		e, _ := setupAuthTest(t, domain.Anonymous)
		rec := postForm(e, "/login", validLogin())

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
		assert.NotNil(t, lastCookie(rec, "bcard-session"))
		assertFlashMessage(t, rec, "success", "Log in successfully")
	})

	t.Run("invalid form is re-rendered", func(t *testing.T) {
		e, _ := setupAuthTest(t, domain.Anonymous)
		rec := postForm(e, "/login", url.Values{"email": {"not-an-email"}})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid email")
		assert.Contains(t, rec.Body.String(), "Password is required")
		assert.Nil(t, lastCookie(rec, "bcard-session"))
	})

	t.Run("rejected credentials show the api message", func(t *testing.T) {
		e, api := setupAuthTest(t, domain.Anonymous)
		api.Err = &apiclient.Error{Operation: "login", StatusCode: http.StatusBadRequest, Message: "Invalid email or password"}
		rec := postForm(e, "/login", validLogin())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid email or password")
		assert.NotContains(t, rec.Body.String(), "Abcdefg1!")
	})

	t.Run("unreachable api is a bad gateway", func(t *testing.T) {
		e, api := setupAuthTest(t, domain.Anonymous)
		api.Err = domain.ErrUnavailable
		rec := postForm(e, "/login", validLogin())

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "Login failed")
	})
}

func TestRegisterPost(t *testing.T) {
	valid := url.Values{
		"first": {"Ada"}, "last": {"Lovelace"}, "phone": {"0501234567"},
		"email": {"ada@example.com"}, "password": {"Abcdefg1!"},
		"country": {"Israel"}, "city": {"Haifa"}, "street": {"Herzl"},
		"houseNumber": {"7"}, "zip": {"12345"},
	}

	t.Run("registers and logs in", func(t *testing.T) {
		e, _ := setupAuthTest(t, domain.Anonymous)
		rec := postForm(e, "/register", valid)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
		assertFlashMessage(t, rec, "success", "Registration successful")
		assertFlashMessage(t, rec, "success", "Log in successfully")
	})

	t.Run("weak password is refused locally", func(t *testing.T) {
		e, _ := setupAuthTest(t, domain.Anonymous)
		form := url.Values{}
		for k, v := range valid {
			form[k] = v
		}
		form.Set("password", "password")
		rec := postForm(e, "/register", form)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Password must contain uppercase")
	})

	t.Run("duplicate account", func(t *testing.T) {
		e, api := setupAuthTest(t, domain.Anonymous)
		api.Err = &apiclient.Error{Operation: "register", StatusCode: http.StatusBadRequest, Message: "User already registered"}
		rec := postForm(e, "/register", valid)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "User already registered")
	})
}

func TestLogout(t *testing.T) {
	e, _ := setupAuthTest(t, testutils.SessionFor(domain.RoleUser, "u1"))
	rec := postForm(e, "/logout", nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assertFlashMessage(t, rec, "success", "Log out successfully")
}
