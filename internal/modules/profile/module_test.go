package profile_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/bcard/internal/auth"
	"github.com/nfrund/bcard/internal/domain"
	"github.com/nfrund/bcard/internal/handlers"
	"github.com/nfrund/bcard/internal/modules/profile"
	"github.com/nfrund/bcard/internal/service"
	"github.com/nfrund/bcard/internal/testutils"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, sess domain.Session) (*echo.Echo, *testutils.FakeUserAPI) {
	t.Helper()
	api := testutils.NewFakeUserAPI(domain.User{
		ID:    "u1",
		Name:  domain.Name{First: "Ada", Last: "Lovelace"},
		Email: "ada@example.com",
		Phone: "0501234567",
		Address: domain.Address{
			Country: "Israel", City: "Haifa", Street: "Herzl", HouseNumber: "17", Zip: "12345",
		},
	})
	store := auth.NewStore()
	e, pages := testutils.NewEcho(t, store, sess)

	i := do.New()
	do.ProvideValue(i, service.NewUsers(api, &testutils.RecordingPublisher{}))
	do.ProvideValue(i, store)
	do.ProvideValue[*handlers.Pages](i, pages)

	m := profile.New()
	require.NoError(t, m.Register(i))
	require.NoError(t, m.Boot(context.Background(), e.Group(""), i))
	return e, api
}

func post(e *echo.Echo, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func profileForm() url.Values {
	return url.Values{
		"first": {"Ada"}, "last": {"Byron"}, "phone": {"0527654321"}, "email": {"ada@example.com"},
		"imageUrl": {"https://images.example.com/ada.png"}, "imageAlt": {"portrait"},
		"state": {"North"}, "country": {"Israel"}, "city": {"Haifa"}, "street": {"Herzl"}, "houseNumber": {"17"}, "zip": {"12345"},
	}
}

var user = testutils.SessionFor(domain.RoleUser, "u1")

func TestGet(t *testing.T) {
	t.Run("shows the account", func(t *testing.T) {
		e, _ := setup(t, user)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Ada Lovelace")
		assert.Contains(t, rec.Body.String(), "Normal User")
	})

	t.Run("anonymous visitors must log in", func(t *testing.T) {
		e, _ := setup(t, domain.Anonymous)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("saves and redirects", func(t *testing.T) {
		e, api := setup(t, user)
		rec := post(e, "/profile", profileForm())

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/profile", rec.Header().Get(echo.HeaderLocation))
		assert.Equal(t, "Byron", api.Users["u1"].Name.Last)
		assert.Equal(t, "0527654321", api.Users["u1"].Phone)
		assert.Contains(t, testutils.Flashes(t, rec, "success"), "Profile updated")
	})

	t.Run("script image url is refused", func(t *testing.T) {
		e, api := setup(t, user)
		form := profileForm()
		form.Set("imageUrl", "javascript:alert(1)")
		rec := post(e, "/profile", form)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Must be a valid URL")
		assert.Empty(t, api.Users["u1"].Image.URL)
	})

	t.Run("short house number is refused", func(t *testing.T) {
		e, api := setup(t, user)
		form := profileForm()
		form.Set("houseNumber", "7")
		rec := post(e, "/profile", form)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Must be at least 2 characters")
		assert.Equal(t, "Lovelace", api.Users["u1"].Name.Last)
	})
}

func TestDelete(t *testing.T) {
	e, api := setup(t, user)
	rec := post(e, "/profile/delete", nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, []string{"u1"}, api.Deleted)
	assert.Contains(t, testutils.Flashes(t, rec, "success"), "Your account was deleted")
}
