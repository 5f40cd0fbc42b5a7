package cards_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/bcard/internal/auth"
	"github.com/nfrund/bcard/internal/cache"
	"github.com/nfrund/bcard/internal/domain"
	"github.com/nfrund/bcard/internal/handlers"
	"github.com/nfrund/bcard/internal/modules/cards"
	"github.com/nfrund/bcard/internal/service"
	"github.com/nfrund/bcard/internal/testutils"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	regular  = testutils.SessionFor(domain.RoleUser, "u1")
	business = testutils.SessionFor(domain.RoleBusiness, "biz")
)

func setup(t *testing.T, sess domain.Session) (*echo.Echo, *testutils.FakeCardAPI) {
	t.Helper()
	api := testutils.NewFakeCardAPI(sess.UserID(),
		domain.Card{ID: "c1", Title: "Blue Bakery", Subtitle: "Bread", UserID: "biz", BizNumber: 1111111},
		domain.Card{ID: "c2", Title: "Green Garage", Subtitle: "Repairs", UserID: "other", BizNumber: 2222222, Likes: []string{"u1"}},
	)
	svc := service.NewCards(api, cache.NewMemory(clockwork.NewFakeClock(), time.Minute), &testutils.RecordingPublisher{})

	e, pages := testutils.NewEcho(t, auth.NewStore(), sess)
	i := do.New()
	do.ProvideValue(i, svc)
	do.ProvideValue[*handlers.Pages](i, pages)

	m := cards.New()
	require.NoError(t, m.Register(i))
	require.NoError(t, m.Boot(context.Background(), e.Group(""), i))
	return e, api
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func post(e *echo.Echo, path string, form url.Values, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func validCard() url.Values {
	return url.Values{
		"title": {"Red Roastery"}, "subtitle": {"Coffee"}, "phone": {"0501234567"},
		"imageUrl": {"https://images.example.com/beans.png"},
		"country": {"Israel"}, "city": {"Haifa"}, "street": {"Herzl"},
	}
}

func TestHome(t *testing.T) {
	e, _ := setup(t, domain.Anonymous)

	t.Run("lists every card", func(t *testing.T) {
		rec := get(e, "/")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Blue Bakery")
		assert.Contains(t, rec.Body.String(), "Green Garage")
	})

	t.Run("filters by search term", func(t *testing.T) {
		rec := get(e, "/?q=bakery")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Blue Bakery")
		assert.NotContains(t, rec.Body.String(), "Green Garage")
	})

	t.Run("unknown card is not found", func(t *testing.T) {
		rec := get(e, "/cards/missing")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Page Not Found")
	})
}

func TestGates(t *testing.T) {
	t.Run("favorites needs a login", func(t *testing.T) {
		e, _ := setup(t, domain.Anonymous)
		rec := get(e, "/favorites")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Please Login")
	})

	t.Run("my cards needs a business account", func(t *testing.T) {
		e, _ := setup(t, regular)
		rec := get(e, "/my-cards")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Business Account Required")
	})

	t.Run("favorites shows only liked cards", func(t *testing.T) {
		e, _ := setup(t, regular)
		rec := get(e, "/favorites")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Green Garage")
		assert.NotContains(t, rec.Body.String(), "Blue Bakery")
	})
}

func TestCreate(t *testing.T) {
	t.Run("invalid form is re-rendered", func(t *testing.T) {
		e, api := setup(t, business)
		form := validCard()
		form.Set("imageUrl", "")
		rec := post(e, "/my-cards", form, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Image URL is required")
		assert.Contains(t, rec.Body.String(), "Red Roastery")
		assert.Zero(t, api.NextID)
	})

	t.Run("script website is refused", func(t *testing.T) {
		e, api := setup(t, business)
		form := validCard()
		form.Set("web", "javascript:alert(1)")
		rec := post(e, "/my-cards", form, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Must be a valid URL")
		assert.Zero(t, api.NextID)
	})

	t.Run("creates and redirects", func(t *testing.T) {
		e, api := setup(t, business)
		rec := post(e, "/my-cards", validCard(), nil)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/my-cards", rec.Header().Get(echo.HeaderLocation))
		assert.Equal(t, 1, api.NextID)
		assert.Contains(t, testutils.Flashes(t, rec, "success"), "Card created: Red Roastery")
	})
}

func TestEditAndDelete(t *testing.T) {
	t.Run("someone else's card is forbidden", func(t *testing.T) {
		e, _ := setup(t, business)
		rec := get(e, "/cards/c2/edit")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("own card is pre-filled", func(t *testing.T) {
		e, _ := setup(t, business)
		rec := get(e, "/cards/c1/edit")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `value="Blue Bakery"`)
		assert.Contains(t, rec.Body.String(), `action="/cards/c1"`)
	})

	t.Run("delete from the details page returns to my cards", func(t *testing.T) {
		e, api := setup(t, business)
		rec := post(e, "/cards/c1/delete", nil, http.Header{"Referer": {"http://example.com/cards/c1"}})

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/my-cards", rec.Header().Get(echo.HeaderLocation))
		assert.Equal(t, int64(1111111), api.Deleted["c1"])
		assert.Contains(t, testutils.Flashes(t, rec, "success"), "Card deleted")
	})

	t.Run("refused delete flashes and goes back", func(t *testing.T) {
		e, api := setup(t, business)
		rec := post(e, "/cards/c2/delete", nil, http.Header{"Referer": {"http://example.com/?q=garage"}})

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/?q=garage", rec.Header().Get(echo.HeaderLocation))
		assert.Empty(t, api.Deleted)
		assert.NotEmpty(t, testutils.Flashes(t, rec, "error"))
	})
}

func TestLike(t *testing.T) {
	htmx := func(target, page string) http.Header {
		return http.Header{
			"Hx-Request":     {"true"},
			"Hx-Target":      {target},
			"Hx-Current-Url": {"http://example.com" + page},
		}
	}

	t.Run("unliking on favorites removes the tile", func(t *testing.T) {
		e, _ := setup(t, regular)
		rec := post(e, "/cards/c2/like", nil, htmx("card-c2", "/favorites"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, strings.TrimSpace(rec.Body.String()))
	})

	t.Run("liking on home returns the tile", func(t *testing.T) {
		e, _ := setup(t, regular)
		rec := post(e, "/cards/c1/like", nil, htmx("card-c1", "/"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `id="card-c1"`)
		assert.NotContains(t, rec.Body.String(), "<html")
	})

	t.Run("details page gets the like box", func(t *testing.T) {
		e, _ := setup(t, regular)
		rec := post(e, "/cards/c1/like", nil, htmx("like-c1", "/cards/c1"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `id="like-c1"`)
		assert.Contains(t, rec.Body.String(), "1 likes")
	})

	t.Run("plain post redirects back", func(t *testing.T) {
		e, _ := setup(t, regular)
		rec := post(e, "/cards/c1/like", nil, http.Header{"Referer": {"http://example.com/cards/c1"}})

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/cards/c1", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("anonymous htmx like is sent to login", func(t *testing.T) {
		e, _ := setup(t, domain.Anonymous)
		rec := post(e, "/cards/c1/like", nil, htmx("card-c1", "/"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get(handlers.HeaderHXRedirect))
	})
}
