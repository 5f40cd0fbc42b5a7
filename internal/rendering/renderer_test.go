package rendering

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func failingNode() g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		_, _ = io.WriteString(w, "<div>half")
		return errors.New("boom")
	})
}

func TestRenderComponent(t *testing.T) {
	r := NewUniversalRenderer()

	t.Run("gomponents node", func(t *testing.T) {
		b, err := r.RenderComponent(h.Span(g.Text("tile")))
		require.NoError(t, err)
		assert.Equal(t, "<span>tile</span>", string(b))
	})

	t.Run("render error", func(t *testing.T) {
		_, err := r.RenderComponent(failingNode())
		assert.ErrorContains(t, err, "boom")
	})

	t.Run("nil node", func(t *testing.T) {
		_, err := r.RenderComponent(nil)
		assert.Error(t, err)
	})
}

func TestRenderPage(t *testing.T) {
	e := echo.New()

	t.Run("writes status and content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := NewUniversalRenderer().RenderPage(c, http.StatusNotFound, h.H1(g.Text("404")))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
		assert.Equal(t, "<h1>404</h1>", rec.Body.String())
	})

	t.Run("failed render leaves response untouched", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := NewUniversalRenderer().RenderPage(c, http.StatusOK, failingNode())
		require.Error(t, err)
		assert.False(t, c.Response().Committed)
		assert.Empty(t, rec.Body.String())
	})
}
