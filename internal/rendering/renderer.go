package rendering

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

// Renderer renders gomponents nodes, either into a byte slice or into an
// echo response.
type Renderer interface {
	RenderComponent(node g.Node) ([]byte, error)
	RenderPage(c echo.Context, status int, node g.Node) error
}

// UniversalRenderer implements Renderer.
type UniversalRenderer struct{}

// NewUniversalRenderer creates a new UniversalRenderer instance.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// RenderComponent implements Renderer.
func (tr *UniversalRenderer) RenderComponent(node g.Node) ([]byte, error) {
	if node == nil {
		return nil, fmt.Errorf("failed to render component to bytes: nil node")
	}
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements Renderer. The node is rendered to a buffer first so
// a failure leaves the response uncommitted and the error handler can still
// write an error page.
func (tr *UniversalRenderer) RenderPage(c echo.Context, status int, node g.Node) error {
	b, err := tr.RenderComponent(node)
	if err != nil {
		slog.Error("Failed to render page", "error", err, "path", c.Request().URL.Path)
		return err
	}
	return c.HTMLBlob(status, b)
}
