// Package cards is the card browsing and card management feature.
package cards

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/bcard/internal/auth"
	"github.com/nfrund/bcard/internal/handlers"
	"github.com/nfrund/bcard/internal/middleware"
	"github.com/nfrund/bcard/internal/module"
	"github.com/nfrund/bcard/internal/service"
	"github.com/samber/do/v2"
)

// Module mounts the home, details, favorites and my-cards pages.
type Module struct {
	module.BaseModule
}

// New creates the cards module.
func New() *Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "cards"
}

// Register provides the card Handler.
func (m *Module) Register(i do.Injector) error {
	do.Provide(i, func(i do.Injector) (*Handler, error) {
		cardSvc, err := do.Invoke[*service.Cards](i)
		if err != nil {
			return nil, err
		}
		pages, err := do.Invoke[*handlers.Pages](i)
		if err != nil {
			return nil, err
		}
		return NewHandler(cardSvc, pages), nil
	})
	return nil
}

// Boot mounts the routes.
func (m *Module) Boot(ctx context.Context, group *echo.Group, i do.Injector) error {
	h, err := do.Invoke[*Handler](i)
	if err != nil {
		return err
	}

	requireAuth := middleware.RequireAuth()
	requireBusiness := middleware.RequireRole(auth.CanManageOwnCards, "Business Account Required")

	group.GET("/", h.Home)
	group.GET("/cards/:id", h.Details)
	group.GET("/favorites", h.Favorites, requireAuth)
	group.POST("/cards/:id/like", h.Like, requireAuth)

	group.GET("/my-cards", h.MyCards, requireBusiness)
	group.GET("/my-cards/new", h.New, requireBusiness)
	group.POST("/my-cards", h.Create, requireBusiness)

	// Ownership is checked per card by the service.
	group.GET("/cards/:id/edit", h.Edit, requireAuth)
	group.POST("/cards/:id", h.Update, requireAuth)
	group.POST("/cards/:id/delete", h.Delete, requireAuth)
	return nil
}
