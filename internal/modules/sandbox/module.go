// Package sandbox is the admin user management feature.
package sandbox

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

type Module struct {
	module.BaseModule
}

func New() *Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "sandbox"
}

func (m *Module) Register(i do.Injector) error {
	do.Provide(i, func(i do.Injector) (*Handler, error) {
		users, err := do.Invoke[*service.Users](i)
		if err != nil {
			return nil, err
		}
		pages, err := do.Invoke[*handlers.Pages](i)
		if err != nil {
			return nil, err
		}
		return NewHandler(users, pages), nil
	})
	return nil
}

func (m *Module) Boot(ctx context.Context, group *echo.Group, i do.Injector) error {
	h, err := do.Invoke[*Handler](i)
	if err != nil {
		return err
	}

	admin := group.Group("/sandbox", middleware.RequireRole(auth.CanAdmin, "Must Login And Be An Admin"))
	admin.GET("", h.List)
	admin.POST("/users/:id/business", h.ToggleBusiness)
	admin.POST("/users/:id/delete", h.Delete)
	return nil
}
