package server

import (
	"context"
	"fmt"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/bcard/internal/auth"
	"github.com/nfrund/bcard/internal/config"
	"github.com/nfrund/bcard/internal/handlers"
	"github.com/nfrund/bcard/internal/middleware"
	"github.com/nfrund/bcard/internal/module"
	"github.com/nfrund/bcard/internal/pubsub"
	"github.com/nfrund/bcard/internal/validation"
	"github.com/nfrund/bcard/web"
	"github.com/samber/do/v2"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	injector *do.RootScope
	modules  []module.Module
	stop     context.CancelFunc
}

// New creates a Server from the services in injector. Routes are added by
// RegisterRoutes.
func New(cfg config.Provider, injector *do.RootScope, modules []module.Module) (*Server, error) {
	validator, err := do.Invoke[*validation.Validator](injector)
	if err != nil {
		return nil, fmt.Errorf("validator: %w", err)
	}
	pages, err := do.Invoke[*handlers.Pages](injector)
	if err != nil {
		return nil, fmt.Errorf("pages: %w", err)
	}
	authStore, err := do.Invoke[*auth.Store](injector)
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator
	setupErrorHandling(e, pages)

	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger)
	e.Use(middleware.AccessLog())

	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = auth.CookieOptions(cfg.IsProduction())
	e.Use(session.Middleware(store))
	e.Use(middleware.Session(authStore))

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	return &Server{
		E:        e,
		Cfg:      cfg,
		injector: injector,
		modules:  modules,
	}, nil
}

// startBackground runs the subscribers that live as long as the server.
func (s *Server) startBackground() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.stop = cancel

	activity, err := do.Invoke[*pubsub.ActivityLog](s.injector)
	if err != nil {
		return fmt.Errorf("activity log: %w", err)
	}
	return activity.Start(ctx)
}
