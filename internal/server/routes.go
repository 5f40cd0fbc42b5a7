package server

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/bcard/internal/handlers"
	"github.com/nfrund/bcard/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/do/v2"
	"golang.org/x/time/rate"
)

// RegisterRoutes sets up the core routes, registers and boots every module,
// and starts the background subscribers.
func (s *Server) RegisterRoutes(ctx context.Context) error {
	authHandler, err := do.Invoke[*handlers.AuthHandler](s.injector)
	if err != nil {
		return fmt.Errorf("auth handler: %w", err)
	}
	siteHandler, err := do.Invoke[*handlers.SiteHandler](s.injector)
	if err != nil {
		return fmt.Errorf("site handler: %w", err)
	}
	// Ten attempts a minute per client, five at once.
	rateLimiter := middleware.RateLimiter(rate.Every(6*time.Second), 5)

	s.E.GET("/login", authHandler.LoginGet)
	s.E.POST("/login", authHandler.LoginPost, rateLimiter)
	s.E.GET("/register", authHandler.RegisterGet)
	s.E.POST("/register", authHandler.RegisterPost, rateLimiter)
	s.E.POST("/logout", authHandler.Logout)

	s.E.GET("/about", siteHandler.AboutGet)
	s.E.POST("/theme", siteHandler.ThemePost)
	s.E.GET("/health", siteHandler.Health)
	s.E.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	for _, m := range s.modules {
		if err := m.Register(s.injector); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}
	root := s.E.Group("")
	for _, m := range s.modules {
		if err := m.Boot(ctx, root, s.injector); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
	}

	return s.startBackground()
}
