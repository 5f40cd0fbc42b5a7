// Package app wires the application's shared services into a samber/do
// injector. The server and the tests resolve everything from it.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"
	"github.com/nfrund/bcard/internal/apiclient"
	"github.com/nfrund/bcard/internal/auth"
	"github.com/nfrund/bcard/internal/cache"
	"github.com/nfrund/bcard/internal/config"
	"github.com/nfrund/bcard/internal/handlers"
	"github.com/nfrund/bcard/internal/pubsub"
	"github.com/nfrund/bcard/internal/rendering"
	"github.com/nfrund/bcard/internal/service"
	"github.com/nfrund/bcard/internal/validation"
	goredis "github.com/redis/go-redis/v9"
	"github.com/samber/do/v2"
	"go.opentelemetry.io/otel/trace"
)

// Telemetry holds the event bus tracer and the exporter shutdown hook.
type Telemetry struct {
	Tracer   trace.Tracer
	shutdown func(context.Context)
}

// Shutdown flushes pending spans. It is called by the injector on shutdown.
func (t *Telemetry) Shutdown() error {
	if t.shutdown != nil {
		t.shutdown(context.Background())
	}
	return nil
}

// Bus wraps the watermill bridge so the injector closes it on shutdown.
type Bus struct {
	*pubsub.WatermillBridge
}

// Shutdown closes the underlying channel.
func (b *Bus) Shutdown() error {
	return b.Close()
}

// Redis wraps the optional redis client so the injector closes it on shutdown.
type Redis struct {
	*goredis.Client
}

// Shutdown closes the connection pool.
func (r *Redis) Shutdown() error {
	return r.Close()
}

// NewInjector provides every shared service for cfg. Services are built
// lazily on first Invoke.
func NewInjector(cfg config.Provider) *do.RootScope {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.ProvideValue[clockwork.Clock](i, clockwork.NewRealClock())
	do.Provide(i, provideTelemetry)
	do.Provide(i, provideBus)
	do.Provide(i, provideAPIClient)
	do.Provide(i, provideRedis)
	do.Provide(i, provideCardLists)
	do.Provide(i, provideCardService)
	do.Provide(i, provideUserService)
	do.Provide(i, func(do.Injector) (*auth.Store, error) { return auth.NewStore(), nil })
	do.Provide(i, func(do.Injector) (*validation.Validator, error) { return validation.New(), nil })
	do.Provide(i, func(do.Injector) (*rendering.UniversalRenderer, error) { return rendering.NewUniversalRenderer(), nil })
	do.Provide(i, providePages)
	do.Provide(i, provideAuthHandler)
	do.Provide(i, provideSiteHandler)
	do.Provide(i, provideActivityLog)

	return i
}

func provideTelemetry(i do.Injector) (*Telemetry, error) {
	tracer, shutdown, err := pubsub.SetupTracing(context.Background(), pubsub.LoadTracingConfigFromEnv())
	if err != nil {
		return nil, fmt.Errorf("tracing: %w", err)
	}
	return &Telemetry{Tracer: tracer, shutdown: shutdown}, nil
}

func provideBus(i do.Injector) (*Bus, error) {
	tel, err := do.Invoke[*Telemetry](i)
	if err != nil {
		return nil, err
	}
	return &Bus{WatermillBridge: pubsub.NewWatermillBridge(tel.Tracer)}, nil
}

func provideAPIClient(i do.Injector) (*apiclient.Client, error) {
	cfg := do.MustInvoke[config.Provider](i)
	return apiclient.New(cfg.GetAPIBaseURL(), cfg.GetAPITimeout()), nil
}

func provideCardLists(i do.Injector) (cache.CardLists, error) {
	cfg := do.MustInvoke[config.Provider](i)
	switch cfg.GetCacheBackend() {
	case "redis":
		rdb, err := do.Invoke[*Redis](i)
		if err != nil {
			return nil, err
		}
		slog.Info("Using redis card cache", "ttl", cfg.GetCacheTTL())
		return cache.NewRedis(rdb.Client, cfg.GetCacheTTL()), nil
	default:
		slog.Info("Using in-memory card cache", "ttl", cfg.GetCacheTTL())
		return cache.NewMemory(do.MustInvoke[clockwork.Clock](i), cfg.GetCacheTTL()), nil
	}
}

func provideRedis(i do.Injector) (*Redis, error) {
	cfg := do.MustInvoke[config.Provider](i)
	rdb, err := cache.NewRedisClient(context.Background(), cfg.GetRedisURL())
	if err != nil {
		return nil, err
	}
	return &Redis{Client: rdb}, nil
}

func provideCardService(i do.Injector) (*service.Cards, error) {
	api, err := do.Invoke[*apiclient.Client](i)
	if err != nil {
		return nil, err
	}
	lists, err := do.Invoke[cache.CardLists](i)
	if err != nil {
		return nil, err
	}
	bus, err := do.Invoke[*Bus](i)
	if err != nil {
		return nil, err
	}
	return service.NewCards(api, lists, bus), nil
}

func provideUserService(i do.Injector) (*service.Users, error) {
	api, err := do.Invoke[*apiclient.Client](i)
	if err != nil {
		return nil, err
	}
	bus, err := do.Invoke[*Bus](i)
	if err != nil {
		return nil, err
	}
	return service.NewUsers(api, bus), nil
}

func providePages(i do.Injector) (*handlers.Pages, error) {
	return handlers.NewPages(do.MustInvoke[*auth.Store](i), do.MustInvoke[*rendering.UniversalRenderer](i)), nil
}

func provideAuthHandler(i do.Injector) (*handlers.AuthHandler, error) {
	return handlers.NewAuthHandler(
		do.MustInvoke[*service.Users](i),
		do.MustInvoke[*auth.Store](i),
		do.MustInvoke[*handlers.Pages](i),
	), nil
}

func provideSiteHandler(i do.Injector) (*handlers.SiteHandler, error) {
	return handlers.NewSiteHandler(do.MustInvoke[*auth.Store](i), do.MustInvoke[*handlers.Pages](i)), nil
}

func provideActivityLog(i do.Injector) (*pubsub.ActivityLog, error) {
	bus, err := do.Invoke[*Bus](i)
	if err != nil {
		return nil, err
	}
	return pubsub.NewActivityLog(bus), nil
}
