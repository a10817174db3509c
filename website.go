// Package website serves JXR's Blog homepage: a hero banner and a feature
// grid rendered from static configuration, built with Go, Echo and templ.
//
// The views package owns every component; this package wires configuration,
// embedded assets, middleware and routes around them.
package website

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/J-jxr/jxr-website/views"
)

// App is the site server. It wires together configuration, assets,
// middleware and the homepage handlers.
type App struct {
	Config   Config
	Echo     *echo.Echo
	Features []views.FeatureRecord

	assets       fs.FS
	customRoutes []func(*App)
	ready        bool
}

// New creates an App with the given configuration. Empty fields in cfg
// are filled from DefaultSiteConfig.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:   cfg,
		Echo:     echo.New(),
		Features: views.Features(),
		assets:   StaticFS(),
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Option configures additional App behavior.
type Option func(*App)

// WithFeatures replaces the feature grid content.
func WithFeatures(recs []views.FeatureRecord) Option {
	return func(a *App) {
		a.Features = recs
	}
}

// WithAssets serves static assets from fsys instead of the embedded ones.
func WithAssets(fsys fs.FS) Option {
	return func(a *App) {
		a.assets = fsys
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// setup validates configuration and assets, then registers middleware
// and routes. It runs once.
func (a *App) setup() error {
	if a.ready {
		return nil
	}
	if err := a.Config.Validate(); err != nil {
		return err
	}
	if err := ResolveIcons(a.assets, a.Features); err != nil {
		return fmt.Errorf("website: resolve feature icons: %w", err)
	}
	if err := ResolveSiteAssets(a.assets, a.Config.Site); err != nil {
		return fmt.Errorf("website: resolve site assets: %w", err)
	}

	a.Echo.Logger.SetLevel(parseLevel(a.Config.LogLevel))

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	a.ready = true
	return nil
}

// Start serves the site until ctx is cancelled, then shuts down gracefully.
func (a *App) Start(ctx context.Context) error {
	if err := a.setup(); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		a.Echo.Logger.Infof("serving %s at %s%s", a.Config.Site.Title, a.Config.Addr, views.BasePath(a.Config.Site))
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()
	a.Echo.Logger.Info("shutting down")
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("website: shutdown: %w", err)
	}
	return nil
}

// Close releases the listener immediately.
func (a *App) Close() error {
	return a.Echo.Close()
}

// Pages and assets answer HEAD as well as GET, like the static hosts the site is
// deployed to.
var readMethods = []string{http.MethodGet, http.MethodHead}

func (a *App) setupRoutes() {
	e := a.Echo
	base := views.BasePath(a.Config.Site)

	e.Match(readMethods, base+"img/*", echo.StaticDirectoryHandler(echo.MustSubFS(a.assets, "img"), false))
	e.Match(readMethods, base+"css/*", echo.StaticDirectoryHandler(echo.MustSubFS(a.assets, "css"), false))
	e.Match(readMethods, "/favicon.ico", a.handleFavicon)
	e.Match(readMethods, "/favicon.svg", a.handleFavicon)
	e.Match(readMethods, "/robots.txt", a.handleRobots)

	e.Match(readMethods, base, a.handleHome)
	if base != "/" {
		e.Match(readMethods, strings.TrimSuffix(base, "/"), a.handleHome)
		e.Match(readMethods, "/", a.handleRootRedirect)
	}
}

func parseLevel(level string) log.Lvl {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
