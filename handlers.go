package website

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/J-jxr/jxr-website/views"
)

func (a *App) handleHome(c echo.Context) error {
	return Render(c, views.Home(a.Config.Site, a.Features))
}

func (a *App) handleRootRedirect(c echo.Context) error {
	return c.Redirect(http.StatusFound, views.BasePath(a.Config.Site))
}

func (a *App) handleFavicon(c echo.Context) error {
	name := strings.TrimPrefix(a.Config.Site.Favicon, "/")
	if name == "" || views.IsExternal(name) {
		return echo.ErrNotFound
	}
	return echo.StaticFileHandler(name, a.assets)(c)
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nAllow: /\n"
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.Config.Site))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.Config.Site))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
