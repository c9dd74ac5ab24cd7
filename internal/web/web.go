// Package web serves the embedded browser client. The client drives
// the booking funnel (theater, date, time, seats, customer details)
// against the JSON API and is compiled into the binary so the server
// ships as a single file next to its database.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

//go:embed static
var content embed.FS

// Register mounts the static client with an HTML5 fallback so deep
// links into client views resolve to index.html. API and health routes
// are skipped.
func Register(e *echo.Echo) error {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		return err
	}
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Filesystem: http.FS(sub),
		HTML5:      true,
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			return strings.HasPrefix(p, "/api/") || p == "/healthz"
		},
	}))
	return nil
}
