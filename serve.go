package docsite

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Preview serves the generated output directory over HTTP for local review
// of the site before pushing. Blocks until the server stops.
func Preview(outDir, addr string) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Static("/", outDir)
	return e.Start(addr)
}
