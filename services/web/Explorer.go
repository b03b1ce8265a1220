package web

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/melvincarvalho/nomen/errors"
	"github.com/ordishs/gocore"
)

// Explorer lists the confirmed top-level names.
func (w *Web) Explorer(c echo.Context) error {
	start := gocore.CurrentTime()
	stat := webStat.NewStat("Explorer")
	defer func() {
		stat.AddTime(start)
	}()

	prometheusWebExplorer.Inc()

	names, err := w.store.TopLevelNames(c.Request().Context())
	if err != nil {
		w.logger.Errorf("[Web] explorer: %v", err)
		return sendError(c, http.StatusInternalServerError, 1, errors.NewUnknownError("error listing names"))
	}

	return c.JSONPretty(http.StatusOK, names, "  ")
}

// ExploreNsid shows everything known about one nsid. An nsid without a name
// or without an on-chain anchor is not browsable yet.
func (w *Web) ExploreNsid(c echo.Context) error {
	start := gocore.CurrentTime()
	stat := webStat.NewStat("ExploreNsid")
	defer func() {
		stat.AddTime(start)
	}()

	prometheusWebExplorer.Inc()

	nsid := c.Param("nsid")

	details, err := w.store.NamespaceDetails(c.Request().Context(), nsid)
	if err != nil {
		w.logger.Errorf("[Web] explorer %s: %v", nsid, err)
		return sendError(c, http.StatusInternalServerError, 2, errors.NewUnknownError("error reading namespace"))
	}

	if details.Name == nil || details.Blockdata == nil {
		return sendError(c, http.StatusNotFound, 3, errors.NewNotFoundError("nsid not found"))
	}

	return c.JSONPretty(http.StatusOK, details, "  ")
}
