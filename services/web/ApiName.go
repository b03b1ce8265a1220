package web

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/melvincarvalho/nomen/errors"
	"github.com/melvincarvalho/nomen/stores/index"
	"github.com/ordishs/gocore"
)

// ApiName resolves a name to its records map.
func (w *Web) ApiName(c echo.Context) error {
	start := gocore.CurrentTime()
	stat := webStat.NewStat("ApiName")
	defer func() {
		stat.AddTime(start)
	}()

	prometheusWebAPIName.Inc()

	name := c.QueryParam("name")
	if name == "" {
		return sendError(c, http.StatusBadRequest, 1, errors.NewInvalidArgumentError("missing name parameter"))
	}

	records, err := w.store.NameRecords(c.Request().Context(), name)
	if err != nil {
		if errors.Is(err, index.ErrNotFound) {
			return sendError(c, http.StatusNotFound, 2, errors.NewNotFoundError("name not found"))
		}

		w.logger.Errorf("[Web] api/name %s: %v", name, err)

		return sendError(c, http.StatusInternalServerError, 3, errors.NewUnknownError("error resolving name"))
	}

	return c.JSON(http.StatusOK, records)
}
