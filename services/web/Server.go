// Package web serves the read-only query surface over the index store. It
// never writes; the indexer is the sole writer and the two only share the
// connection pool.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/melvincarvalho/nomen/errors"
	"github.com/melvincarvalho/nomen/stores/index"
	"github.com/melvincarvalho/nomen/ulogger"
	"github.com/ordishs/gocore"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var webStat = gocore.NewStat("web")

type Web struct {
	logger ulogger.Logger
	store  index.Store
	bind   string
}

func New(logger ulogger.Logger, store index.Store) *Web {
	initPrometheusMetrics()

	bind, _ := gocore.Config().Get("server_bind", "0.0.0.0:8080")

	return &Web{
		logger: logger,
		store:  store,
		bind:   bind,
	}
}

func (w *Web) Health(_ context.Context) (int, string, error) {
	return 0, "", nil
}

func (w *Web) Init(_ context.Context) error {
	return nil
}

// Start serves until ctx is done, then shuts the listener down gracefully.
func (w *Web) Start(ctx context.Context) error {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET},
	}))

	e.GET("/", w.Landing)
	e.GET("/faqs", w.Faqs)
	e.GET("/explorer", w.Explorer)
	e.GET("/explorer/:nsid", w.ExploreNsid)
	e.GET("/api/name", w.ApiName)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			w.logger.Errorf("[Web] shutdown: %v", err)
		}
	}()

	w.logger.Infof("[Web] listening on %s", w.bind)

	if err := e.Start(w.bind); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.NewServiceError("[Web] server failed", err)
	}

	return nil
}

func (w *Web) Stop(_ context.Context) error {
	return nil
}

func sendError(c echo.Context, status int, errCode int, err error) error {
	prometheusWebErrors.Inc()

	return c.JSON(status, map[string]interface{}{
		"code":  errCode,
		"error": err.Error(),
	})
}
