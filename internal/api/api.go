// Package api contains the JSON REST surface for users and courses.
package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/syllabusapp/syllabus/internal/config"
	"github.com/syllabusapp/syllabus/internal/storage"
)

// New creates the API server.
func New(cfg *config.Config, logger *slog.Logger, store storage.Store) *echo.Echo {
	srv := echo.New()

	srv.HideBanner = true
	srv.HidePort = true
	srv.Logger.SetLevel(log.OFF)

	if cfg.DevMode {
		srv.Debug = true
		srv.Use(logRequests(logger))
	}

	srv.Use(
		middleware.Recover(),
		middleware.Decompress(),
		middleware.Gzip(),
		middleware.Secure(),
		middleware.RequestID(),
	)

	// Echo's own logger is off; surface handler faults through slog instead.
	// HTTPErrors carry intentional client-facing responses and are not
	// server faults.
	srv.HTTPErrorHandler = func(err error, c echo.Context) {
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) {
			logger.ErrorContext(c.Request().Context(),
				"unhandled error",
				slog.String("method", c.Request().Method),
				slog.String("uri", c.Request().RequestURI),
				slog.Any("error", err),
			)
		}
		srv.DefaultHTTPErrorHandler(err, c)
	}

	handler{logger: logger, store: store}.register(srv)
	return srv
}

// logRequests emits one debug line per request. It wraps outside the rest of
// the middleware chain, so by the time it logs, RequestID has stamped the
// response header and the status is final.
func logRequests(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req, res := c.Request(), c.Response()
			attrs := []slog.Attr{
				slog.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
				slog.String("method", req.Method),
				slog.String("route", c.Path()),
				slog.String("uri", req.RequestURI),
				slog.Int("status", res.Status),
				slog.Duration("latency", time.Since(start)),
			}
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
			}
			logger.LogAttrs(req.Context(), slog.LevelDebug, "request served", attrs...)
			return err
		}
	}
}
