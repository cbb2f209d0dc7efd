// Package middleware holds echo middleware shared by the API and the dispatch worker.
package middleware

import (
	"context"
	"log/slog"
	"time"

	"civicradar/config"
	deliverycontext "civicradar/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestScope tags every request with an ID and a request-scoped logger,
// and logs the finished request when debug logging is on.
type RequestScope struct {
	logger *slog.Logger
	debug  bool
}

// NewRequestScope builds the middleware from the environment config.
func NewRequestScope(logger *slog.Logger, cfg *config.Config) *RequestScope {
	return &RequestScope{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// Handle is the echo.MiddlewareFunc.
func (m *RequestScope) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))
		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		err := next(c)
		if m.debug {
			m.logRequest(c, reqLogger, start, err)
		}

		return err
	}
}

func (m *RequestScope) logRequest(c echo.Context, logger *slog.Logger, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}
	if req.URL.RawQuery != "" {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case res.Status >= 500:
		level = slog.LevelError
	case res.Status >= 400:
		level = slog.LevelWarn
	}

	logger.LogAttrs(context.Background(), level, "http request", fields...)
}
