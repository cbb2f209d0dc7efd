package middleware

import (
	"crypto/subtle"
	"log/slog"

	"civicradar/config"
	"civicradar/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HeaderDispatchToken is accepted as an alternative to a bearer token.
const HeaderDispatchToken = "X-Dispatch-Token"

// TriggerTokenMiddleware guards the internal endpoints used by the report
// service. With no token configured every request is refused.
type TriggerTokenMiddleware struct {
	token  []byte
	logger *slog.Logger
}

func NewTriggerTokenMiddleware(cfg *config.Config, logger *slog.Logger) *TriggerTokenMiddleware {
	m := &TriggerTokenMiddleware{logger: logger}
	if cfg.Dispatch != nil && cfg.Dispatch.TriggerToken != "" {
		m.token = []byte(cfg.Dispatch.TriggerToken)
	} else {
		logger.Warn("Dispatch trigger token not configured, internal endpoints are disabled")
	}

	return m
}

func (m *TriggerTokenMiddleware) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		presented := c.Request().Header.Get(HeaderDispatchToken)
		if presented == "" {
			presented, _ = bearerToken(c)
		}

		if len(m.token) == 0 || subtle.ConstantTimeCompare([]byte(presented), m.token) != 1 {
			return response.Unauthorized(c, "INVALID_TRIGGER_TOKEN", "Missing or invalid dispatch token")
		}

		return next(c)
	}
}
