package handler

import (
	"log/slog"
	"net/http"

	"civicradar/internal/delivery/api/middleware"
	"civicradar/internal/delivery/api/response"
	"civicradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type DispatchHandlerParams struct {
	fx.In

	DispatchUC usecase.DispatchUsecase
	Logger     *slog.Logger
}

// DispatchHandler triggers proximity notifications.
type DispatchHandler struct {
	dispatchUC usecase.DispatchUsecase
	logger     *slog.Logger
}

func NewDispatchHandler(params DispatchHandlerParams) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: params.DispatchUC,
		logger:     params.Logger,
	}
}

// ReportCreatedRequest optionally overrides the dispatch radius.
type ReportCreatedRequest struct {
	RadiusMeters *float64 `json:"radiusMeters,omitempty"`
}

// TestNotificationRequest carries an optional custom body.
type TestNotificationRequest struct {
	Message string `json:"message" validate:"max=512"`
}

// Dispatch runs a proximity dispatch synchronously and returns its summary.
func (h *DispatchHandler) Dispatch(c echo.Context) error {
	var req usecase.DispatchInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid dispatch payload")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.dispatchUC.DispatchProximity(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// ReportCreated queues a dispatch for the dispatch worker.
func (h *DispatchHandler) ReportCreated(c echo.Context) error {
	var req ReportCreatedRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "Invalid report event payload")
		}
	}

	input := &usecase.DispatchInput{
		ExperienceID: c.Param("id"),
		RadiusMeters: req.RadiusMeters,
	}
	if err := h.dispatchUC.EnqueueProximityDispatch(c.Request().Context(), input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{
		"experienceId": input.ExperienceID,
		"status":       "queued",
	})
}

// SendTest pushes a diagnostic notification to the caller's own devices.
func (h *DispatchHandler) SendTest(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req TestNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid test notification payload")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.dispatchUC.SendTestNotification(c.Request().Context(), userID, req.Message)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
