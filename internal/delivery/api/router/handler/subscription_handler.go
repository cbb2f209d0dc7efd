package handler

import (
	"log/slog"
	"net/http"

	"civicradar/internal/delivery/api/middleware"
	"civicradar/internal/delivery/api/response"
	"civicradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler manages push subscriptions and notification preferences.
// User IDs come from the verified token only.
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// UnsubscribeRequest names the endpoint to drop.
type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint" validate:"required"`
}

func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.SubscribeInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid subscription payload")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	sub, err := h.subscriptionUC.Subscribe(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sub)
}

func (h *SubscriptionHandler) Unsubscribe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UnsubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid unsubscribe payload")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.subscriptionUC.Unsubscribe(c.Request().Context(), userID, req.Endpoint); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"unsubscribed": true})
}

// ListSubscriptions returns the caller's own subscriptions.
func (h *SubscriptionHandler) ListSubscriptions(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	subs, err := h.subscriptionUC.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subs)
}

func (h *SubscriptionHandler) GetPreferences(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pref, err := h.subscriptionUC.GetPreferences(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pref)
}

func (h *SubscriptionHandler) UpdatePreferences(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.UpdatePreferencesInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid preferences payload")
	}

	pref, err := h.subscriptionUC.UpdatePreferences(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pref)
}

// ListAllSubscriptions is the diagnostics view over every user.
func (h *SubscriptionHandler) ListAllSubscriptions(c echo.Context) error {
	subs, err := h.subscriptionUC.ListAll(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subs)
}

// RemoveSubscription deletes one subscription by ID.
func (h *SubscriptionHandler) RemoveSubscription(c echo.Context) error {
	subscriptionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_SUBSCRIPTION_ID", "Subscription ID must be a UUID")
	}

	if err := h.subscriptionUC.Remove(c.Request().Context(), subscriptionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
