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

type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler ingests tracker positions and serves the region catalogue.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// ReportLocation stores the caller's latest position.
func (h *LocationHandler) ReportLocation(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.ReportLocationInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid location payload")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	location, err := h.locationUC.ReportLocation(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location)
}

func (h *LocationHandler) ListRegions(c echo.Context) error {
	regions, err := h.locationUC.ListRegions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, regions)
}

// GetRegionQR returns a PNG QR code linking to the report behind the region.
func (h *LocationHandler) GetRegionQR(c echo.Context) error {
	regionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_REGION_ID", "Region ID must be a UUID")
	}

	png, err := h.locationUC.GenerateRegionQR(c.Request().Context(), regionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
