// Package router wires the API handlers to their routes.
package router

import (
	"civicradar/internal/delivery/api/middleware"
	"civicradar/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler     *handler.LocationHandler
	SubscriptionHandler *handler.SubscriptionHandler
	DispatchHandler     *handler.DispatchHandler
	AuthMiddleware      *middleware.AuthMiddleware
	TriggerToken        *middleware.TriggerTokenMiddleware
}

type router struct {
	locationHandler     *handler.LocationHandler
	subscriptionHandler *handler.SubscriptionHandler
	dispatchHandler     *handler.DispatchHandler
	authMiddleware      *middleware.AuthMiddleware
	triggerToken        *middleware.TriggerTokenMiddleware
}

func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler:     params.LocationHandler,
		subscriptionHandler: params.SubscriptionHandler,
		dispatchHandler:     params.DispatchHandler,
		authMiddleware:      params.AuthMiddleware,
		triggerToken:        params.TriggerToken,
	}
}

// RegisterRoutes sets up every API route.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Public region catalogue, read by trackers and printed notices
	regionsGroup := apiV1.Group("/regions")
	{
		regionsGroup.GET("", r.locationHandler.ListRegions)
		regionsGroup.GET("/:id/qr", r.locationHandler.GetRegionQR)
	}

	authed := apiV1.Group("", r.authMiddleware.Authenticate)
	{
		authed.POST("/locations", r.locationHandler.ReportLocation)

		authed.GET("/preferences", r.subscriptionHandler.GetPreferences)
		authed.PUT("/preferences", r.subscriptionHandler.UpdatePreferences)
	}

	pushGroup := authed.Group("/push")
	{
		pushGroup.POST("/subscribe", r.subscriptionHandler.Subscribe)
		pushGroup.POST("/unsubscribe", r.subscriptionHandler.Unsubscribe)
		pushGroup.GET("/subscriptions", r.subscriptionHandler.ListSubscriptions)
		pushGroup.POST("/test", r.dispatchHandler.SendTest)
	}

	// Called by the report service with the shared dispatch token
	internal := e.Group("/internal", r.triggerToken.Require)
	{
		internal.POST("/dispatch", r.dispatchHandler.Dispatch)
		internal.POST("/reports/:id/created", r.dispatchHandler.ReportCreated)
		internal.GET("/push/subscriptions", r.subscriptionHandler.ListAllSubscriptions)
		internal.DELETE("/push/subscriptions/:id", r.subscriptionHandler.RemoveSubscription)
	}
}
