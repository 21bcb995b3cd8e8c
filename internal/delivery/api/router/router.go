// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"huntlog/internal/delivery/api/middleware"
	"huntlog/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	HuntHandler       *handler.HuntHandler
	EncounterHandler  *handler.EncounterHandler
	DelegateHandler   *handler.DelegateHandler
	FeedHandler       *handler.FeedHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	huntHandler       *handler.HuntHandler
	encounterHandler  *handler.EncounterHandler
	delegateHandler   *handler.DelegateHandler
	feedHandler       *handler.FeedHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		huntHandler:       params.HuntHandler,
		encounterHandler:  params.EncounterHandler,
		delegateHandler:   params.DelegateHandler,
		feedHandler:       params.FeedHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Every API route sees the caller, anonymous or not
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.sessionMiddleware.LoadSession)
	requireSession := r.sessionMiddleware.RequireSession

	authGroup := apiV1.Group("/auth")
	{
		authGroup.GET("/login", r.authHandler.Login)
		authGroup.GET("/callback", r.authHandler.Callback)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, requireSession)
	}

	// Reads are public; writes need a session and are tier-checked by the usecases
	huntsGroup := apiV1.Group("/hunts")
	{
		huntsGroup.POST("", r.huntHandler.CreateHunt, requireSession)
		huntsGroup.GET("/:huntId", r.huntHandler.GetHunt)
		huntsGroup.PATCH("/:huntId/settings", r.huntHandler.UpdateSettings, requireSession)
		huntsGroup.PUT("/:huntId/status", r.huntHandler.ChangeStatus, requireSession)
		huntsGroup.GET("/:huntId/permissions", r.huntHandler.Permissions)
		huntsGroup.GET("/:huntId/events", r.feedHandler.Stream)

		huntsGroup.GET("/:huntId/encounters", r.encounterHandler.ListEncounters)
		huntsGroup.POST("/:huntId/encounters", r.encounterHandler.AddEncounter, requireSession)
	}

	encountersGroup := apiV1.Group("/encounters", requireSession)
	{
		encountersGroup.PUT("/:encounterId", r.encounterHandler.UpdateEncounter)
		encountersGroup.DELETE("/:encounterId", r.encounterHandler.DeleteEncounter)
	}

	delegatesGroup := apiV1.Group("/delegates", requireSession)
	{
		delegatesGroup.GET("", r.delegateHandler.ListDelegates)
		delegatesGroup.PUT("/:delegateId", r.delegateHandler.GrantDelegate)
		delegatesGroup.DELETE("/:delegateId", r.delegateHandler.RevokeDelegate)
	}

	apiV1.GET("/owners/:ownerId/hunts", r.huntHandler.ListOwnerHunts)
}
