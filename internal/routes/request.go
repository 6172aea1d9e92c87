package routes

import (
	"gearguard/internal/controllers"
	"gearguard/pkg/constants"
	"gearguard/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runRequestRouter(api *echo.Group, ctrl *controllers.RequestController, authMW *middleware.AuthMiddleware) {
	g := api.Group("/requests")
	editors := authMW.RequireRole(constants.RequestEditors...)

	g.GET("", ctrl.List)
	g.GET("/:id", ctrl.Get)
	g.POST("", ctrl.Create, authMW.Auth, authMW.RequireRole(constants.RequestCreators...))
	g.PUT("/:id", ctrl.Update, authMW.Auth, editors)
	g.PATCH("/:id/status", ctrl.UpdateStatus, authMW.Auth, editors)
	g.POST("/:id/comments", ctrl.AddComment, authMW.Auth)
	g.DELETE("/:id", ctrl.Delete, authMW.Auth, authMW.RequireRole(constants.RequestRemovers...))
}
