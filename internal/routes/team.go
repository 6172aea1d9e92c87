package routes

import (
	"gearguard/internal/controllers"
	"gearguard/pkg/constants"
	"gearguard/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runTeamRouter(api *echo.Group, ctrl *controllers.TeamController, authMW *middleware.AuthMiddleware) {
	g := api.Group("/teams")
	editors := authMW.RequireRole(constants.TeamEditors...)

	g.GET("", ctrl.List)
	g.GET("/:id", ctrl.Get)
	g.POST("", ctrl.Create, authMW.Auth, editors)
	g.PUT("/:id", ctrl.Update, authMW.Auth, editors)
	g.DELETE("/:id", ctrl.Delete, authMW.Auth, authMW.RequireRole(constants.TeamRemovers...))

	g.POST("/:id/members", ctrl.AddMember, authMW.Auth, editors)
	g.DELETE("/:id/members/:userId", ctrl.RemoveMember, authMW.Auth, editors)
}
