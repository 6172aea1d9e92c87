package routes

import (
	"gearguard/internal/controllers"
	"gearguard/pkg/constants"
	"gearguard/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runEquipmentRouter(api *echo.Group, ctrl *controllers.EquipmentController, authMW *middleware.AuthMiddleware) {
	g := api.Group("/equipment")

	g.GET("", ctrl.List)
	g.GET("/:id", ctrl.Get)
	g.POST("", ctrl.Create, authMW.Auth, authMW.RequireRole(constants.EquipmentEditors...))
	g.PUT("/:id", ctrl.Update, authMW.Auth, authMW.RequireRole(constants.EquipmentEditors...))
	g.DELETE("/:id", ctrl.Delete, authMW.Auth, authMW.RequireRole(constants.EquipmentRemovers...))
}
