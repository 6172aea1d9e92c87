package routes

import (
	"gearguard/internal/controllers"
	"gearguard/pkg/constants"

	"github.com/labstack/echo/v4"
)

func runReportRouter(api *echo.Group, ctrl *controllers.ReportController) {
	g := api.Group("/reports")

	g.GET("/"+constants.ReportMaintenanceByTeam, ctrl.MaintenanceByTeam)
	g.GET("/"+constants.ReportEquipmentStatus, ctrl.EquipmentStatus)
	g.GET("/"+constants.ReportTechnicianWorkload, ctrl.TechnicianWorkload)
}
