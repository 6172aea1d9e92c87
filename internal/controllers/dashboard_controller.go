package controllers

import (
	"net/http"

	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	calendarService  services.CalendarServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(
	dashboardService services.DashboardServiceInterface,
	calendarService services.CalendarServiceInterface,
	logger *zap.Logger,
) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		calendarService:  calendarService,
		logger:           logger,
	}
}

func (ctrl *DashboardController) Stats(c echo.Context) error {
	stats, err := ctrl.dashboardService.GetStats(c.Request().Context())
	if err != nil {
		ctrl.logger.Error("DashboardStats: failed", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, stats, "dashboard statistics", http.StatusOK)
}

func (ctrl *DashboardController) CalendarEvents(c echo.Context) error {
	start, err := utils.ParseOptionalTime(c.QueryParam("start_date"))
	if err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid start_date"), ctrl.logger)
	}
	end, err := utils.ParseOptionalTime(c.QueryParam("end_date"))
	if err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid end_date"), ctrl.logger)
	}

	list, err := ctrl.calendarService.Events(c.Request().Context(), types.DateRange{Start: start, End: end})
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessList(c, list, "calendar events")
}
