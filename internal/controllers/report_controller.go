package controllers

import (
	"fmt"
	"net/http"
	"time"

	"gearguard/internal/services"
	"gearguard/pkg/types"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

var (
	teamReportHeaders       = []interface{}{"ID", "Team", "Total", "New", "In progress", "Completed", "Scrapped"}
	equipmentReportHeaders  = []interface{}{"Category", "Total", "Active", "Scrapped", "Warranty expired"}
	technicianReportHeaders = []interface{}{"ID", "Technician", "Email", "Assigned", "Active", "Completed"}
)

func (ctrl *ReportController) MaintenanceByTeam(c echo.Context) error {
	rows, err := ctrl.reportService.MaintenanceByTeam(c.Request().Context())
	if err != nil {
		ctrl.logger.Error("MaintenanceByTeam: failed", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if wantsXLSX(c) {
		return respondWithXLSX(c, "maintenance_by_team", teamReportHeaders, rows, func(r types.TeamMaintenanceRow) []interface{} {
			return []interface{}{r.ID, r.Name, r.TotalRequests, r.NewRequests, r.InProgress, r.Completed, r.Scrapped}
		})
	}
	return utils.SuccessList(c, rows, "maintenance by team")
}

func (ctrl *ReportController) EquipmentStatus(c echo.Context) error {
	rows, err := ctrl.reportService.EquipmentStatus(c.Request().Context())
	if err != nil {
		ctrl.logger.Error("EquipmentStatus: failed", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if wantsXLSX(c) {
		return respondWithXLSX(c, "equipment_status", equipmentReportHeaders, rows, func(r types.EquipmentCategoryRow) []interface{} {
			return []interface{}{r.Category, r.Total, r.Active, r.Scrapped, r.WarrantyExpired}
		})
	}
	return utils.SuccessList(c, rows, "equipment status")
}

func (ctrl *ReportController) TechnicianWorkload(c echo.Context) error {
	rows, err := ctrl.reportService.TechnicianWorkload(c.Request().Context())
	if err != nil {
		ctrl.logger.Error("TechnicianWorkload: failed", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if wantsXLSX(c) {
		return respondWithXLSX(c, "technician_workload", technicianReportHeaders, rows, func(r types.TechnicianWorkloadRow) []interface{} {
			return []interface{}{r.ID, r.Name, r.Email, r.TotalAssigned, r.ActiveTasks, r.CompletedTasks}
		})
	}
	return utils.SuccessList(c, rows, "technician workload")
}

func wantsXLSX(c echo.Context) bool {
	return c.QueryParam("format") == "xlsx"
}

func respondWithXLSX[T any](c echo.Context, name string, headers []interface{}, rows []T, toRow func(T) []interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Report"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", lastHeader, style)

	for i, item := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := toRow(item)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	f.SetColWidth(sheet, "A", lastCol, 18)

	fileName := fmt.Sprintf("%s_%s.xlsx", name, time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentType, xlsxContentType)
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response().Writer)
}
