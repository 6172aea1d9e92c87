package controllers

import (
	"net/http"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(equipmentService services.EquipmentServiceInterface, logger *zap.Logger) *EquipmentController {
	return &EquipmentController{equipmentService: equipmentService, logger: logger}
}

func (ctrl *EquipmentController) List(c echo.Context) error {
	var filter types.EquipmentFilter
	if v := c.QueryParam("category"); v != "" {
		filter.Category = &v
	}
	if v := c.QueryParam("department"); v != "" {
		filter.Department = &v
	}
	scrapped, err := utils.ParseOptionalBool(c.QueryParam("is_scrapped"))
	if err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid is_scrapped"), ctrl.logger)
	}
	filter.IsScrapped = scrapped

	list, err := ctrl.equipmentService.List(c.Request().Context(), filter)
	if err != nil {
		ctrl.logger.Error("ListEquipment: failed", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessList(c, list, "equipment list")
}

func (ctrl *EquipmentController) Get(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	detail, err := ctrl.equipmentService.Get(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, detail, "equipment", http.StatusOK)
}

func (ctrl *EquipmentController) Create(c echo.Context) error {
	var payload dto.CreateEquipmentDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("CreateEquipment: bind failed", zap.Error(err))
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid equipment payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	id, err := ctrl.equipmentService.Create(c.Request().Context(), payload)
	if err != nil {
		ctrl.logger.Warn("CreateEquipment: failed", zap.String("serial", payload.SerialNumber), zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, dto.CreatedDTO{ID: id}, "equipment created", http.StatusCreated)
}

func (ctrl *EquipmentController) Update(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.UpdateEquipmentDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("UpdateEquipment: bind failed", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid equipment payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.equipmentService.Update(c.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "equipment updated", http.StatusOK)
}

func (ctrl *EquipmentController) Delete(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := ctrl.equipmentService.Delete(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "equipment deleted", http.StatusOK)
}
