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

type RequestController struct {
	requestService services.RequestServiceInterface
	logger         *zap.Logger
}

func NewRequestController(requestService services.RequestServiceInterface, logger *zap.Logger) *RequestController {
	return &RequestController{requestService: requestService, logger: logger}
}

func (ctrl *RequestController) List(c echo.Context) error {
	var filter types.RequestFilter
	if v := c.QueryParam("status"); v != "" {
		filter.Status = &v
	}
	if v := c.QueryParam("request_type"); v != "" {
		filter.RequestType = &v
	}
	var err error
	if filter.EquipmentID, err = utils.ParseOptionalUint(c.QueryParam("equipment_id")); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid equipment_id"), ctrl.logger)
	}
	if filter.TeamID, err = utils.ParseOptionalUint(c.QueryParam("team_id")); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid team_id"), ctrl.logger)
	}

	list, err := ctrl.requestService.List(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessList(c, list, "requests")
}

func (ctrl *RequestController) Get(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	detail, err := ctrl.requestService.Get(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, detail, "request", http.StatusOK)
}

func (ctrl *RequestController) Create(c echo.Context) error {
	var payload dto.CreateRequestDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("CreateRequest: bind failed", zap.Error(err))
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid request payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	id, err := ctrl.requestService.Create(c.Request().Context(), payload)
	if err != nil {
		ctrl.logger.Warn("CreateRequest: failed", zap.Uint64("equipment_id", payload.EquipmentID), zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, dto.CreatedDTO{ID: id}, "maintenance request created", http.StatusCreated)
}

func (ctrl *RequestController) Update(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.UpdateRequestDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("UpdateRequest: bind failed", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid request payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.requestService.Update(c.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "request updated", http.StatusOK)
}

// UpdateStatus reads ?status= and falls back to a JSON body.
func (ctrl *RequestController) UpdateStatus(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	payload := dto.UpdateStatusDTO{Status: c.QueryParam("status")}
	if payload.Status == "" {
		if err := c.Bind(&payload); err != nil {
			ctrl.logger.Error("UpdateStatus: bind failed", zap.Uint64("id", id), zap.Error(err))
			return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid status payload"), ctrl.logger)
		}
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	change, err := ctrl.requestService.UpdateStatus(c.Request().Context(), id, payload.Status)
	if err != nil {
		ctrl.logger.Warn("UpdateStatus: failed", zap.Uint64("id", id), zap.String("status", payload.Status), zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, change, "status updated", http.StatusOK)
}

// AddComment reads ?comment= and falls back to a JSON body.
func (ctrl *RequestController) AddComment(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	payload := dto.AddCommentDTO{Comment: c.QueryParam("comment")}
	if payload.Comment == "" {
		if err := c.Bind(&payload); err != nil {
			ctrl.logger.Error("AddComment: bind failed", zap.Uint64("id", id), zap.Error(err))
			return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid comment payload"), ctrl.logger)
		}
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	commentID, err := ctrl.requestService.AddComment(c.Request().Context(), id, payload.Comment)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, dto.CreatedDTO{ID: commentID}, "comment added", http.StatusCreated)
}

func (ctrl *RequestController) Delete(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := ctrl.requestService.Delete(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "request deleted", http.StatusOK)
}
