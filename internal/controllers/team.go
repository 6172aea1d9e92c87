package controllers

import (
	"net/http"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type TeamController struct {
	teamService services.TeamServiceInterface
	logger      *zap.Logger
}

func NewTeamController(teamService services.TeamServiceInterface, logger *zap.Logger) *TeamController {
	return &TeamController{teamService: teamService, logger: logger}
}

func (ctrl *TeamController) List(c echo.Context) error {
	list, err := ctrl.teamService.List(c.Request().Context())
	if err != nil {
		ctrl.logger.Error("ListTeams: failed", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessList(c, list, "teams")
}

func (ctrl *TeamController) Get(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	team, err := ctrl.teamService.Get(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, team, "team", http.StatusOK)
}

func (ctrl *TeamController) Create(c echo.Context) error {
	var payload dto.CreateTeamDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("CreateTeam: bind failed", zap.Error(err))
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid team payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	id, err := ctrl.teamService.Create(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, dto.CreatedDTO{ID: id}, "team created", http.StatusCreated)
}

func (ctrl *TeamController) Update(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.UpdateTeamDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("UpdateTeam: bind failed", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid team payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.teamService.Update(c.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "team updated", http.StatusOK)
}

func (ctrl *TeamController) Delete(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := ctrl.teamService.Delete(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "team deleted", http.StatusOK)
}

// AddMember takes user_id from the query string or the JSON body.
func (ctrl *TeamController) AddMember(c echo.Context) error {
	teamID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.AddTeamMemberDTO
	userID, err := utils.ParseOptionalUint(c.QueryParam("user_id"))
	if err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid user_id"), ctrl.logger)
	}
	if userID != nil {
		payload.UserID = *userID
	} else if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("AddMember: bind failed", zap.Uint64("team_id", teamID), zap.Error(err))
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid member payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.teamService.AddMember(c.Request().Context(), teamID, payload.UserID); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "member added", http.StatusCreated)
}

func (ctrl *TeamController) RemoveMember(c echo.Context) error {
	teamID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	userID, err := utils.ParseIDParam(c, "userId")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := ctrl.teamService.RemoveMember(c.Request().Context(), teamID, userID); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "member removed", http.StatusOK)
}
