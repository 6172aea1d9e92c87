package services

import (
	"context"
	"sort"
	"strings"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/events"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
	"gearguard/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RequestServiceInterface interface {
	List(ctx context.Context, filter types.RequestFilter) ([]dto.RequestDTO, error)
	Get(ctx context.Context, id uint64) (*dto.RequestDetailDTO, error)
	Create(ctx context.Context, payload dto.CreateRequestDTO) (uint64, error)
	Update(ctx context.Context, id uint64, payload dto.UpdateRequestDTO) error
	UpdateStatus(ctx context.Context, id uint64, status string) (*dto.StatusChangeDTO, error)
	AddComment(ctx context.Context, id uint64, comment string) (uint64, error)
	Delete(ctx context.Context, id uint64) error
}

type RequestService struct {
	repo          repositories.RequestRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	teamRepo      repositories.TeamRepositoryInterface
	commentRepo   repositories.CommentRepositoryInterface
	statusLogRepo repositories.StatusLogRepositoryInterface
	txManager     repositories.TxManagerInterface
	bus           EventPublisher
	logger        *zap.Logger
}

func NewRequestService(
	repo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	commentRepo repositories.CommentRepositoryInterface,
	statusLogRepo repositories.StatusLogRepositoryInterface,
	txManager repositories.TxManagerInterface,
	bus EventPublisher,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{
		repo:          repo,
		equipmentRepo: equipmentRepo,
		teamRepo:      teamRepo,
		commentRepo:   commentRepo,
		statusLogRepo: statusLogRepo,
		txManager:     txManager,
		bus:           bus,
		logger:        logger,
	}
}

func (s *RequestService) List(ctx context.Context, filter types.RequestFilter) ([]dto.RequestDTO, error) {
	if filter.Status != nil && !constants.IsValidStatus(*filter.Status) {
		return nil, apperrors.NewBadRequestError("invalid status")
	}
	if filter.RequestType != nil && !constants.IsValidRequestType(*filter.RequestType) {
		return nil, apperrors.NewBadRequestError("invalid request type")
	}

	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapSlice(list, requestToDTO), nil
}

func (s *RequestService) Get(ctx context.Context, id uint64) (*dto.RequestDetailDTO, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "request not found")
	}
	history, err := s.statusLogRepo.ListByRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.RequestDetailDTO{
		RequestDTO:      requestToDTO(*req),
		Location:        req.Location,
		TechnicianEmail: req.TechnicianEmail,
		CreatedByEmail:  req.CreatedByEmail,
		StatusHistory:   mapSlice(history, statusLogToDTO),
		Comments:        mapSlice(comments, commentToDTO),
	}, nil
}

// Create always stores the request as new and writes the first history row in
// the same transaction.
func (s *RequestService) Create(ctx context.Context, payload dto.CreateRequestDTO) (uint64, error) {
	if payload.WorkCenterID.Valid {
		return 0, apperrors.NewBadRequestError("work center requests are not supported")
	}

	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return 0, apperrors.ErrUnauthorized
	}

	subject := strings.TrimSpace(payload.Subject)
	if subject == "" {
		return 0, apperrors.NewBadRequestError("subject is required")
	}
	if payload.DurationHours.Valid && payload.DurationHours.Int64 <= 0 {
		return 0, apperrors.NewBadRequestError("duration_hours must be a positive number of hours")
	}

	requestType := payload.RequestType
	if requestType == "" {
		requestType = constants.RequestTypeCorrective
	}
	if !constants.IsValidRequestType(requestType) {
		return 0, apperrors.NewBadRequestError("invalid request type")
	}

	scheduledDate, err := parseOptionalDate(payload.ScheduledDate.Ptr(), "scheduled_date")
	if err != nil {
		return 0, err
	}

	equipment, err := s.equipmentRepo.FindByID(ctx, payload.EquipmentID)
	if err != nil {
		return 0, notFoundAs(err, "equipment not found")
	}
	if equipment.IsScrapped {
		return 0, apperrors.NewBadRequestError("equipment is scrapped")
	}

	teamExists, err := s.teamRepo.Exists(ctx, payload.MaintenanceTeamID)
	if err != nil {
		return 0, err
	}
	if !teamExists {
		return 0, apperrors.NewNotFoundError("maintenance team not found")
	}

	if payload.AssignedTechnicianID.Valid {
		if err := s.ensureMember(ctx, payload.MaintenanceTeamID, payload.AssignedTechnicianID.Uint64); err != nil {
			return 0, err
		}
	}

	req := &entities.MaintenanceRequest{
		Subject:              subject,
		Description:          payload.Description.Ptr(),
		RequestType:          requestType,
		Status:               constants.StatusNew,
		Priority:             payload.Priority.Ptr(),
		EquipmentID:          payload.EquipmentID,
		MaintenanceTeamID:    payload.MaintenanceTeamID,
		AssignedTechnicianID: payload.AssignedTechnicianID.Ptr(),
		ScheduledDate:        scheduledDate,
		DurationHours:        payload.DurationHours.Ptr(),
		CreatedBy:            userID,
	}

	var id uint64
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		id, err = s.repo.Create(ctx, tx, req)
		if err != nil {
			return err
		}
		return s.statusLogRepo.Create(ctx, tx, &entities.RequestStatusLog{
			RequestID: id,
			NewStatus: constants.StatusNew,
			ChangedBy: &userID,
		})
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("request created",
		zap.Uint64("request_id", id),
		zap.Uint64("equipment_id", req.EquipmentID),
		zap.String("type", requestType),
	)
	s.bus.Publish(ctx, events.RequestCreatedEvent{
		Meta:              events.NewMeta(userID),
		RequestID:         id,
		Subject:           subject,
		RequestType:       requestType,
		EquipmentID:       req.EquipmentID,
		MaintenanceTeamID: req.MaintenanceTeamID,
	})
	return id, nil
}

func (s *RequestService) Update(ctx context.Context, id uint64, payload dto.UpdateRequestDTO) error {
	if payload.RequestType != nil {
		return apperrors.NewBadRequestError("request type cannot be changed")
	}
	if payload.IsEmpty() {
		return apperrors.NewBadRequestError("no fields to update")
	}

	fields := map[string]interface{}{}
	if payload.Subject != nil {
		subject := strings.TrimSpace(*payload.Subject)
		if subject == "" {
			return apperrors.NewBadRequestError("subject is required")
		}
		fields["subject"] = subject
	}
	if payload.Description != nil {
		fields["description"] = *payload.Description
	}
	if payload.Priority != nil {
		if !constants.IsValidPriority(*payload.Priority) {
			return apperrors.NewBadRequestError("invalid priority")
		}
		fields["priority"] = *payload.Priority
	}
	if payload.ScheduledDate != nil {
		d, err := parseOptionalDate(payload.ScheduledDate, "scheduled_date")
		if err != nil {
			return err
		}
		fields["scheduled_date"] = dateValue(d)
	}
	if payload.DurationHours != nil {
		if *payload.DurationHours <= 0 {
			return apperrors.NewBadRequestError("duration_hours must be a positive number of hours")
		}
		fields["duration_hours"] = *payload.DurationHours
	}
	if payload.AssignedTechnicianID != nil {
		current, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, "request not found")
		}
		if utils.DiffPtr(current.AssignedTechnicianID, payload.AssignedTechnicianID) {
			if err := s.ensureMember(ctx, current.MaintenanceTeamID, *payload.AssignedTechnicianID); err != nil {
				return err
			}
		}
		fields["assigned_technician_id"] = *payload.AssignedTechnicianID
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return notFoundAs(err, "request not found")
	}

	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)

	s.bus.Publish(ctx, events.RequestUpdatedEvent{Meta: events.NewMeta(actorID(ctx)), RequestID: id, Fields: names})
	return nil
}

// UpdateStatus moves a request to any status. The row is locked while the
// history entry is written; concurrent moves are applied in commit order.
func (s *RequestService) UpdateStatus(ctx context.Context, id uint64, status string) (*dto.StatusChangeDTO, error) {
	if !constants.IsValidStatus(status) {
		return nil, apperrors.NewBadRequestError("invalid status")
	}

	actor := actorID(ctx)
	var changedBy *uint64
	if actor != 0 {
		changedBy = &actor
	}

	var oldStatus string
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		oldStatus, err = s.repo.LockStatus(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.repo.SetStatus(ctx, tx, id, status); err != nil {
			return err
		}
		return s.statusLogRepo.Create(ctx, tx, &entities.RequestStatusLog{
			RequestID: id,
			OldStatus: &oldStatus,
			NewStatus: status,
			ChangedBy: changedBy,
		})
	})
	if err != nil {
		return nil, notFoundAs(err, "request not found")
	}

	s.logger.Info("request status changed",
		zap.Uint64("request_id", id),
		zap.String("old_status", oldStatus),
		zap.String("new_status", status),
	)
	s.bus.Publish(ctx, events.RequestStatusChangedEvent{
		Meta:      events.NewMeta(actor),
		RequestID: id,
		OldStatus: oldStatus,
		NewStatus: status,
	})
	return &dto.StatusChangeDTO{ID: id, OldStatus: oldStatus, NewStatus: status}, nil
}

func (s *RequestService) AddComment(ctx context.Context, id uint64, comment string) (uint64, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return 0, apperrors.ErrUnauthorized
	}

	text := strings.TrimSpace(comment)
	if text == "" {
		return 0, apperrors.NewBadRequestError("comment is required")
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, apperrors.NewNotFoundError("request not found")
	}

	commentID, err := s.commentRepo.Create(ctx, &entities.RequestComment{
		RequestID:   id,
		Comment:     text,
		CommentedBy: userID,
	})
	if err != nil {
		return 0, err
	}

	s.bus.Publish(ctx, events.RequestCommentedEvent{Meta: events.NewMeta(userID), RequestID: id, CommentID: commentID})
	return commentID, nil
}

func (s *RequestService) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundAs(err, "request not found")
	}
	s.logger.Info("request deleted", zap.Uint64("request_id", id))
	s.bus.Publish(ctx, events.RequestDeletedEvent{Meta: events.NewMeta(actorID(ctx)), RequestID: id})
	return nil
}

func (s *RequestService) ensureMember(ctx context.Context, teamID, userID uint64) error {
	member, err := s.teamRepo.IsMember(ctx, teamID, userID)
	if err != nil {
		return err
	}
	if !member {
		return apperrors.NewBadRequestError("assigned technician is not a member of the team")
	}
	return nil
}
