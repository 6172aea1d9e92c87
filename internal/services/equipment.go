package services

import (
	"context"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/events"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// recentRequestsLimit is how many requests the equipment detail shows.
const recentRequestsLimit = 5

type EquipmentServiceInterface interface {
	List(ctx context.Context, filter types.EquipmentFilter) ([]dto.EquipmentDTO, error)
	Get(ctx context.Context, id uint64) (*dto.EquipmentDetailDTO, error)
	Create(ctx context.Context, payload dto.CreateEquipmentDTO) (uint64, error)
	Update(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) error
	Delete(ctx context.Context, id uint64) error
}

type EquipmentService struct {
	repo        repositories.EquipmentRepositoryInterface
	teamRepo    repositories.TeamRepositoryInterface
	requestRepo repositories.RequestRepositoryInterface
	txManager   repositories.TxManagerInterface
	bus         EventPublisher
	logger      *zap.Logger
}

func NewEquipmentService(
	repo repositories.EquipmentRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	txManager repositories.TxManagerInterface,
	bus EventPublisher,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		repo:        repo,
		teamRepo:    teamRepo,
		requestRepo: requestRepo,
		txManager:   txManager,
		bus:         bus,
		logger:      logger,
	}
}

func (s *EquipmentService) List(ctx context.Context, filter types.EquipmentFilter) ([]dto.EquipmentDTO, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapSlice(list, equipmentToDTO), nil
}

func (s *EquipmentService) Get(ctx context.Context, id uint64) (*dto.EquipmentDetailDTO, error) {
	eq, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "equipment not found")
	}

	recent, err := s.requestRepo.RecentByEquipment(ctx, id, recentRequestsLimit)
	if err != nil {
		return nil, err
	}

	return &dto.EquipmentDetailDTO{
		EquipmentDTO:    equipmentToDTO(*eq),
		TeamDescription: eq.TeamDescription,
		TechnicianEmail: eq.TechnicianEmail,
		RecentRequests:  mapSlice(recent, requestSummaryToDTO),
	}, nil
}

func (s *EquipmentService) Create(ctx context.Context, payload dto.CreateEquipmentDTO) (uint64, error) {
	purchaseDate, err := parseOptionalDate(payload.PurchaseDate.Ptr(), "purchase_date")
	if err != nil {
		return 0, err
	}
	warrantyExpiry, err := parseOptionalDate(payload.WarrantyExpiry.Ptr(), "warranty_expiry")
	if err != nil {
		return 0, err
	}

	if payload.MaintenanceTeamID.Valid {
		if err := s.ensureTeam(ctx, payload.MaintenanceTeamID.Uint64); err != nil {
			return 0, err
		}
	}

	eq := &entities.Equipment{
		Name:                payload.Name,
		SerialNumber:        payload.SerialNumber,
		Category:            payload.Category.Ptr(),
		PurchaseDate:        purchaseDate,
		WarrantyExpiry:      warrantyExpiry,
		Location:            payload.Location.Ptr(),
		Department:          payload.Department.Ptr(),
		MaintenanceTeamID:   payload.MaintenanceTeamID.Ptr(),
		DefaultTechnicianID: payload.DefaultTechnicianID.Ptr(),
	}

	var id uint64
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		exists, err := s.repo.SerialExists(ctx, tx, eq.SerialNumber)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.NewConflictError("serial number already exists")
		}
		id, err = s.repo.Create(ctx, tx, eq)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("equipment created", zap.Uint64("equipment_id", id), zap.String("serial", eq.SerialNumber))
	s.bus.Publish(ctx, events.EquipmentChangedEvent{Meta: events.NewMeta(actorID(ctx)), EquipmentID: id, Action: events.ActionCreated})
	return id, nil
}

func (s *EquipmentService) Update(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) error {
	if payload.IsEmpty() {
		return apperrors.NewBadRequestError("no fields to update")
	}

	fields := map[string]interface{}{}
	if payload.Name != nil {
		fields["name"] = *payload.Name
	}
	if payload.Category != nil {
		fields["category"] = *payload.Category
	}
	if payload.PurchaseDate != nil {
		d, err := parseOptionalDate(payload.PurchaseDate, "purchase_date")
		if err != nil {
			return err
		}
		fields["purchase_date"] = dateValue(d)
	}
	if payload.WarrantyExpiry != nil {
		d, err := parseOptionalDate(payload.WarrantyExpiry, "warranty_expiry")
		if err != nil {
			return err
		}
		fields["warranty_expiry"] = dateValue(d)
	}
	if payload.Location != nil {
		fields["location"] = *payload.Location
	}
	if payload.Department != nil {
		fields["department"] = *payload.Department
	}
	if payload.MaintenanceTeamID != nil {
		if err := s.ensureTeam(ctx, *payload.MaintenanceTeamID); err != nil {
			return err
		}
		fields["maintenance_team_id"] = *payload.MaintenanceTeamID
	}
	if payload.DefaultTechnicianID != nil {
		fields["default_technician_id"] = *payload.DefaultTechnicianID
	}
	if payload.IsScrapped != nil {
		fields["is_scrapped"] = *payload.IsScrapped
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return notFoundAs(err, "equipment not found")
	}

	s.bus.Publish(ctx, events.EquipmentChangedEvent{Meta: events.NewMeta(actorID(ctx)), EquipmentID: id, Action: events.ActionUpdated})
	return nil
}

func (s *EquipmentService) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundAs(err, "equipment not found")
	}

	s.logger.Info("equipment deleted", zap.Uint64("equipment_id", id))
	s.bus.Publish(ctx, events.EquipmentChangedEvent{Meta: events.NewMeta(actorID(ctx)), EquipmentID: id, Action: events.ActionDeleted})
	return nil
}

func (s *EquipmentService) ensureTeam(ctx context.Context, teamID uint64) error {
	exists, err := s.teamRepo.Exists(ctx, teamID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFoundError("maintenance team not found")
	}
	return nil
}
