package services

import (
	"context"
	"errors"
	"strings"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/events"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TeamServiceInterface interface {
	List(ctx context.Context) ([]dto.TeamDTO, error)
	Get(ctx context.Context, id uint64) (*dto.TeamDetailDTO, error)
	Create(ctx context.Context, payload dto.CreateTeamDTO) (uint64, error)
	Update(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) error
	Delete(ctx context.Context, id uint64) error
	AddMember(ctx context.Context, teamID, userID uint64) error
	RemoveMember(ctx context.Context, teamID, userID uint64) error
}

type TeamService struct {
	repo          repositories.TeamRepositoryInterface
	userRepo      repositories.UserRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	txManager     repositories.TxManagerInterface
	bus           EventPublisher
	logger        *zap.Logger
}

func NewTeamService(
	repo repositories.TeamRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	txManager repositories.TxManagerInterface,
	bus EventPublisher,
	logger *zap.Logger,
) TeamServiceInterface {
	return &TeamService{
		repo:          repo,
		userRepo:      userRepo,
		equipmentRepo: equipmentRepo,
		txManager:     txManager,
		bus:           bus,
		logger:        logger,
	}
}

func (s *TeamService) List(ctx context.Context) ([]dto.TeamDTO, error) {
	teams, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapSlice(teams, teamToDTO), nil
}

func (s *TeamService) Get(ctx context.Context, id uint64) (*dto.TeamDetailDTO, error) {
	team, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "team not found")
	}
	members, err := s.repo.Members(ctx, id)
	if err != nil {
		return nil, err
	}
	equipment, err := s.equipmentRepo.ListByTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.TeamDetailDTO{
		TeamDTO:   teamToDTO(*team),
		Members:   mapSlice(members, memberToDTO),
		Equipment: mapSlice(equipment, shortEquipmentToDTO),
	}
	detail.MemberCount = int64(len(detail.Members))
	detail.EquipmentCount = int64(len(detail.Equipment))
	return detail, nil
}

func (s *TeamService) Create(ctx context.Context, payload dto.CreateTeamDTO) (uint64, error) {
	team := &entities.MaintenanceTeam{
		Name:        strings.TrimSpace(payload.Name),
		Description: payload.Description.Ptr(),
	}
	if team.Name == "" {
		return 0, apperrors.NewBadRequestError("team name is required")
	}

	var id uint64
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		exists, err := s.repo.NameExists(ctx, tx, team.Name, 0)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.NewConflictError("team name already exists")
		}
		id, err = s.repo.Create(ctx, tx, team)
		return err
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return 0, apperrors.NewConflictError("team name already exists")
		}
		return 0, err
	}

	s.logger.Info("team created", zap.Uint64("team_id", id), zap.String("name", team.Name))
	s.bus.Publish(ctx, events.TeamChangedEvent{Meta: events.NewMeta(actorID(ctx)), TeamID: id, Action: events.ActionCreated})
	return id, nil
}

func (s *TeamService) Update(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) error {
	if payload.IsEmpty() {
		return apperrors.NewBadRequestError("no fields to update")
	}

	fields := map[string]interface{}{}
	if payload.Name != nil {
		name := strings.TrimSpace(*payload.Name)
		if name == "" {
			return apperrors.NewBadRequestError("team name is required")
		}
		fields["name"] = name
	}
	if payload.Description != nil {
		fields["description"] = *payload.Description
	}

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if name, ok := fields["name"].(string); ok {
			exists, err := s.repo.NameExists(ctx, tx, name, id)
			if err != nil {
				return err
			}
			if exists {
				return apperrors.NewConflictError("team name already exists")
			}
		}
		return s.repo.Update(ctx, tx, id, fields)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return apperrors.NewConflictError("team name already exists")
		}
		return notFoundAs(err, "team not found")
	}

	s.bus.Publish(ctx, events.TeamChangedEvent{Meta: events.NewMeta(actorID(ctx)), TeamID: id, Action: events.ActionUpdated})
	return nil
}

func (s *TeamService) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundAs(err, "team not found")
	}
	s.logger.Info("team deleted", zap.Uint64("team_id", id))
	s.bus.Publish(ctx, events.TeamChangedEvent{Meta: events.NewMeta(actorID(ctx)), TeamID: id, Action: events.ActionDeleted})
	return nil
}

func (s *TeamService) AddMember(ctx context.Context, teamID, userID uint64) error {
	exists, err := s.repo.Exists(ctx, teamID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFoundError("team not found")
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return notFoundAs(err, "user not found")
	}

	member, err := s.repo.IsMember(ctx, teamID, userID)
	if err != nil {
		return err
	}
	if member {
		return apperrors.NewBadRequestError("user is already a member of this team")
	}

	if err := s.repo.AddMember(ctx, teamID, userID); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return apperrors.NewBadRequestError("user is already a member of this team")
		}
		return err
	}

	s.bus.Publish(ctx, events.TeamChangedEvent{
		Meta:   events.NewMeta(actorID(ctx)),
		TeamID: teamID,
		UserID: userID,
		Action: events.ActionMemberAdded,
	})
	return nil
}

func (s *TeamService) RemoveMember(ctx context.Context, teamID, userID uint64) error {
	if err := s.repo.RemoveMember(ctx, teamID, userID); err != nil {
		return notFoundAs(err, "team member not found")
	}

	s.bus.Publish(ctx, events.TeamChangedEvent{
		Meta:   events.NewMeta(actorID(ctx)),
		TeamID: teamID,
		UserID: userID,
		Action: events.ActionMemberRemoved,
	})
	return nil
}
