package services

import (
	"context"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"

	"go.uber.org/zap"
)

type CalendarServiceInterface interface {
	Events(ctx context.Context, rng types.DateRange) ([]dto.CalendarEventDTO, error)
}

type CalendarService struct {
	requestRepo repositories.RequestRepositoryInterface
	logger      *zap.Logger
}

func NewCalendarService(requestRepo repositories.RequestRepositoryInterface, logger *zap.Logger) CalendarServiceInterface {
	return &CalendarService{requestRepo: requestRepo, logger: logger}
}

func (s *CalendarService) Events(ctx context.Context, rng types.DateRange) ([]dto.CalendarEventDTO, error) {
	if rng.Start != nil && rng.End != nil && rng.End.Before(*rng.Start) {
		return nil, apperrors.NewBadRequestError("end_date is before start_date")
	}
	list, err := s.requestRepo.ListScheduled(ctx, rng)
	if err != nil {
		return nil, err
	}
	return mapSlice(list, calendarEventToDTO), nil
}
