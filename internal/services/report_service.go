package services

import (
	"context"
	"fmt"
	"time"

	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	"gearguard/pkg/types"

	"go.uber.org/zap"
)

type ReportServiceInterface interface {
	MaintenanceByTeam(ctx context.Context) ([]types.TeamMaintenanceRow, error)
	EquipmentStatus(ctx context.Context) ([]types.EquipmentCategoryRow, error)
	TechnicianWorkload(ctx context.Context) ([]types.TechnicianWorkloadRow, error)
}

type reportService struct {
	reportRepo repositories.ReportRepositoryInterface
	cache      repositories.CacheRepositoryInterface
	ttl        time.Duration
	logger     *zap.Logger
}

func NewReportService(
	reportRepo repositories.ReportRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	ttl time.Duration,
	logger *zap.Logger,
) ReportServiceInterface {
	return &reportService{reportRepo: reportRepo, cache: cache, ttl: ttl, logger: logger}
}

func reportKey(name string) string {
	return fmt.Sprintf(constants.CacheKeyReport, name)
}

func (s *reportService) MaintenanceByTeam(ctx context.Context) ([]types.TeamMaintenanceRow, error) {
	return cached(ctx, s.cache, s.logger, reportKey(constants.ReportMaintenanceByTeam), s.ttl, s.reportRepo.MaintenanceByTeam)
}

func (s *reportService) EquipmentStatus(ctx context.Context) ([]types.EquipmentCategoryRow, error) {
	return cached(ctx, s.cache, s.logger, reportKey(constants.ReportEquipmentStatus), s.ttl, s.reportRepo.EquipmentStatus)
}

func (s *reportService) TechnicianWorkload(ctx context.Context) ([]types.TechnicianWorkloadRow, error) {
	return cached(ctx, s.cache, s.logger, reportKey(constants.ReportTechnicianWorkload), s.ttl, s.reportRepo.TechnicianWorkload)
}
