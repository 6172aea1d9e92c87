package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	"gearguard/pkg/types"

	"go.uber.org/zap"
)

// recentActivityLimit is how many requests the dashboard lists.
const recentActivityLimit = 5

type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*types.DashboardStats, error)
}

type DashboardService struct {
	repo   repositories.DashboardRepositoryInterface
	cache  repositories.CacheRepositoryInterface
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

func NewDashboardService(
	repo repositories.DashboardRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	ttl time.Duration,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{repo: repo, cache: cache, ttl: ttl, logger: logger, now: time.Now}
}

func (s *DashboardService) GetStats(ctx context.Context) (*types.DashboardStats, error) {
	return cached(ctx, s.cache, s.logger, constants.CacheKeyDashboardStats, s.ttl, s.load)
}

// load runs the aggregate queries in parallel.
func (s *DashboardService) load(ctx context.Context) (*types.DashboardStats, error) {
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		errs      []error
		equipment *types.EquipmentStats
		byStatus  map[string]int64
		byType    map[string]int64
		overdue   int64
		teams     int64
		recent    []types.DashboardActivityItem
	)

	addTask := func(fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}

	addTask(func() (err error) { equipment, err = s.repo.GetEquipmentStats(ctx); return })
	addTask(func() (err error) { byStatus, err = s.repo.GetCountByStatus(ctx); return })
	addTask(func() (err error) { byType, err = s.repo.GetCountByType(ctx); return })
	addTask(func() (err error) { overdue, err = s.repo.GetOverdueCount(ctx, s.now()); return })
	addTask(func() (err error) { teams, err = s.repo.GetTeamCount(ctx); return })
	addTask(func() (err error) { recent, err = s.repo.GetRecentActivity(ctx, recentActivityLimit); return })

	wg.Wait()
	if len(errs) > 0 {
		s.logger.Error("dashboard aggregation failed", zap.Errors("errors", errs))
		return nil, errors.Join(errs...)
	}

	stats := &types.DashboardStats{
		Equipment: *equipment,
		Requests: types.RequestStats{
			ByStatus: types.StatusCounts{
				New:        byStatus[constants.StatusNew],
				InProgress: byStatus[constants.StatusInProgress],
				Repaired:   byStatus[constants.StatusRepaired],
				Scrap:      byStatus[constants.StatusScrap],
			},
			ByType: types.TypeCounts{
				Corrective: byType[constants.RequestTypeCorrective],
				Preventive: byType[constants.RequestTypePreventive],
			},
			Overdue: overdue,
		},
		Teams:          types.TeamStats{Total: teams},
		RecentActivity: recent,
	}
	stats.Requests.Total = stats.Requests.ByStatus.Sum()
	if stats.RecentActivity == nil {
		stats.RecentActivity = make([]types.DashboardActivityItem, 0)
	}
	return stats, nil
}
