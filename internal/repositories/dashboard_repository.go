package repositories

import (
	"context"
	"time"

	"gearguard/pkg/constants"
	"gearguard/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

type DashboardRepositoryInterface interface {
	GetEquipmentStats(ctx context.Context) (*types.EquipmentStats, error)
	GetCountByStatus(ctx context.Context) (map[string]int64, error)
	GetCountByType(ctx context.Context) (map[string]int64, error)
	GetOverdueCount(ctx context.Context, now time.Time) (int64, error)
	GetTeamCount(ctx context.Context) (int64, error)
	GetRecentActivity(ctx context.Context, limit uint64) ([]types.DashboardActivityItem, error)
}

type DashboardRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewDashboardRepository(storage Querier, logger *zap.Logger) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage, logger: logger}
}

func (r *DashboardRepository) GetEquipmentStats(ctx context.Context) (*types.EquipmentStats, error) {
	query, args, err := psql.Select(
		"COUNT(*)",
		"COALESCE(SUM(CASE WHEN is_scrapped = false THEN 1 ELSE 0 END), 0)::BIGINT",
		"COALESCE(SUM(CASE WHEN is_scrapped = true THEN 1 ELSE 0 END), 0)::BIGINT",
	).From(equipmentTable).Where(sq.Eq{"deleted_at": nil}).ToSql()
	if err != nil {
		return nil, wrap(err, "build equipment stats")
	}

	stats := &types.EquipmentStats{}
	err = r.storage.QueryRow(ctx, query, args...).Scan(&stats.Total, &stats.Active, &stats.Scrapped)
	return stats, wrap(err, "equipment stats")
}

func (r *DashboardRepository) countBy(ctx context.Context, column string) (map[string]int64, error) {
	query, args, err := psql.Select(column, "COUNT(*)").
		From(requestTable).
		Where(sq.Eq{"deleted_at": nil}).
		GroupBy(column).
		ToSql()
	if err != nil {
		return nil, wrap(err, "build count by "+column)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap(err, "count by "+column)
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var key string
		var count int64
		if err := rows.Scan(&key, &count); err != nil {
			return nil, wrap(err, "scan count by "+column)
		}
		out[key] = count
	}
	return out, wrap(rows.Err(), "iterate count by "+column)
}

func (r *DashboardRepository) GetCountByStatus(ctx context.Context) (map[string]int64, error) {
	return r.countBy(ctx, "status")
}

func (r *DashboardRepository) GetCountByType(ctx context.Context) (map[string]int64, error) {
	return r.countBy(ctx, "request_type")
}

// buildOverdueQuery counts requests whose scheduled date is strictly before now
// and that are not in a final status.
func buildOverdueQuery(now time.Time) sq.SelectBuilder {
	return psql.Select("COUNT(*)").
		From(requestTable).
		Where(sq.Eq{"deleted_at": nil}).
		Where(sq.NotEq{"scheduled_date": nil}).
		Where(sq.Lt{"scheduled_date": now}).
		Where(sq.NotEq{"status": constants.FinalStatuses})
}

func (r *DashboardRepository) GetOverdueCount(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := buildOverdueQuery(now).ToSql()
	if err != nil {
		return 0, wrap(err, "build overdue count")
	}
	var count int64
	err = r.storage.QueryRow(ctx, query, args...).Scan(&count)
	return count, wrap(err, "overdue count")
}

func (r *DashboardRepository) GetTeamCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM maintenance_teams WHERE deleted_at IS NULL`).Scan(&count)
	return count, wrap(err, "team count")
}

func (r *DashboardRepository) GetRecentActivity(ctx context.Context, limit uint64) ([]types.DashboardActivityItem, error) {
	query, args, err := psql.Select("mr.id", "mr.subject", "mr.status", "e.name", "u.name", "mr.created_at").
		From(requestTable + " mr").
		Join("equipment e ON mr.equipment_id = e.id").
		Join("users u ON mr.created_by = u.id").
		Where(sq.Eq{"mr.deleted_at": nil}).
		OrderBy("mr.created_at DESC", "mr.id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, wrap(err, "build recent activity")
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap(err, "recent activity")
	}
	defer rows.Close()

	items := make([]types.DashboardActivityItem, 0, limit)
	for rows.Next() {
		var it types.DashboardActivityItem
		if err := rows.Scan(&it.ID, &it.Subject, &it.Status, &it.EquipmentName, &it.CreatedByName, &it.CreatedAt); err != nil {
			return nil, wrap(err, "scan activity")
		}
		items = append(items, it)
	}
	return items, wrap(rows.Err(), "iterate activity")
}
