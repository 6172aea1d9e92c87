package repositories

import (
	"context"

	"gearguard/pkg/constants"
	"gearguard/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

type ReportRepositoryInterface interface {
	MaintenanceByTeam(ctx context.Context) ([]types.TeamMaintenanceRow, error)
	EquipmentStatus(ctx context.Context) ([]types.EquipmentCategoryRow, error)
	TechnicianWorkload(ctx context.Context) ([]types.TechnicianWorkloadRow, error)
}

type reportRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewReportRepository(storage Querier, logger *zap.Logger) ReportRepositoryInterface {
	return &reportRepository{storage: storage, logger: logger}
}

func countStatus(alias, status string) string {
	return "COALESCE(SUM(CASE WHEN " + alias + ".status = '" + status + "' THEN 1 ELSE 0 END), 0)::BIGINT"
}

func buildMaintenanceByTeamQuery() sq.SelectBuilder {
	return psql.Select(
		"mt.id", "mt.name",
		"COUNT(mr.id) AS total_requests",
		countStatus("mr", constants.StatusNew),
		countStatus("mr", constants.StatusInProgress),
		countStatus("mr", constants.StatusRepaired),
		countStatus("mr", constants.StatusScrap),
	).
		From(teamTable + " mt").
		LeftJoin("maintenance_requests mr ON mt.id = mr.maintenance_team_id AND mr.deleted_at IS NULL").
		Where(sq.Eq{"mt.deleted_at": nil}).
		GroupBy("mt.id", "mt.name").
		OrderBy("total_requests DESC", "mt.name ASC")
}

func buildEquipmentStatusQuery() sq.SelectBuilder {
	return psql.Select(
		"COALESCE(e.category, '')",
		"COUNT(e.id) AS total",
		"COALESCE(SUM(CASE WHEN e.is_scrapped = false THEN 1 ELSE 0 END), 0)::BIGINT",
		"COALESCE(SUM(CASE WHEN e.is_scrapped = true THEN 1 ELSE 0 END), 0)::BIGINT",
		"COALESCE(SUM(CASE WHEN e.warranty_expiry < CURRENT_DATE THEN 1 ELSE 0 END), 0)::BIGINT",
	).
		From(equipmentTable + " e").
		Where(sq.Eq{"e.deleted_at": nil}).
		GroupBy("e.category").
		OrderBy("total DESC")
}

func buildTechnicianWorkloadQuery() sq.SelectBuilder {
	return psql.Select(
		"u.id", "u.name", "u.email",
		"COUNT(mr.id) AS total_assigned",
		countStatus("mr", constants.StatusInProgress)+" AS active_tasks",
		countStatus("mr", constants.StatusRepaired),
	).
		From(userTable + " u").
		LeftJoin("maintenance_requests mr ON u.id = mr.assigned_technician_id AND mr.deleted_at IS NULL").
		Where(sq.Eq{"u.role": constants.RoleTechnician, "u.deleted_at": nil}).
		GroupBy("u.id", "u.name", "u.email").
		OrderBy("active_tasks DESC", "total_assigned DESC")
}

func (r *reportRepository) MaintenanceByTeam(ctx context.Context) ([]types.TeamMaintenanceRow, error) {
	query, args, err := buildMaintenanceByTeamQuery().ToSql()
	if err != nil {
		return nil, wrap(err, "build maintenance-by-team")
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap(err, "maintenance-by-team")
	}
	defer rows.Close()

	out := make([]types.TeamMaintenanceRow, 0)
	for rows.Next() {
		var row types.TeamMaintenanceRow
		if err := rows.Scan(&row.ID, &row.Name, &row.TotalRequests, &row.NewRequests,
			&row.InProgress, &row.Completed, &row.Scrapped); err != nil {
			return nil, wrap(err, "scan maintenance-by-team")
		}
		out = append(out, row)
	}
	return out, wrap(rows.Err(), "iterate maintenance-by-team")
}

func (r *reportRepository) EquipmentStatus(ctx context.Context) ([]types.EquipmentCategoryRow, error) {
	query, args, err := buildEquipmentStatusQuery().ToSql()
	if err != nil {
		return nil, wrap(err, "build equipment-status")
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap(err, "equipment-status")
	}
	defer rows.Close()

	out := make([]types.EquipmentCategoryRow, 0)
	for rows.Next() {
		var row types.EquipmentCategoryRow
		if err := rows.Scan(&row.Category, &row.Total, &row.Active, &row.Scrapped, &row.WarrantyExpired); err != nil {
			return nil, wrap(err, "scan equipment-status")
		}
		if row.Category == "" {
			row.Category = types.UncategorizedLabel
		}
		out = append(out, row)
	}
	return out, wrap(rows.Err(), "iterate equipment-status")
}

func (r *reportRepository) TechnicianWorkload(ctx context.Context) ([]types.TechnicianWorkloadRow, error) {
	query, args, err := buildTechnicianWorkloadQuery().ToSql()
	if err != nil {
		return nil, wrap(err, "build technician-workload")
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap(err, "technician-workload")
	}
	defer rows.Close()

	out := make([]types.TechnicianWorkloadRow, 0)
	for rows.Next() {
		var row types.TechnicianWorkloadRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Email, &row.TotalAssigned,
			&row.ActiveTasks, &row.CompletedTasks); err != nil {
			return nil, wrap(err, "scan technician-workload")
		}
		out = append(out, row)
	}
	return out, wrap(rows.Err(), "iterate technician-workload")
}
