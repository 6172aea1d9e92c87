package repositories

import (
	"context"

	"gearguard/internal/entities"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const requestTable = "maintenance_requests"

var requestSelectFields = []string{
	"mr.id", "mr.subject", "mr.description", "mr.request_type", "mr.status", "mr.priority",
	"mr.equipment_id", "mr.maintenance_team_id", "mr.assigned_technician_id",
	"mr.scheduled_date", "mr.duration_hours", "mr.started_at", "mr.completed_at",
	"mr.created_by", "mr.created_at", "mr.updated_at",
	"e.name", "e.serial_number", "e.location",
	"mt.name", "tech.name", "tech.email",
	"creator.name", "creator.email",
}

type RequestRepositoryInterface interface {
	List(ctx context.Context, filter types.RequestFilter) ([]entities.MaintenanceRequest, error)
	FindByID(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	RecentByEquipment(ctx context.Context, equipmentID uint64, limit uint64) ([]entities.MaintenanceRequest, error)
	ListScheduled(ctx context.Context, rng types.DateRange) ([]entities.CalendarEvent, error)
	Create(ctx context.Context, tx pgx.Tx, req *entities.MaintenanceRequest) (uint64, error)
	Update(ctx context.Context, id uint64, fields map[string]interface{}) error
	LockStatus(ctx context.Context, tx pgx.Tx, id uint64) (string, error)
	SetStatus(ctx context.Context, tx pgx.Tx, id uint64, status string) error
	Delete(ctx context.Context, id uint64) error
}

type RequestRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewRequestRepository(storage Querier, logger *zap.Logger) RequestRepositoryInterface {
	return &RequestRepository{storage: storage, logger: logger}
}

func buildRequestSelect() sq.SelectBuilder {
	return psql.Select(requestSelectFields...).
		From(requestTable + " mr").
		Join("equipment e ON mr.equipment_id = e.id").
		Join("maintenance_teams mt ON mr.maintenance_team_id = mt.id").
		LeftJoin("users tech ON mr.assigned_technician_id = tech.id").
		Join("users creator ON mr.created_by = creator.id").
		Where(sq.Eq{"mr.deleted_at": nil})
}

// buildRequestListQuery returns newest first; ties keep id order so that the
// board is stable between fetches.
func buildRequestListQuery(filter types.RequestFilter) sq.SelectBuilder {
	b := buildRequestSelect()
	if filter.Status != nil {
		b = b.Where(sq.Eq{"mr.status": *filter.Status})
	}
	if filter.RequestType != nil {
		b = b.Where(sq.Eq{"mr.request_type": *filter.RequestType})
	}
	if filter.EquipmentID != nil {
		b = b.Where(sq.Eq{"mr.equipment_id": *filter.EquipmentID})
	}
	if filter.TeamID != nil {
		b = b.Where(sq.Eq{"mr.maintenance_team_id": *filter.TeamID})
	}
	return b.OrderBy("mr.created_at DESC", "mr.id DESC")
}

func scanRequest(row interface{ Scan(dest ...any) error }) (*entities.MaintenanceRequest, error) {
	var m entities.MaintenanceRequest
	err := row.Scan(
		&m.ID, &m.Subject, &m.Description, &m.RequestType, &m.Status, &m.Priority,
		&m.EquipmentID, &m.MaintenanceTeamID, &m.AssignedTechnicianID,
		&m.ScheduledDate, &m.DurationHours, &m.StartedAt, &m.CompletedAt,
		&m.CreatedBy, &m.CreatedAt, &m.UpdatedAt,
		&m.EquipmentName, &m.SerialNumber, &m.Location,
		&m.TeamName, &m.TechnicianName, &m.TechnicianEmail,
		&m.CreatedByName, &m.CreatedByEmail,
	)
	if err != nil {
		return nil, notFound(err, "scan request")
	}
	return &m, nil
}

func (r *RequestRepository) query(ctx context.Context, b sq.SelectBuilder) ([]entities.MaintenanceRequest, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, wrap(err, "build request query")
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap(err, "list requests")
	}
	defer rows.Close()

	list := make([]entities.MaintenanceRequest, 0)
	for rows.Next() {
		m, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *m)
	}
	return list, wrap(rows.Err(), "iterate requests")
}

func (r *RequestRepository) List(ctx context.Context, filter types.RequestFilter) ([]entities.MaintenanceRequest, error) {
	return r.query(ctx, buildRequestListQuery(filter))
}

func (r *RequestRepository) RecentByEquipment(ctx context.Context, equipmentID uint64, limit uint64) ([]entities.MaintenanceRequest, error) {
	id := equipmentID
	return r.query(ctx, buildRequestListQuery(types.RequestFilter{EquipmentID: &id}).Limit(limit))
}

func (r *RequestRepository) FindByID(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error) {
	query, args, err := buildRequestSelect().Where(sq.Eq{"mr.id": id}).ToSql()
	if err != nil {
		return nil, wrap(err, "build request query")
	}
	return scanRequest(r.storage.QueryRow(ctx, query, args...))
}

func (r *RequestRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	var exists bool
	err := r.storage.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM maintenance_requests WHERE id = $1 AND deleted_at IS NULL)`, id,
	).Scan(&exists)
	return exists, wrap(err, "check request")
}

func buildCalendarQuery(rng types.DateRange) sq.SelectBuilder {
	b := psql.Select(
		"mr.id", "mr.subject", "mr.description", "mr.status", "mr.request_type",
		"mr.scheduled_date", "mr.started_at", "mr.completed_at",
		"e.name", "mt.name", "u.name",
	).
		From(requestTable + " mr").
		Join("equipment e ON mr.equipment_id = e.id").
		Join("maintenance_teams mt ON mr.maintenance_team_id = mt.id").
		LeftJoin("users u ON mr.assigned_technician_id = u.id").
		Where(sq.Eq{"mr.deleted_at": nil}).
		Where(sq.NotEq{"mr.scheduled_date": nil})
	if rng.Start != nil {
		b = b.Where(sq.GtOrEq{"mr.scheduled_date": *rng.Start})
	}
	if rng.End != nil {
		b = b.Where(sq.LtOrEq{"mr.scheduled_date": *rng.End})
	}
	return b.OrderBy("mr.scheduled_date ASC", "mr.id ASC")
}

func (r *RequestRepository) ListScheduled(ctx context.Context, rng types.DateRange) ([]entities.CalendarEvent, error) {
	query, args, err := buildCalendarQuery(rng).ToSql()
	if err != nil {
		return nil, wrap(err, "build calendar query")
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap(err, "list calendar events")
	}
	defer rows.Close()

	events := make([]entities.CalendarEvent, 0)
	for rows.Next() {
		var ev entities.CalendarEvent
		if err := rows.Scan(&ev.ID, &ev.Subject, &ev.Description, &ev.Status, &ev.RequestType,
			&ev.ScheduledDate, &ev.StartedAt, &ev.CompletedAt,
			&ev.EquipmentName, &ev.TeamName, &ev.TechnicianName); err != nil {
			return nil, wrap(err, "scan calendar event")
		}
		events = append(events, ev)
	}
	return events, wrap(rows.Err(), "iterate calendar events")
}

func (r *RequestRepository) Create(ctx context.Context, tx pgx.Tx, req *entities.MaintenanceRequest) (uint64, error) {
	query, args, err := psql.Insert(requestTable).
		Columns("subject", "description", "request_type", "status", "priority",
			"equipment_id", "maintenance_team_id", "assigned_technician_id",
			"scheduled_date", "duration_hours", "created_by", "created_at", "updated_at").
		Values(req.Subject, req.Description, req.RequestType, constants.StatusNew, req.Priority,
			req.EquipmentID, req.MaintenanceTeamID, req.AssignedTechnicianID,
			req.ScheduledDate, req.DurationHours, req.CreatedBy, sq.Expr("NOW()"), sq.Expr("NOW()")).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, wrap(err, "build request insert")
	}

	var id uint64
	if err := pick(tx, r.storage).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, wrap(err, "insert request")
	}
	return id, nil
}

func (r *RequestRepository) Update(ctx context.Context, id uint64, fields map[string]interface{}) error {
	query, args, err := buildPartialUpdate(requestTable, id, fields).ToSql()
	if err != nil {
		return wrap(err, "build request update")
	}
	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return wrap(err, "update request")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// LockStatus reads the current status and holds the row until the
// transaction ends.
func (r *RequestRepository) LockStatus(ctx context.Context, tx pgx.Tx, id uint64) (string, error) {
	var status string
	err := pick(tx, r.storage).QueryRow(ctx,
		`SELECT status FROM maintenance_requests WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`, id,
	).Scan(&status)
	if err != nil {
		return "", notFound(err, "lock request status")
	}
	return status, nil
}

// buildSetStatus stamps started_at on the first move to in_progress and
// completed_at on the first move to a final status.
func buildSetStatus(id uint64, status string) sq.UpdateBuilder {
	b := psql.Update(requestTable).
		Set("status", status).
		Set("updated_at", sq.Expr("NOW()"))
	if status == constants.StatusInProgress {
		b = b.Set("started_at", sq.Expr("COALESCE(started_at, NOW())"))
	}
	if constants.IsFinalStatus(status) {
		b = b.Set("completed_at", sq.Expr("COALESCE(completed_at, NOW())"))
	}
	return b.Where(sq.Eq{"id": id, "deleted_at": nil})
}

func (r *RequestRepository) SetStatus(ctx context.Context, tx pgx.Tx, id uint64, status string) error {
	query, args, err := buildSetStatus(id, status).ToSql()
	if err != nil {
		return wrap(err, "build status update")
	}
	tag, err := pick(tx, r.storage).Exec(ctx, query, args...)
	if err != nil {
		return wrap(err, "update request status")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RequestRepository) Delete(ctx context.Context, id uint64) error {
	return softDelete(ctx, r.storage, requestTable, id)
}
