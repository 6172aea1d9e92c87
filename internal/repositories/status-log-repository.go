package repositories

import (
	"context"

	"gearguard/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type StatusLogRepositoryInterface interface {
	Create(ctx context.Context, tx pgx.Tx, log *entities.RequestStatusLog) error
	ListByRequest(ctx context.Context, requestID uint64) ([]entities.RequestStatusLog, error)
}

type StatusLogRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewStatusLogRepository(storage Querier, logger *zap.Logger) StatusLogRepositoryInterface {
	return &StatusLogRepository{storage: storage, logger: logger}
}

func (r *StatusLogRepository) Create(ctx context.Context, tx pgx.Tx, log *entities.RequestStatusLog) error {
	err := pick(tx, r.storage).QueryRow(ctx,
		`INSERT INTO request_status_logs (request_id, old_status, new_status, changed_by, changed_at)
		 VALUES ($1, $2, $3, $4, NOW()) RETURNING id, changed_at`,
		log.RequestID, log.OldStatus, log.NewStatus, log.ChangedBy,
	).Scan(&log.ID, &log.ChangedAt)
	return wrap(err, "insert status log")
}

func buildStatusLogListQuery(requestID uint64) sq.SelectBuilder {
	return psql.Select("rsl.id", "rsl.request_id", "rsl.old_status", "rsl.new_status",
		"rsl.changed_by", "rsl.changed_at", "u.name").
		From("request_status_logs rsl").
		LeftJoin("users u ON rsl.changed_by = u.id").
		Where(sq.Eq{"rsl.request_id": requestID}).
		OrderBy("rsl.changed_at ASC", "rsl.id ASC")
}

func (r *StatusLogRepository) ListByRequest(ctx context.Context, requestID uint64) ([]entities.RequestStatusLog, error) {
	query, args, err := buildStatusLogListQuery(requestID).ToSql()
	if err != nil {
		return nil, wrap(err, "build status history")
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap(err, "list status history")
	}
	defer rows.Close()

	logs := make([]entities.RequestStatusLog, 0)
	for rows.Next() {
		var l entities.RequestStatusLog
		if err := rows.Scan(&l.ID, &l.RequestID, &l.OldStatus, &l.NewStatus,
			&l.ChangedBy, &l.ChangedAt, &l.ChangedByName); err != nil {
			return nil, wrap(err, "scan status log")
		}
		logs = append(logs, l)
	}
	return logs, wrap(rows.Err(), "iterate status history")
}
