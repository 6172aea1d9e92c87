package repositories

import (
	"context"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const equipmentTable = "equipment"

var equipmentSelectFields = []string{
	"e.id", "e.name", "e.serial_number", "e.category", "e.purchase_date", "e.warranty_expiry",
	"e.location", "e.department", "e.is_scrapped", "e.maintenance_team_id", "e.default_technician_id",
	"e.created_at", "e.updated_at",
	"mt.name", "mt.description", "u.name", "u.email",
}

type EquipmentRepositoryInterface interface {
	List(ctx context.Context, filter types.EquipmentFilter) ([]entities.Equipment, error)
	FindByID(ctx context.Context, id uint64) (*entities.Equipment, error)
	ListByTeam(ctx context.Context, teamID uint64) ([]entities.Equipment, error)
	SerialExists(ctx context.Context, tx pgx.Tx, serial string) (bool, error)
	Create(ctx context.Context, tx pgx.Tx, eq *entities.Equipment) (uint64, error)
	Update(ctx context.Context, id uint64, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint64) error
}

type EquipmentRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewEquipmentRepository(storage Querier, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

func buildEquipmentSelect() sq.SelectBuilder {
	return psql.Select(equipmentSelectFields...).
		From(equipmentTable + " e").
		LeftJoin("maintenance_teams mt ON e.maintenance_team_id = mt.id").
		LeftJoin("users u ON e.default_technician_id = u.id").
		Where(sq.Eq{"e.deleted_at": nil})
}

func buildEquipmentListQuery(filter types.EquipmentFilter) sq.SelectBuilder {
	b := buildEquipmentSelect()
	if filter.Category != nil {
		b = b.Where(sq.Eq{"e.category": *filter.Category})
	}
	if filter.Department != nil {
		b = b.Where(sq.Eq{"e.department": *filter.Department})
	}
	if filter.IsScrapped != nil {
		b = b.Where(sq.Eq{"e.is_scrapped": *filter.IsScrapped})
	}
	return b.OrderBy("e.created_at DESC")
}

func scanEquipment(row interface{ Scan(dest ...any) error }) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID, &e.Name, &e.SerialNumber, &e.Category, &e.PurchaseDate, &e.WarrantyExpiry,
		&e.Location, &e.Department, &e.IsScrapped, &e.MaintenanceTeamID, &e.DefaultTechnicianID,
		&e.CreatedAt, &e.UpdatedAt,
		&e.TeamName, &e.TeamDescription, &e.TechnicianName, &e.TechnicianEmail,
	)
	if err != nil {
		return nil, notFound(err, "scan equipment")
	}
	return &e, nil
}

func (r *EquipmentRepository) query(ctx context.Context, b sq.SelectBuilder) ([]entities.Equipment, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, wrap(err, "build equipment query")
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap(err, "list equipment")
	}
	defer rows.Close()

	list := make([]entities.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *e)
	}
	return list, wrap(rows.Err(), "iterate equipment")
}

func (r *EquipmentRepository) List(ctx context.Context, filter types.EquipmentFilter) ([]entities.Equipment, error) {
	return r.query(ctx, buildEquipmentListQuery(filter))
}

func (r *EquipmentRepository) ListByTeam(ctx context.Context, teamID uint64) ([]entities.Equipment, error) {
	return r.query(ctx, buildEquipmentSelect().
		Where(sq.Eq{"e.maintenance_team_id": teamID}).
		OrderBy("e.name ASC"))
}

func (r *EquipmentRepository) FindByID(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query, args, err := buildEquipmentSelect().Where(sq.Eq{"e.id": id}).ToSql()
	if err != nil {
		return nil, wrap(err, "build equipment query")
	}
	return scanEquipment(r.storage.QueryRow(ctx, query, args...))
}

// SerialExists also sees soft deleted rows because serial_number is unique
// across the whole table.
func (r *EquipmentRepository) SerialExists(ctx context.Context, tx pgx.Tx, serial string) (bool, error) {
	var exists bool
	err := pick(tx, r.storage).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM equipment WHERE serial_number = $1)`, serial,
	).Scan(&exists)
	return exists, wrap(err, "check serial number")
}

func (r *EquipmentRepository) Create(ctx context.Context, tx pgx.Tx, eq *entities.Equipment) (uint64, error) {
	query, args, err := psql.Insert(equipmentTable).
		Columns("name", "serial_number", "category", "purchase_date", "warranty_expiry", "location",
			"department", "maintenance_team_id", "default_technician_id", "is_scrapped",
			"created_at", "updated_at").
		Values(eq.Name, eq.SerialNumber, eq.Category, eq.PurchaseDate, eq.WarrantyExpiry, eq.Location,
			eq.Department, eq.MaintenanceTeamID, eq.DefaultTechnicianID, false,
			sq.Expr("NOW()"), sq.Expr("NOW()")).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, wrap(err, "build equipment insert")
	}

	var id uint64
	if err := pick(tx, r.storage).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.ErrConflict
		}
		return 0, wrap(err, "insert equipment")
	}
	return id, nil
}

func (r *EquipmentRepository) Update(ctx context.Context, id uint64, fields map[string]interface{}) error {
	query, args, err := buildPartialUpdate(equipmentTable, id, fields).ToSql()
	if err != nil {
		return wrap(err, "build equipment update")
	}
	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return wrap(err, "update equipment")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id uint64) error {
	return softDelete(ctx, r.storage, equipmentTable, id)
}
