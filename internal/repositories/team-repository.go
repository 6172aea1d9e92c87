package repositories

import (
	"context"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const teamTable = "maintenance_teams"

type TeamRepositoryInterface interface {
	List(ctx context.Context) ([]entities.MaintenanceTeam, error)
	FindByID(ctx context.Context, id uint64) (*entities.MaintenanceTeam, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	NameExists(ctx context.Context, tx pgx.Tx, name string, excludeID uint64) (bool, error)
	Create(ctx context.Context, tx pgx.Tx, team *entities.MaintenanceTeam) (uint64, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint64) error

	Members(ctx context.Context, teamID uint64) ([]entities.TeamMember, error)
	IsMember(ctx context.Context, teamID, userID uint64) (bool, error)
	AddMember(ctx context.Context, teamID, userID uint64) error
	RemoveMember(ctx context.Context, teamID, userID uint64) error
}

type TeamRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewTeamRepository(storage Querier, logger *zap.Logger) TeamRepositoryInterface {
	return &TeamRepository{storage: storage, logger: logger}
}

// buildTeamListQuery counts live members and equipment per team.
func buildTeamListQuery() sq.SelectBuilder {
	return psql.Select(
		"mt.id", "mt.name", "mt.description", "mt.created_at", "mt.updated_at",
		"COUNT(DISTINCT tm.id) AS member_count",
		"COUNT(DISTINCT e.id) AS equipment_count",
	).
		From(teamTable + " mt").
		LeftJoin("team_members tm ON mt.id = tm.team_id AND tm.deleted_at IS NULL").
		LeftJoin("equipment e ON mt.id = e.maintenance_team_id AND e.deleted_at IS NULL").
		Where(sq.Eq{"mt.deleted_at": nil}).
		GroupBy("mt.id", "mt.name", "mt.description", "mt.created_at", "mt.updated_at").
		OrderBy("mt.name ASC")
}

func (r *TeamRepository) List(ctx context.Context) ([]entities.MaintenanceTeam, error) {
	query, args, err := buildTeamListQuery().ToSql()
	if err != nil {
		return nil, wrap(err, "build team list")
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap(err, "list teams")
	}
	defer rows.Close()

	teams := make([]entities.MaintenanceTeam, 0)
	for rows.Next() {
		var t entities.MaintenanceTeam
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt, &t.UpdatedAt,
			&t.MemberCount, &t.EquipmentCount); err != nil {
			return nil, wrap(err, "scan team")
		}
		teams = append(teams, t)
	}
	return teams, wrap(rows.Err(), "iterate teams")
}

func (r *TeamRepository) FindByID(ctx context.Context, id uint64) (*entities.MaintenanceTeam, error) {
	query, args, err := buildTeamListQuery().Where(sq.Eq{"mt.id": id}).ToSql()
	if err != nil {
		return nil, wrap(err, "build team query")
	}

	var t entities.MaintenanceTeam
	err = r.storage.QueryRow(ctx, query, args...).Scan(&t.ID, &t.Name, &t.Description,
		&t.CreatedAt, &t.UpdatedAt, &t.MemberCount, &t.EquipmentCount)
	if err != nil {
		return nil, notFound(err, "find team")
	}
	return &t, nil
}

func (r *TeamRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	var exists bool
	err := r.storage.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM maintenance_teams WHERE id = $1 AND deleted_at IS NULL)`, id,
	).Scan(&exists)
	return exists, wrap(err, "check team")
}

func (r *TeamRepository) NameExists(ctx context.Context, tx pgx.Tx, name string, excludeID uint64) (bool, error) {
	var exists bool
	err := pick(tx, r.storage).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM maintenance_teams WHERE name = $1 AND id <> $2 AND deleted_at IS NULL)`,
		name, excludeID,
	).Scan(&exists)
	return exists, wrap(err, "check team name")
}

func (r *TeamRepository) Create(ctx context.Context, tx pgx.Tx, team *entities.MaintenanceTeam) (uint64, error) {
	query, args, err := psql.Insert(teamTable).
		Columns("name", "description", "created_at", "updated_at").
		Values(team.Name, team.Description, sq.Expr("NOW()"), sq.Expr("NOW()")).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, wrap(err, "build team insert")
	}

	var id uint64
	if err := pick(tx, r.storage).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.ErrConflict
		}
		return 0, wrap(err, "insert team")
	}
	return id, nil
}

func (r *TeamRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, fields map[string]interface{}) error {
	query, args, err := buildPartialUpdate(teamTable, id, fields).ToSql()
	if err != nil {
		return wrap(err, "build team update")
	}
	tag, err := pick(tx, r.storage).Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return wrap(err, "update team")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id uint64) error {
	return softDelete(ctx, r.storage, teamTable, id)
}

func (r *TeamRepository) Members(ctx context.Context, teamID uint64) ([]entities.TeamMember, error) {
	query, args, err := psql.Select("u.id", "u.name", "u.email", "u.role", "u.avatar_url", "tm.created_at").
		From("team_members tm").
		Join("users u ON tm.user_id = u.id").
		Where(sq.Eq{"tm.team_id": teamID, "tm.deleted_at": nil, "u.deleted_at": nil}).
		OrderBy("tm.created_at ASC").
		ToSql()
	if err != nil {
		return nil, wrap(err, "build member list")
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap(err, "list members")
	}
	defer rows.Close()

	members := make([]entities.TeamMember, 0)
	for rows.Next() {
		var m entities.TeamMember
		if err := rows.Scan(&m.UserID, &m.Name, &m.Email, &m.Role, &m.AvatarURL, &m.JoinedAt); err != nil {
			return nil, wrap(err, "scan member")
		}
		members = append(members, m)
	}
	return members, wrap(rows.Err(), "iterate members")
}

func (r *TeamRepository) IsMember(ctx context.Context, teamID, userID uint64) (bool, error) {
	var exists bool
	err := r.storage.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM team_members WHERE team_id = $1 AND user_id = $2 AND deleted_at IS NULL)`,
		teamID, userID,
	).Scan(&exists)
	return exists, wrap(err, "check membership")
}

func (r *TeamRepository) AddMember(ctx context.Context, teamID, userID uint64) error {
	_, err := r.storage.Exec(ctx,
		`INSERT INTO team_members (team_id, user_id, created_at) VALUES ($1, $2, NOW())`,
		teamID, userID,
	)
	if isUniqueViolation(err) {
		return apperrors.ErrConflict
	}
	return wrap(err, "add member")
}

func (r *TeamRepository) RemoveMember(ctx context.Context, teamID, userID uint64) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE team_members SET deleted_at = NOW() WHERE team_id = $1 AND user_id = $2 AND deleted_at IS NULL`,
		teamID, userID,
	)
	if err != nil {
		return wrap(err, "remove member")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
