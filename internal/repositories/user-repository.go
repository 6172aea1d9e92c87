package repositories

import (
	"context"
	"strings"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

const userTable = "users"

var userSelectFields = []string{
	"u.id", "u.email", "u.name", "u.password_hash", "u.role", "u.avatar_url",
	"u.created_at", "u.updated_at",
}

type UserRepositoryInterface interface {
	FindByID(ctx context.Context, id uint64) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *entities.User) (uint64, error)
}

type UserRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewUserRepository(storage Querier, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row interface{ Scan(dest ...any) error }) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.Role, &user.AvatarURL,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err, "scan user")
	}
	return &user, nil
}

func buildFindUserQuery(where sq.Sqlizer) sq.SelectBuilder {
	return psql.Select(userSelectFields...).
		From(userTable + " u").
		Where(sq.Eq{"u.deleted_at": nil}).
		Where(where).
		Limit(1)
}

func (r *UserRepository) findOne(ctx context.Context, where sq.Sqlizer) (*entities.User, error) {
	query, args, err := buildFindUserQuery(where).ToSql()
	if err != nil {
		return nil, wrap(err, "build user query")
	}
	return scanUser(r.storage.QueryRow(ctx, query, args...))
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*entities.User, error) {
	return r.findOne(ctx, sq.Eq{"u.id": id})
}

// FindByEmail matches case-insensitively.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, sq.Expr("LOWER(u.email) = ?", strings.ToLower(strings.TrimSpace(email))))
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.storage.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = $1 AND deleted_at IS NULL)`,
		strings.ToLower(strings.TrimSpace(email)),
	).Scan(&exists)
	return exists, wrap(err, "check user email")
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) (uint64, error) {
	query, args, err := psql.Insert(userTable).
		Columns("email", "name", "password_hash", "role", "avatar_url", "created_at", "updated_at").
		Values(strings.TrimSpace(user.Email), user.Name, user.PasswordHash, user.Role, user.AvatarURL,
			sq.Expr("NOW()"), sq.Expr("NOW()")).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, wrap(err, "build user insert")
	}

	var id uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.ErrConflict
		}
		return 0, wrap(err, "insert user")
	}
	return id, nil
}
