package repositories

import (
	"context"

	"gearguard/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

type CommentRepositoryInterface interface {
	Create(ctx context.Context, comment *entities.RequestComment) (uint64, error)
	ListByRequest(ctx context.Context, requestID uint64) ([]entities.RequestComment, error)
}

type CommentRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewCommentRepository(storage Querier, logger *zap.Logger) CommentRepositoryInterface {
	return &CommentRepository{storage: storage, logger: logger}
}

func (r *CommentRepository) Create(ctx context.Context, comment *entities.RequestComment) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO request_comments (request_id, comment, commented_by, created_at)
		 VALUES ($1, $2, $3, NOW()) RETURNING id, created_at`,
		comment.RequestID, comment.Comment, comment.CommentedBy,
	).Scan(&id, &comment.CreatedAt)
	if err != nil {
		return 0, wrap(err, "insert comment")
	}
	comment.ID = id
	return id, nil
}

// buildCommentListQuery returns comments oldest first, the order they were appended.
func buildCommentListQuery(requestID uint64) sq.SelectBuilder {
	return psql.Select("rc.id", "rc.request_id", "rc.comment", "rc.commented_by", "rc.created_at",
		"u.name", "u.avatar_url").
		From("request_comments rc").
		LeftJoin("users u ON rc.commented_by = u.id").
		Where(sq.Eq{"rc.request_id": requestID, "rc.deleted_at": nil}).
		OrderBy("rc.created_at ASC", "rc.id ASC")
}

func (r *CommentRepository) ListByRequest(ctx context.Context, requestID uint64) ([]entities.RequestComment, error) {
	query, args, err := buildCommentListQuery(requestID).ToSql()
	if err != nil {
		return nil, wrap(err, "build comment list")
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap(err, "list comments")
	}
	defer rows.Close()

	comments := make([]entities.RequestComment, 0)
	for rows.Next() {
		var c entities.RequestComment
		if err := rows.Scan(&c.ID, &c.RequestID, &c.Comment, &c.CommentedBy, &c.CreatedAt,
			&c.CommenterName, &c.AvatarURL); err != nil {
			return nil, wrap(err, "scan comment")
		}
		comments = append(comments, c)
	}
	return comments, wrap(rows.Err(), "iterate comments")
}
