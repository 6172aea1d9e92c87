package repositories

import (
	"context"
	"sort"

	apperrors "gearguard/pkg/errors"

	sq "github.com/Masterminds/squirrel"
)

// buildPartialUpdate sets only the given columns and bumps updated_at. Columns
// are applied in sorted order so the generated SQL is stable.
func buildPartialUpdate(table string, id uint64, fields map[string]interface{}) sq.UpdateBuilder {
	cols := make([]string, 0, len(fields))
	for col := range fields {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	b := psql.Update(table)
	for _, col := range cols {
		b = b.Set(col, fields[col])
	}
	return b.Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "deleted_at": nil})
}

func buildSoftDelete(table string, id uint64) sq.UpdateBuilder {
	return psql.Update(table).
		Set("deleted_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "deleted_at": nil})
}

func softDelete(ctx context.Context, q Querier, table string, id uint64) error {
	query, args, err := buildSoftDelete(table, id).ToSql()
	if err != nil {
		return wrap(err, "build delete")
	}
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return wrap(err, "delete from "+table)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
