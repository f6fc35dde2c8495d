package repositories

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
)

// sq builds MySQL statements with ? placeholders.
var sq = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func execBuilder(db execer, b squirrel.Sqlizer) (sql.Result, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	return db.Exec(query, args...)
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func timePtr(n sql.NullTime) *time.Time {
	if !n.Valid {
		return nil
	}
	t := n.Time
	return &t
}

func int64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func nullInt64(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}
