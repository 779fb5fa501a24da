package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// columnName maps a document field name to its SQL column, e.g. msgDateTime -> msg_date_time.
func columnName(namer schema.Namer, field string) string {
	if field == "_id" {
		return "id"
	}
	return namer.ColumnName("", field)
}

func toColumns(namer schema.Namer, f Filter) map[string]any {
	cols := make(map[string]any, len(f))
	for field, v := range f {
		cols[columnName(namer, field)] = v
	}
	return cols
}
