package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ColumnType is the storage family of a live database column. Deployments
// inherited tables created by earlier versions of the schema, so primary
// keys may be integer-backed or UUID-backed; DDL and query parameters have
// to adapt to whichever one is actually there.
type ColumnType int

const (
	ColumnTypeUnknown ColumnType = iota
	ColumnTypeInteger
	ColumnTypeUUID
)

func (t ColumnType) String() string {
	switch t {
	case ColumnTypeInteger:
		return "INTEGER"
	case ColumnTypeUUID:
		return "UUID"
	default:
		return "UNKNOWN"
	}
}

// ColumnStorageType looks up the declared type of table.column in the
// catalog. It never fails: a missing column or a failed catalog query is
// logged and reported as ColumnTypeUnknown, which callers treat as the
// integer default.
func ColumnStorageType(ctx context.Context, db PgxIface, log *zap.Logger, table, column string) ColumnType {
	query := `
		SELECT data_type
		FROM information_schema.columns
		WHERE table_name = $1 AND column_name = $2
	`

	var dataType string
	err := db.QueryRow(ctx, query, table, column).Scan(&dataType)
	if err == pgx.ErrNoRows {
		log.Warn("Column not found in catalog",
			zap.String("table", table),
			zap.String("column", column),
		)
		return ColumnTypeUnknown
	}
	if err != nil {
		log.Warn("Could not determine column type",
			zap.Error(err),
			zap.String("table", table),
			zap.String("column", column),
		)
		return ColumnTypeUnknown
	}

	switch dataType {
	case "uuid":
		return ColumnTypeUUID
	case "integer", "bigint", "smallint":
		return ColumnTypeInteger
	default:
		log.Warn("Unrecognized column type",
			zap.String("table", table),
			zap.String("column", column),
			zap.String("data_type", dataType),
		)
		return ColumnTypeUnknown
	}
}
