package database

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// schemaFake routes the two bootstrap lookups: the catalog type probe and
// the max-id read used to fast-forward the sequence.
func schemaFake(dataType string, maxID int64) *fakeDB {
	return &fakeDB{
		queryRowFn: func(sql string, args []any) *fakeRow {
			switch {
			case strings.Contains(sql, "information_schema"):
				if dataType == "" {
					return &fakeRow{err: fmt.Errorf("no such column")}
				}
				return &fakeRow{values: []any{dataType}}
			case strings.Contains(sql, "MAX"):
				return &fakeRow{values: []any{maxID}}
			default:
				return nil
			}
		},
	}
}

func TestEnsureSchema_UUIDColumn(t *testing.T) {
	db := schemaFake("uuid", 0)

	idType, err := EnsureSchema(context.Background(), db, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idType != ColumnTypeUUID {
		t.Errorf("expected ColumnTypeUUID, got %v", idType)
	}

	if len(db.execContaining("pgcrypto")) != 1 {
		t.Error("expected pgcrypto extension to be created")
	}
	if len(db.execContaining("gen_random_uuid()")) != 1 {
		t.Error("expected gen_random_uuid() default on Users.id")
	}
	if len(db.execContaining("Users_id_seq")) != 0 {
		t.Error("UUID column must not get a sequence")
	}
	if len(db.execContaining(`"landlordId" UUID NOT NULL`)) != 1 {
		t.Error("expected Properties.landlordId declared as UUID")
	}
}

func TestEnsureSchema_IntegerColumnSyncsSequence(t *testing.T) {
	db := schemaFake("integer", 41)

	idType, err := EnsureSchema(context.Background(), db, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idType != ColumnTypeInteger {
		t.Errorf("expected ColumnTypeInteger, got %v", idType)
	}

	if len(db.execContaining(`CREATE SEQUENCE IF NOT EXISTS "Users_id_seq"`)) != 1 {
		t.Error("expected sequence creation")
	}
	if len(db.execContaining(`OWNED BY "Users"."id"`)) != 1 {
		t.Error("expected sequence ownership")
	}
	if len(db.execContaining(`nextval('"Users_id_seq"')`)) != 1 {
		t.Error("expected nextval default on Users.id")
	}
	if len(db.execContaining("gen_random_uuid()")) != 0 {
		t.Error("integer column must not get a UUID default")
	}
	if len(db.execContaining(`"landlordId" INTEGER NOT NULL`)) != 1 {
		t.Error("expected Properties.landlordId declared as INTEGER")
	}

	setvals := db.execContaining("setval")
	if len(setvals) != 1 {
		t.Fatalf("expected one setval call, got %d", len(setvals))
	}
	if len(setvals[0].args) != 1 || setvals[0].args[0] != int64(41) {
		t.Errorf("setval should carry the current max id, got %v", setvals[0].args)
	}
}

func TestEnsureSchema_EmptyTableSkipsSetval(t *testing.T) {
	db := schemaFake("integer", 0)

	if _, err := EnsureSchema(context.Background(), db, zap.NewNop()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(db.execContaining("setval")) != 0 {
		t.Error("setval must be skipped when the table is empty")
	}
}

func TestEnsureSchema_UnknownColumnFallsBackToInteger(t *testing.T) {
	db := schemaFake("", 0)

	idType, err := EnsureSchema(context.Background(), db, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idType != ColumnTypeUnknown {
		t.Errorf("expected ColumnTypeUnknown, got %v", idType)
	}

	// no id default of either flavor, but the FK still falls back to INTEGER
	if len(db.execContaining("Users_id_seq")) != 0 || len(db.execContaining("gen_random_uuid()")) != 0 {
		t.Error("unknown column type must not get an id default")
	}
	if len(db.execContaining(`"landlordId" INTEGER NOT NULL`)) != 1 {
		t.Error("expected INTEGER fallback for Properties.landlordId")
	}
}

func TestEnsureSchema_TableCreationIsFatal(t *testing.T) {
	db := schemaFake("integer", 0)
	db.execFn = func(sql string, args []any) error {
		if strings.Contains(sql, `CREATE TABLE IF NOT EXISTS "Users"`) {
			return fmt.Errorf("permission denied")
		}
		return nil
	}

	if _, err := EnsureSchema(context.Background(), db, zap.NewNop()); err == nil {
		t.Fatal("expected error when the Users table cannot be created")
	}
}

func TestEnsureSchema_IndexFailureIsNotFatal(t *testing.T) {
	db := schemaFake("integer", 0)
	db.execFn = func(sql string, args []any) error {
		if strings.Contains(sql, "CREATE INDEX") {
			return fmt.Errorf("index exists with different definition")
		}
		return nil
	}

	if _, err := EnsureSchema(context.Background(), db, zap.NewNop()); err != nil {
		t.Fatalf("index failures must not abort the bootstrap: %v", err)
	}
	if len(db.execContaining("CREATE TRIGGER")) == 0 {
		t.Error("later steps should still run after an index failure")
	}
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	db := schemaFake("integer", 3)

	for i := 0; i < 2; i++ {
		if _, err := EnsureSchema(context.Background(), db, zap.NewNop()); err != nil {
			t.Fatalf("run %d: unexpected error: %v", i+1, err)
		}
	}

	// every create is guarded so repeated bootstraps cannot fail or
	// accumulate duplicates
	for _, c := range db.execs {
		switch {
		case strings.Contains(c.sql, "CREATE TABLE"),
			strings.Contains(c.sql, "CREATE INDEX"),
			strings.Contains(c.sql, "CREATE SEQUENCE"),
			strings.Contains(c.sql, "CREATE EXTENSION"):
			if !strings.Contains(c.sql, "IF NOT EXISTS") {
				t.Errorf("unguarded create: %s", c.sql)
			}
		case strings.Contains(c.sql, "CREATE TRIGGER"):
			if !strings.Contains(c.sql, "DROP TRIGGER IF EXISTS") {
				t.Errorf("trigger created without dropping first: %s", c.sql)
			}
		case strings.Contains(c.sql, "CREATE "):
			if !strings.Contains(c.sql, "CREATE OR REPLACE") {
				t.Errorf("unguarded create: %s", c.sql)
			}
		}
	}

	triggers := db.execContaining("CREATE TRIGGER")
	if len(triggers) != 4 {
		t.Errorf("expected 2 trigger installs per run, got %d total", len(triggers))
	}
}
