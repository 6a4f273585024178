package repository

import (
	"context"
	"errors"
	"testing"

	"estatelink/pkg/database"

	"go.uber.org/zap"
)

func TestUserFindByID_CanonicalizesUUIDCase(t *testing.T) {
	db := &fakeDB{}
	repo := NewUserRepository(db, database.ColumnTypeUUID, zap.NewNop())

	// stored UUIDs render lowercase through "id"::text; an uppercase-hex
	// id must still match the row
	if _, err := repo.FindByID(context.Background(), "550E8400-E29B-41D4-A716-446655440000"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(db.queries) != 1 {
		t.Fatalf("expected one lookup, got %d", len(db.queries))
	}
	if got := db.queries[0].args[0]; got != "550e8400-e29b-41d4-a716-446655440000" {
		t.Errorf("id not canonicalized before binding: %v", got)
	}
}

func TestUserFindByID_MalformedUUIDIsNotFound(t *testing.T) {
	db := &fakeDB{}
	repo := NewUserRepository(db, database.ColumnTypeUUID, zap.NewNop())

	user, err := repo.FindByID(context.Background(), "12345")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != nil {
		t.Errorf("malformed id must read as no match, got %+v", user)
	}
	if len(db.queries) != 0 {
		t.Error("an id that can never match must not reach the store")
	}
}

func TestUserFindByID_IntegerColumnNormalizesForm(t *testing.T) {
	db := &fakeDB{}
	repo := NewUserRepository(db, database.ColumnTypeInteger, zap.NewNop())

	// "07" and "7" are the same key; the stored text rendering is "7"
	if _, err := repo.FindByID(context.Background(), "07"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := db.queries[0].args[0]; got != "7" {
		t.Errorf("integer id not normalized: %v", got)
	}

	user, err := repo.FindByID(context.Background(), "abc")
	if err != nil || user != nil {
		t.Errorf("non-numeric id against an integer column must read as no match, got %v / %v", user, err)
	}
}

func TestUserFindByID_UnknownColumnTypePassesThrough(t *testing.T) {
	db := &fakeDB{}
	repo := NewUserRepository(db, database.ColumnTypeUnknown, zap.NewNop())

	if _, err := repo.FindByID(context.Background(), "whatever"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := db.queries[0].args[0]; got != "whatever" {
		t.Errorf("unknown column type must compare the raw id, got %v", got)
	}
}

func TestUserDelete_MalformedID(t *testing.T) {
	db := &fakeDB{}
	repo := NewUserRepository(db, database.ColumnTypeUUID, zap.NewNop())

	deleted, err := repo.Delete(context.Background(), "not-a-uuid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted {
		t.Error("malformed id must report no deletion")
	}
	if len(db.execs) != 0 {
		t.Error("malformed id must not issue a DELETE")
	}
}

func TestUserSetActive_CanonicalizesID(t *testing.T) {
	db := &fakeDB{}
	repo := NewUserRepository(db, database.ColumnTypeUUID, zap.NewNop())

	if _, err := repo.SetActive(context.Background(), "550E8400-E29B-41D4-A716-446655440000", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := db.queries[0].args[1]; got != "550e8400-e29b-41d4-a716-446655440000" {
		t.Errorf("id not canonicalized before binding: %v", got)
	}
}

func TestUserUpdateFields_EmptyBeforeIDCheck(t *testing.T) {
	db := &fakeDB{}
	repo := NewUserRepository(db, database.ColumnTypeUUID, zap.NewNop())

	// an empty update reads as "no fields" even when the id is garbage
	_, err := repo.UpdateFields(context.Background(), "not-a-uuid", nil)
	if !errors.Is(err, database.ErrNoFieldsToUpdate) {
		t.Fatalf("expected ErrNoFieldsToUpdate, got %v", err)
	}
	if len(db.queries) != 0 {
		t.Error("empty update must not reach the store")
	}
}

func TestUserUpdateFields_CanonicalizesID(t *testing.T) {
	db := &fakeDB{}
	repo := NewUserRepository(db, database.ColumnTypeUUID, zap.NewNop())

	fields := []database.Field{{Column: "fullName", Value: "Alice A"}}
	if _, err := repo.UpdateFields(context.Background(), "550E8400-E29B-41D4-A716-446655440000", fields); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	args := db.queries[0].args
	if args[len(args)-1] != "550e8400-e29b-41d4-a716-446655440000" {
		t.Errorf("update id not canonicalized: %v", args)
	}
}
