package repository

import (
	"errors"

	"estatelink/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Property PropertyRepository
}

// NewRepository wires all repositories against the shared pool.
// accountIDType is the live storage type of Users.id reported by the
// schema bootstrap; the user repository canonicalizes lookup ids to it
// and the property repository binds owner-id parameters against the
// matching foreign-key type.
func NewRepository(db database.PgxIface, accountIDType database.ColumnType, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, accountIDType, log),
		Property: NewPropertyRepository(db, accountIDType, log),
	}
}

// IsUniqueViolation reports whether err is a unique-constraint failure
// (SQLSTATE 23505), the store-side loser of a check-then-insert race.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
