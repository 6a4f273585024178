package repository

import (
	"context"
	"fmt"
	"strconv"

	"estatelink/internal/data/entity"
	"estatelink/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// userPublicColumns is every column the API may expose; the password hash
// is deliberately absent. The id is read as text because its storage type
// is deployment-dependent.
const userPublicColumns = `"id"::text, "username", "fullName", "email", "phoneNumber", "accountType", "isActive", "lastLogin", "createdAt"`

// userUpdatableColumns is the fixed allow-list for partial updates.
var userUpdatableColumns = []string{"fullName", "email", "phoneNumber", "accountType"}

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	FindActiveByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindAll(ctx context.Context, accountType entity.AccountType, excludeUsername string) ([]*entity.User, error)
	UpdateFields(ctx context.Context, id string, fields []database.Field) (*entity.User, error)
	SetActive(ctx context.Context, id string, active bool) (*entity.User, error)
	Delete(ctx context.Context, id string) (bool, error)
	TouchLastLogin(ctx context.Context, id string) error
	HasAdmin(ctx context.Context) (bool, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger

	// idType is the live storage type of Users.id. Lookups compare the
	// column as text, so incoming ids are canonicalized to the stored
	// rendering first.
	idType database.ColumnType
}

func NewUserRepository(db database.PgxIface, idType database.ColumnType, log *zap.Logger) UserRepository {
	return &userRepository{
		db:     db,
		log:    log,
		idType: idType,
	}
}

// normalizeID rewrites an account id into the form "id"::text renders:
// lowercase canonical for UUID columns, plain decimal for integer
// columns. An id that cannot take that form matches no row, which the
// second result reports without touching the store.
func (ur *userRepository) normalizeID(id string) (string, bool) {
	switch ur.idType {
	case database.ColumnTypeUUID:
		parsed, err := uuid.Parse(id)
		if err != nil {
			return "", false
		}
		return parsed.String(), true
	case database.ColumnTypeInteger:
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return "", false
		}
		return strconv.FormatInt(n, 10), true
	default:
		return id, true
	}
}

// Create inserts a new account and returns the stored public row. The id
// and timestamps come from column defaults, so the insert lists neither.
func (ur *userRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO "Users" ("username", "fullName", "email", "phoneNumber", "accountType", "password", "createdAt", "updatedAt")
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING ` + userPublicColumns

	var created entity.User
	err := ur.db.QueryRow(ctx, query,
		user.Username,
		user.FullName,
		user.Email,
		user.PhoneNumber,
		user.AccountType,
		user.PasswordHash,
	).Scan(
		&created.ID,
		&created.Username,
		&created.FullName,
		&created.Email,
		&created.PhoneNumber,
		&created.AccountType,
		&created.IsActive,
		&created.LastLogin,
		&created.CreatedAt,
	)

	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", user.Username),
			zap.String("email", user.Email),
		)
		return nil, fmt.Errorf("create user %s: %w", user.Username, err)
	}

	return &created, nil
}

// ExistsByUsernameOrEmail runs the single OR-query pre-insert check. It is
// not atomic with the insert; the unique indexes are the final arbiter.
func (ur *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	query := `SELECT "id"::text FROM "Users" WHERE "username" = $1 OR "email" = $2`

	var id string
	err := ur.db.QueryRow(ctx, query, username, email).Scan(&id)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		ur.log.Error("Failed to check existing user",
			zap.Error(err),
			zap.String("username", username),
		)
		return false, fmt.Errorf("check existing user %s: %w", username, err)
	}

	return true, nil
}

// FindActiveByUsername is the login lookup: active accounts only, and the
// only read path that surfaces the password hash.
func (ur *userRepository) FindActiveByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT "id"::text, "username", "fullName", "email", "phoneNumber", "accountType", "password", "isActive", "lastLogin", "createdAt"
		FROM "Users"
		WHERE "username" = $1 AND "isActive" = true
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.FullName,
		&user.Email,
		&user.PhoneNumber,
		&user.AccountType,
		&user.PasswordHash,
		&user.IsActive,
		&user.LastLogin,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find user by username %s: %w", username, err)
	}

	return &user, nil
}

func (ur *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	id, ok := ur.normalizeID(id)
	if !ok {
		return nil, nil
	}

	query := `
		SELECT ` + userPublicColumns + `
		FROM "Users"
		WHERE "id"::text = $1
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.FullName,
		&user.Email,
		&user.PhoneNumber,
		&user.AccountType,
		&user.IsActive,
		&user.LastLogin,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id, err)
	}

	return &user, nil
}

// FindAll lists public profiles, optionally filtered to one role.
// excludeUsername hides the seeded administrator from role views that
// should not show it.
func (ur *userRepository) FindAll(ctx context.Context, accountType entity.AccountType, excludeUsername string) ([]*entity.User, error) {
	query := `SELECT ` + userPublicColumns + ` FROM "Users"`
	var params []any

	if accountType != "" {
		query += ` WHERE "accountType" = $1`
		params = append(params, accountType)

		if excludeUsername != "" {
			query += ` AND "username" != $2`
			params = append(params, excludeUsername)
		}
	}

	query += ` ORDER BY "createdAt" DESC`

	rows, err := ur.db.Query(ctx, query, params...)
	if err != nil {
		ur.log.Error("Failed to list users",
			zap.Error(err),
			zap.String("account_type", string(accountType)),
		)
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var user entity.User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.FullName,
			&user.Email,
			&user.PhoneNumber,
			&user.AccountType,
			&user.IsActive,
			&user.LastLogin,
			&user.CreatedAt,
		)
		if err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}

// UpdateFields applies a partial update in the caller's field order and
// returns the updated public row, or nil when no row matched.
func (ur *userRepository) UpdateFields(ctx context.Context, id string, fields []database.Field) (*entity.User, error) {
	builder := database.NewUpdateBuilder(`"Users"`, userUpdatableColumns)
	for _, f := range fields {
		builder.Set(f.Column, f.Value)
	}

	// Build first: an empty update reads as "no fields" even when the id
	// could never match.
	query, values, err := builder.Build(`"id"::text`, id, userPublicColumns)
	if err != nil {
		return nil, err
	}

	if normalized, ok := ur.normalizeID(id); ok {
		values[len(values)-1] = normalized
	} else {
		return nil, nil
	}

	var user entity.User
	err = ur.db.QueryRow(ctx, query, values...).Scan(
		&user.ID,
		&user.Username,
		&user.FullName,
		&user.Email,
		&user.PhoneNumber,
		&user.AccountType,
		&user.IsActive,
		&user.LastLogin,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", id),
		)
		return nil, fmt.Errorf("update user %s: %w", id, err)
	}

	return &user, nil
}

func (ur *userRepository) SetActive(ctx context.Context, id string, active bool) (*entity.User, error) {
	id, ok := ur.normalizeID(id)
	if !ok {
		return nil, nil
	}

	query := `
		UPDATE "Users"
		SET "isActive" = $1, "updatedAt" = CURRENT_TIMESTAMP
		WHERE "id"::text = $2
		RETURNING ` + userPublicColumns

	var user entity.User
	err := ur.db.QueryRow(ctx, query, active, id).Scan(
		&user.ID,
		&user.Username,
		&user.FullName,
		&user.Email,
		&user.PhoneNumber,
		&user.AccountType,
		&user.IsActive,
		&user.LastLogin,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to set user status",
			zap.Error(err),
			zap.String("user_id", id),
			zap.Bool("active", active),
		)
		return nil, fmt.Errorf("set user %s status: %w", id, err)
	}

	return &user, nil
}

// Delete removes the row permanently. Returns false when no row matched.
func (ur *userRepository) Delete(ctx context.Context, id string) (bool, error) {
	id, ok := ur.normalizeID(id)
	if !ok {
		return false, nil
	}

	result, err := ur.db.Exec(ctx, `DELETE FROM "Users" WHERE "id"::text = $1`, id)
	if err != nil {
		ur.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("user_id", id),
		)
		return false, fmt.Errorf("delete user %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	ur.log.Info("User deleted", zap.String("user_id", id))
	return true, nil
}

func (ur *userRepository) TouchLastLogin(ctx context.Context, id string) error {
	id, ok := ur.normalizeID(id)
	if !ok {
		return nil
	}

	query := `UPDATE "Users" SET "lastLogin" = CURRENT_TIMESTAMP WHERE "id"::text = $1`

	if _, err := ur.db.Exec(ctx, query, id); err != nil {
		ur.log.Error("Failed to touch lastLogin",
			zap.Error(err),
			zap.String("user_id", id),
		)
		return fmt.Errorf("touch lastLogin for user %s: %w", id, err)
	}

	return nil
}

func (ur *userRepository) HasAdmin(ctx context.Context) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM "Users" WHERE "accountType" = $1)`

	var exists bool
	err := ur.db.QueryRow(ctx, query, entity.AccountAdmin).Scan(&exists)
	if err != nil {
		ur.log.Error("Failed to check for admin account", zap.Error(err))
		return false, fmt.Errorf("check for admin account: %w", err)
	}

	return exists, nil
}
