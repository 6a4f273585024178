package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"estatelink/internal/data/entity"
	"estatelink/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const propertyColumns = `"id", "landlordId"::text, "title", "description", "location", "price", "propertyType", "bedrooms", "bathrooms", "area", "picture", "video", "verificationDocument", "status", "paymentStatus", "paymentMethod", "createdAt", "updatedAt"`

var (
	propertyUpdatableColumns = []string{
		"title", "description", "location", "price", "propertyType",
		"bedrooms", "bathrooms", "area", "picture", "video", "verificationDocument",
	}
	paymentUpdatableColumns = []string{"paymentStatus", "paymentMethod"}
)

type PropertyRepository interface {
	Create(ctx context.Context, p *entity.Property) (*entity.Property, error)
	FindAll(ctx context.Context, landlordID string, status entity.PropertyStatus) ([]*entity.PropertyWithOwner, error)
	FindByID(ctx context.Context, id int64) (*entity.PropertyWithOwner, error)
	StatusByID(ctx context.Context, id int64) (entity.PropertyStatus, bool, error)
	UpdateFields(ctx context.Context, id int64, fields []database.Field) (*entity.Property, error)
	UpdatePayment(ctx context.Context, id int64, fields []database.Field) (*entity.Property, error)
	SetStatus(ctx context.Context, id int64, status entity.PropertyStatus) (*entity.Property, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type propertyRepository struct {
	db  database.PgxIface
	log *zap.Logger

	// ownerIDType is the live storage type of Users.id, and therefore of
	// Properties.landlordId; owner-id parameters are cast to match it.
	ownerIDType database.ColumnType
}

func NewPropertyRepository(db database.PgxIface, ownerIDType database.ColumnType, log *zap.Logger) PropertyRepository {
	return &propertyRepository{
		db:          db,
		log:         log,
		ownerIDType: ownerIDType,
	}
}

// ownerCast renders the parameter expression for an owner-id placeholder,
// cast to the detected column type so the comparison never type-errors.
func (pr *propertyRepository) ownerCast(placeholder int) string {
	if pr.ownerIDType == database.ColumnTypeUUID {
		return fmt.Sprintf("CAST($%d AS uuid)", placeholder)
	}
	return fmt.Sprintf("CAST($%d AS INTEGER)", placeholder)
}

func isCanonicalUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

func (pr *propertyRepository) Create(ctx context.Context, p *entity.Property) (*entity.Property, error) {
	query := fmt.Sprintf(`
		INSERT INTO "Properties" ("landlordId", "title", "description", "location", "price", "propertyType", "bedrooms", "bathrooms", "area", "picture", "video", "verificationDocument", "status", "paymentStatus", "createdAt", "updatedAt")
		VALUES (%s, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 'pending', 'pending', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING %s`, pr.ownerCast(1), propertyColumns)

	var created entity.Property
	err := pr.db.QueryRow(ctx, query,
		p.LandlordID,
		p.Title,
		p.Description,
		p.Location,
		p.Price,
		p.PropertyType,
		p.Bedrooms,
		p.Bathrooms,
		p.Area,
		p.Picture,
		p.Video,
		p.VerificationDocument,
	).Scan(propertyScanTargets(&created)...)

	if err != nil {
		pr.log.Error("Failed to create property",
			zap.Error(err),
			zap.String("landlord_id", p.LandlordID),
			zap.String("title", p.Title),
		)
		return nil, fmt.Errorf("create property %q: %w", p.Title, err)
	}

	return &created, nil
}

// FindAll lists properties with their owner's public identity. The owner
// filter adapts to the detected landlordId type: against a UUID column a
// value not in canonical UUID form is dropped (with a warning) instead of
// causing a type error; against an integer column the value is parsed and
// likewise dropped when unparseable.
func (pr *propertyRepository) FindAll(ctx context.Context, landlordID string, status entity.PropertyStatus) ([]*entity.PropertyWithOwner, error) {
	query := `
		SELECT ` + prefixedPropertyColumns + `, u."username", u."fullName", u."email"
		FROM "Properties" p
		LEFT JOIN "Users" u ON p."landlordId" = u."id"
	`
	var params []any
	var conditions []string

	if landlordID != "" {
		if pr.ownerIDType == database.ColumnTypeUUID {
			if isCanonicalUUID(landlordID) {
				conditions = append(conditions, fmt.Sprintf(`p."landlordId" = %s`, pr.ownerCast(len(params)+1)))
				params = append(params, landlordID)
			} else {
				// Known lossy edge: the filter silently degrades to an
				// unfiltered list rather than failing the request.
				pr.log.Warn("landlordId filter is not a canonical UUID, skipping filter",
					zap.String("landlord_id", landlordID),
				)
			}
		} else {
			if n, err := strconv.ParseInt(landlordID, 10, 64); err == nil {
				conditions = append(conditions, fmt.Sprintf(`p."landlordId" = $%d`, len(params)+1))
				params = append(params, n)
			} else {
				pr.log.Warn("landlordId filter is not an integer, skipping filter",
					zap.String("landlord_id", landlordID),
				)
			}
		}
	}

	if status != "" {
		conditions = append(conditions, fmt.Sprintf(`p."status" = $%d`, len(params)+1))
		params = append(params, status)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY p."createdAt" DESC`

	rows, err := pr.db.Query(ctx, query, params...)
	if err != nil {
		pr.log.Error("Failed to list properties",
			zap.Error(err),
			zap.String("landlord_id", landlordID),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	var properties []*entity.PropertyWithOwner
	for rows.Next() {
		var p entity.PropertyWithOwner
		targets := append(propertyScanTargets(&p.Property), &p.OwnerUsername, &p.OwnerFullName, &p.OwnerEmail)
		if err := rows.Scan(targets...); err != nil {
			pr.log.Error("Failed to scan property row", zap.Error(err))
			return nil, fmt.Errorf("scan property row: %w", err)
		}
		properties = append(properties, &p)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate properties rows: %w", err)
	}

	return properties, nil
}

func (pr *propertyRepository) FindByID(ctx context.Context, id int64) (*entity.PropertyWithOwner, error) {
	query := `
		SELECT ` + prefixedPropertyColumns + `, u."username", u."fullName", u."email"
		FROM "Properties" p
		JOIN "Users" u ON p."landlordId" = u."id"
		WHERE p."id" = $1
	`

	var p entity.PropertyWithOwner
	targets := append(propertyScanTargets(&p.Property), &p.OwnerUsername, &p.OwnerFullName, &p.OwnerEmail)
	err := pr.db.QueryRow(ctx, query, id).Scan(targets...)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find property",
			zap.Error(err),
			zap.Int64("property_id", id),
		)
		return nil, fmt.Errorf("find property %d: %w", id, err)
	}

	return &p, nil
}

func (pr *propertyRepository) StatusByID(ctx context.Context, id int64) (entity.PropertyStatus, bool, error) {
	var status entity.PropertyStatus
	err := pr.db.QueryRow(ctx, `SELECT "status" FROM "Properties" WHERE "id" = $1`, id).Scan(&status)

	if err == pgx.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		pr.log.Error("Failed to read property status",
			zap.Error(err),
			zap.Int64("property_id", id),
		)
		return "", false, fmt.Errorf("read property %d status: %w", id, err)
	}

	return status, true, nil
}

func (pr *propertyRepository) UpdateFields(ctx context.Context, id int64, fields []database.Field) (*entity.Property, error) {
	return pr.update(ctx, id, fields, propertyUpdatableColumns)
}

func (pr *propertyRepository) UpdatePayment(ctx context.Context, id int64, fields []database.Field) (*entity.Property, error) {
	return pr.update(ctx, id, fields, paymentUpdatableColumns)
}

func (pr *propertyRepository) update(ctx context.Context, id int64, fields []database.Field, allowed []string) (*entity.Property, error) {
	builder := database.NewUpdateBuilder(`"Properties"`, allowed)
	for _, f := range fields {
		builder.Set(f.Column, f.Value)
	}

	query, values, err := builder.Build(`"id"`, id, propertyColumns)
	if err != nil {
		return nil, err
	}

	var p entity.Property
	err = pr.db.QueryRow(ctx, query, values...).Scan(propertyScanTargets(&p)...)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to update property",
			zap.Error(err),
			zap.Int64("property_id", id),
		)
		return nil, fmt.Errorf("update property %d: %w", id, err)
	}

	return &p, nil
}

func (pr *propertyRepository) SetStatus(ctx context.Context, id int64, status entity.PropertyStatus) (*entity.Property, error) {
	query := `
		UPDATE "Properties"
		SET "status" = $1, "updatedAt" = CURRENT_TIMESTAMP
		WHERE "id" = $2
		RETURNING ` + propertyColumns

	var p entity.Property
	err := pr.db.QueryRow(ctx, query, status, id).Scan(propertyScanTargets(&p)...)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to set property status",
			zap.Error(err),
			zap.Int64("property_id", id),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("set property %d status: %w", id, err)
	}

	return &p, nil
}

func (pr *propertyRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := pr.db.Exec(ctx, `DELETE FROM "Properties" WHERE "id" = $1`, id)
	if err != nil {
		pr.log.Error("Failed to delete property",
			zap.Error(err),
			zap.Int64("property_id", id),
		)
		return false, fmt.Errorf("delete property %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	pr.log.Info("Property deleted", zap.Int64("property_id", id))
	return true, nil
}

// prefixedPropertyColumns is propertyColumns with the list-query alias.
var prefixedPropertyColumns = `p.` + strings.ReplaceAll(propertyColumns, `, "`, `, p."`)

// propertyScanTargets keeps every Scan call aligned with propertyColumns.
func propertyScanTargets(p *entity.Property) []any {
	return []any{
		&p.ID,
		&p.LandlordID,
		&p.Title,
		&p.Description,
		&p.Location,
		&p.Price,
		&p.PropertyType,
		&p.Bedrooms,
		&p.Bathrooms,
		&p.Area,
		&p.Picture,
		&p.Video,
		&p.VerificationDocument,
		&p.Status,
		&p.PaymentStatus,
		&p.PaymentMethod,
		&p.CreatedAt,
		&p.UpdatedAt,
	}
}
