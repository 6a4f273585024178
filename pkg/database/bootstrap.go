package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const createUsersTable = `
	CREATE TABLE IF NOT EXISTS "Users" (
		"id" SERIAL PRIMARY KEY,
		"username" VARCHAR(50) UNIQUE NOT NULL,
		"fullName" VARCHAR(100) NOT NULL,
		"email" VARCHAR(100) UNIQUE NOT NULL,
		"phoneNumber" VARCHAR(9) NOT NULL,
		"accountType" VARCHAR(20) NOT NULL DEFAULT 'tenant' CHECK ("accountType" IN ('tenant', 'landlord', 'technician', 'admin')),
		"password" VARCHAR(255) NOT NULL,
		"isActive" BOOLEAN DEFAULT true,
		"lastLogin" TIMESTAMP,
		"createdAt" TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		"updatedAt" TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)
`

// landlordId type is filled in from the live Users.id type so the foreign
// key matches whatever that deployment actually stores.
const createPropertiesTable = `
	CREATE TABLE IF NOT EXISTS "Properties" (
		"id" SERIAL PRIMARY KEY,
		"landlordId" %s NOT NULL REFERENCES "Users"("id") ON DELETE CASCADE,
		"title" VARCHAR(200) NOT NULL,
		"description" TEXT,
		"location" VARCHAR(200) NOT NULL,
		"price" DECIMAL(12, 2) NOT NULL,
		"propertyType" VARCHAR(50),
		"bedrooms" INTEGER,
		"bathrooms" INTEGER,
		"area" DECIMAL(10, 2),
		"picture" TEXT,
		"video" TEXT,
		"verificationDocument" TEXT,
		"status" VARCHAR(20) NOT NULL DEFAULT 'pending' CHECK ("status" IN ('pending', 'approved', 'rejected', 'forwarded_to_council')),
		"paymentStatus" VARCHAR(20) DEFAULT 'pending' CHECK ("paymentStatus" IN ('pending', 'paid', 'failed')),
		"paymentMethod" VARCHAR(50),
		"createdAt" TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		"updatedAt" TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)
`

const createTouchTriggerFn = `
	CREATE OR REPLACE FUNCTION update_updated_at_column()
	RETURNS TRIGGER AS $$
	BEGIN
		NEW."updatedAt" = CURRENT_TIMESTAMP;
		RETURN NEW;
	END;
	$$ language 'plpgsql'
`

// EnsureSchema creates or repairs the schema. It is idempotent and runs on
// every process start, before the listener accepts connections. Table
// creation failures are fatal; every other step logs a warning and moves
// on. The returned ColumnType is the live storage type of Users.id
// (integer fallback), which repositories need to bind id parameters.
func EnsureSchema(ctx context.Context, db PgxIface, log *zap.Logger) (ColumnType, error) {
	log.Info("Ensuring database schema")

	if _, err := db.Exec(ctx, createUsersTable); err != nil {
		return ColumnTypeInteger, fmt.Errorf("create Users table: %w", err)
	}

	accountIDType := ColumnStorageType(ctx, db, log, "Users", "id")
	ensureIDDefault(ctx, db, log, accountIDType)
	ensureTimestampDefaults(ctx, db, log)

	userIndexes := []string{
		`CREATE INDEX IF NOT EXISTS "idx_users_username" ON "Users"("username")`,
		`CREATE INDEX IF NOT EXISTS "idx_users_email" ON "Users"("email")`,
		`CREATE INDEX IF NOT EXISTS "idx_users_accountType" ON "Users"("accountType")`,
	}
	for _, stmt := range userIndexes {
		if _, err := db.Exec(ctx, stmt); err != nil {
			log.Warn("Failed to create Users index", zap.Error(err))
		}
	}

	// Integer fallback keeps the FK creatable when introspection found
	// nothing to go on.
	fkType := "INTEGER"
	if accountIDType == ColumnTypeUUID {
		fkType = "UUID"
	}
	log.Info("Creating Properties table", zap.String("landlordId_type", fkType))

	if _, err := db.Exec(ctx, fmt.Sprintf(createPropertiesTable, fkType)); err != nil {
		return accountIDType, fmt.Errorf("create Properties table: %w", err)
	}

	propertyIndexes := []string{
		`CREATE INDEX IF NOT EXISTS "idx_properties_landlordId" ON "Properties"("landlordId")`,
		`CREATE INDEX IF NOT EXISTS "idx_properties_status" ON "Properties"("status")`,
		`CREATE INDEX IF NOT EXISTS "idx_properties_paymentStatus" ON "Properties"("paymentStatus")`,
	}
	for _, stmt := range propertyIndexes {
		if _, err := db.Exec(ctx, stmt); err != nil {
			log.Warn("Failed to create Properties index", zap.Error(err))
		}
	}

	ensureTouchTriggers(ctx, db, log)

	log.Info("Database schema ready", zap.String("account_id_type", accountIDType.String()))
	return accountIDType, nil
}

// ensureIDDefault installs an id-generation default matching the live
// column type: gen_random_uuid() for UUID columns, an owned sequence for
// integer columns. The sequence is fast-forwarded past the current max id
// so inserts never collide with rows written before the sequence existed.
func ensureIDDefault(ctx context.Context, db PgxIface, log *zap.Logger, idType ColumnType) {
	switch idType {
	case ColumnTypeUUID:
		log.Info("Setting up UUID generation for Users.id")
		if _, err := db.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS "pgcrypto"`); err != nil {
			log.Warn("Failed to create pgcrypto extension", zap.Error(err))
			return
		}
		if _, err := db.Exec(ctx, `ALTER TABLE "Users" ALTER COLUMN "id" SET DEFAULT gen_random_uuid()`); err != nil {
			log.Warn("Failed to set UUID default on Users.id", zap.Error(err))
		}

	case ColumnTypeInteger:
		log.Info("Setting up sequence for Users.id")
		steps := []string{
			`CREATE SEQUENCE IF NOT EXISTS "Users_id_seq"`,
			`ALTER SEQUENCE "Users_id_seq" OWNED BY "Users"."id"`,
			`ALTER TABLE "Users" ALTER COLUMN "id" SET DEFAULT nextval('"Users_id_seq"')`,
		}
		for _, stmt := range steps {
			if _, err := db.Exec(ctx, stmt); err != nil {
				log.Warn("Sequence setup failed", zap.Error(err))
				return
			}
		}

		var maxID int64
		err := db.QueryRow(ctx, `SELECT COALESCE(MAX("id")::BIGINT, 0) FROM "Users"`).Scan(&maxID)
		if err != nil {
			log.Warn("Failed to read max Users.id for sequence sync", zap.Error(err))
			return
		}
		if maxID > 0 {
			if _, err := db.Exec(ctx, `SELECT setval('"Users_id_seq"', $1, true)`, maxID); err != nil {
				log.Warn("Failed to sync Users_id_seq", zap.Error(err))
			}
		}

	default:
		log.Warn("Unknown Users.id column type, skipping default setup")
	}
}

// ensureTimestampDefaults repairs tables created before the timestamp
// columns carried a default.
func ensureTimestampDefaults(ctx context.Context, db PgxIface, log *zap.Logger) {
	stmts := []string{
		`ALTER TABLE "Users" ALTER COLUMN "createdAt" SET DEFAULT CURRENT_TIMESTAMP`,
		`ALTER TABLE "Users" ALTER COLUMN "updatedAt" SET DEFAULT CURRENT_TIMESTAMP`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			log.Warn("Failed to set timestamp column default", zap.Error(err))
		}
	}
}

// ensureTouchTriggers installs the shared updatedAt trigger function and
// (re)attaches it to both tables. Triggers are dropped first so repeated
// bootstraps never accumulate duplicates.
func ensureTouchTriggers(ctx context.Context, db PgxIface, log *zap.Logger) {
	if _, err := db.Exec(ctx, createTouchTriggerFn); err != nil {
		log.Warn("Failed to create updatedAt trigger function", zap.Error(err))
		return
	}

	triggers := []struct {
		name  string
		table string
	}{
		{"update_users_updated_at", `"Users"`},
		{"update_properties_updated_at", `"Properties"`},
	}
	for _, tg := range triggers {
		stmt := fmt.Sprintf(`
			DROP TRIGGER IF EXISTS %s ON %s;
			CREATE TRIGGER %s
				BEFORE UPDATE ON %s
				FOR EACH ROW
				EXECUTE FUNCTION update_updated_at_column()
		`, tg.name, tg.table, tg.name, tg.table)

		if _, err := db.Exec(ctx, stmt); err != nil {
			log.Warn("Failed to install updatedAt trigger",
				zap.Error(err),
				zap.String("trigger", tg.name),
			)
		}
	}
}
