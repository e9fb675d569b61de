package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the GORM connection pool backed by pgx and applies the
// idempotent schema patches. The returned handle is owned by the caller and is
// passed explicitly to every repository.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations creates missing tables and brings databases created by the
// earlier version of the tool up to date. Safe to run on every start.
func RunMigrations(db *gorm.DB) error {
	if err := applySchema(db); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	if err := applySchemaPatches(db); err != nil {
		return fmt.Errorf("schema patches: %w", err)
	}
	return nil
}

// applySchema creates every table with explicit DDL so numeric precision and
// unique constraints are exactly what the accounting code expects.
func applySchema(db *gorm.DB) error {
	tables := []struct{ descr, sql string }{
		{"materials", `
CREATE TABLE IF NOT EXISTS materials (
  material_id   BIGSERIAL PRIMARY KEY,
  name          TEXT          NOT NULL UNIQUE,
  unit          TEXT          NOT NULL DEFAULT 'ton',
  rate_per_unit NUMERIC(12,2) NOT NULL CHECK (rate_per_unit >= 0),
  is_active     BOOLEAN       NOT NULL DEFAULT TRUE,
  created_at    TIMESTAMPTZ   NOT NULL DEFAULT NOW(),
  updated_at    TIMESTAMPTZ   NOT NULL DEFAULT NOW()
)`},
		{"vehicle_owners", `
CREATE TABLE IF NOT EXISTS vehicle_owners (
  owner_id     BIGSERIAL PRIMARY KEY,
  name         TEXT        NOT NULL UNIQUE,
  contact_info TEXT,
  is_active    BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`},
		{"vehicles", `
CREATE TABLE IF NOT EXISTS vehicles (
  vehicle_id     BIGSERIAL PRIMARY KEY,
  owner_id       BIGINT      NOT NULL REFERENCES vehicle_owners(owner_id),
  vehicle_number TEXT        NOT NULL,
  last_used_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  UNIQUE (owner_id, vehicle_number)
)`},
		{"bills", `
CREATE TABLE IF NOT EXISTS bills (
  bill_id        BIGSERIAL PRIMARY KEY,
  owner_id       BIGINT        NOT NULL REFERENCES vehicle_owners(owner_id),
  vehicle_number TEXT          NOT NULL,
  total_amount   NUMERIC(14,2) NOT NULL,
  daily_bill_no  INT           NOT NULL,
  bill_date      DATE          NOT NULL,
  include_pass   BOOLEAN       NOT NULL DEFAULT FALSE,
  pdf_path       TEXT,
  bill_timestamp TIMESTAMPTZ   NOT NULL DEFAULT NOW()
)`},
		{"bill_day_counters", `
CREATE TABLE IF NOT EXISTS bill_day_counters (
  bill_date DATE PRIMARY KEY,
  last_no   INT  NOT NULL
)`},
		{"transactions", `
CREATE TABLE IF NOT EXISTS transactions (
  transaction_id        BIGSERIAL PRIMARY KEY,
  owner_id              BIGINT        NOT NULL REFERENCES vehicle_owners(owner_id),
  material_id           BIGINT        NOT NULL REFERENCES materials(material_id),
  vehicle_number        TEXT          NOT NULL,
  quantity              NUMERIC(12,3) NOT NULL CHECK (quantity > 0),
  rate_at_sale          NUMERIC(12,2) NOT NULL,
  total_cost            NUMERIC(14,2) NOT NULL,
  bill_id               BIGINT REFERENCES bills(bill_id) ON DELETE SET NULL,
  mattam                TEXT,
  grill_mattam          BOOLEAN       NOT NULL DEFAULT FALSE,
  mattam_checked        BOOLEAN       NOT NULL DEFAULT FALSE,
  transaction_timestamp TIMESTAMPTZ   NOT NULL DEFAULT NOW()
)`},
		{"owner_passes", `
CREATE TABLE IF NOT EXISTS owner_passes (
  pass_id        BIGSERIAL PRIMARY KEY,
  owner_id       BIGINT        NOT NULL REFERENCES vehicle_owners(owner_id),
  vehicle_number TEXT          NOT NULL,
  pass_amount    NUMERIC(12,2) NOT NULL,
  bill_id        BIGINT REFERENCES bills(bill_id) ON DELETE SET NULL,
  pass_date      TIMESTAMPTZ   NOT NULL DEFAULT NOW()
)`},
		{"owner_payments", `
CREATE TABLE IF NOT EXISTS owner_payments (
  payment_id   BIGSERIAL PRIMARY KEY,
  owner_id     BIGINT        NOT NULL REFERENCES vehicle_owners(owner_id),
  amount       NUMERIC(14,2) NOT NULL CHECK (amount > 0),
  mode         TEXT,
  notes        TEXT,
  payment_date TIMESTAMPTZ   NOT NULL DEFAULT NOW(),
  created_at   TIMESTAMPTZ   NOT NULL DEFAULT NOW()
)`},
		{"operators", `
CREATE TABLE IF NOT EXISTS operators (
  operator_id   BIGSERIAL PRIMARY KEY,
  username      TEXT        NOT NULL UNIQUE,
  display_name  TEXT        NOT NULL,
  password_hash TEXT        NOT NULL,
  is_active     BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`},
	}
	for _, t := range tables {
		if err := db.Exec(t.sql).Error; err != nil {
			return fmt.Errorf("create %q: %w", t.descr, err)
		}
	}
	return nil
}

// applySchemaPatches upgrades databases created by the first release, which
// lacked daily numbering, pass flags, printable documents and mattam
// annotations. Every statement is guarded so re-running is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		`ALTER TABLE bills ADD COLUMN IF NOT EXISTS daily_bill_no INT NOT NULL DEFAULT 0`,
		`ALTER TABLE bills ADD COLUMN IF NOT EXISTS include_pass BOOLEAN NOT NULL DEFAULT FALSE`,
		`ALTER TABLE bills ADD COLUMN IF NOT EXISTS pdf_path TEXT`,
		`ALTER TABLE bills ADD COLUMN IF NOT EXISTS bill_timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW()`,
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM information_schema.columns
		                 WHERE table_name = 'bills' AND column_name = 'bill_date') THEN
		    ALTER TABLE bills ADD COLUMN bill_date DATE;
		    UPDATE bills SET bill_date = (bill_timestamp AT TIME ZONE 'Asia/Kolkata')::date;
		    ALTER TABLE bills ALTER COLUMN bill_date SET NOT NULL;
		  END IF;
		END $$`,
		`ALTER TABLE transactions ADD COLUMN IF NOT EXISTS bill_id BIGINT REFERENCES bills(bill_id) ON DELETE SET NULL`,
		`ALTER TABLE transactions ADD COLUMN IF NOT EXISTS mattam TEXT`,
		`ALTER TABLE transactions ADD COLUMN IF NOT EXISTS grill_mattam BOOLEAN NOT NULL DEFAULT FALSE`,
		`ALTER TABLE transactions ADD COLUMN IF NOT EXISTS mattam_checked BOOLEAN NOT NULL DEFAULT FALSE`,
		`ALTER TABLE owner_payments ADD COLUMN IF NOT EXISTS created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()`,
		`ALTER TABLE vehicles ADD COLUMN IF NOT EXISTS created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()`,
		`ALTER TABLE materials ADD COLUMN IF NOT EXISTS created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()`,
		`ALTER TABLE vehicle_owners ADD COLUMN IF NOT EXISTS created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()`,
		`CREATE INDEX IF NOT EXISTS idx_bills_bill_date ON bills (bill_date)`,
		`CREATE INDEX IF NOT EXISTS idx_bills_owner ON bills (owner_id)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_owner_ts ON transactions (owner_id, transaction_timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_bill ON transactions (bill_id)`,
		`CREATE INDEX IF NOT EXISTS idx_owner_passes_owner_date ON owner_passes (owner_id, pass_date)`,
		`CREATE INDEX IF NOT EXISTS idx_owner_payments_owner_date ON owner_payments (owner_id, payment_date)`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
