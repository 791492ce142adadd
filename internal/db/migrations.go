package db

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'sale_status') THEN
			CREATE TYPE sale_status AS ENUM ('ativa', 'cancelada', 'concluida');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'installment_status') THEN
			CREATE TYPE installment_status AS ENUM ('aberto', 'pago', 'atrasado', 'renegociado');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'purchase_category') THEN
			CREATE TYPE purchase_category AS ENUM ('materiais', 'servicos', 'equipamentos', 'outros');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS brokers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(120) NOT NULL CHECK (name <> ''),
		email VARCHAR(254) NOT NULL DEFAULT '',
		phone VARCHAR(20) NOT NULL DEFAULT '',
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS developments (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(150) NOT NULL,
		city VARCHAR(80) NOT NULL DEFAULT '',
		launch_date DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(120) NOT NULL,
		tax_id VARCHAR(20) NOT NULL DEFAULT '',
		contact VARCHAR(120) NOT NULL DEFAULT '',
		email VARCHAR(254) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS sales (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		broker_id UUID NOT NULL REFERENCES brokers(id) ON DELETE RESTRICT,
		development_id UUID NOT NULL REFERENCES developments(id) ON DELETE RESTRICT,
		client_name VARCHAR(120) NOT NULL,
		sale_date DATE NOT NULL,
		units_sold INTEGER NOT NULL DEFAULT 1 CHECK (units_sold >= 0),
		contract_value NUMERIC(12,2) NOT NULL,
		status sale_status NOT NULL DEFAULT 'ativa',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS installments (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		sale_id UUID NOT NULL REFERENCES sales(id) ON DELETE CASCADE,
		due_date DATE,
		amount NUMERIC(12,2) NOT NULL,
		paid_date DATE,
		paid_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
		status installment_status NOT NULL DEFAULT 'aberto',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS purchase_orders (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		development_id UUID NOT NULL REFERENCES developments(id) ON DELETE RESTRICT,
		supplier_id UUID NOT NULL REFERENCES suppliers(id) ON DELETE RESTRICT,
		order_date DATE NOT NULL,
		category purchase_category NOT NULL,
		total_value NUMERIC(12,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS purchase_items (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		order_id UUID NOT NULL REFERENCES purchase_orders(id) ON DELETE CASCADE,
		description VARCHAR(200) NOT NULL,
		quantity INTEGER NOT NULL DEFAULT 1 CHECK (quantity >= 0),
		unit_cost NUMERIC(12,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS planning_categories (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(120) NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS planned_tasks (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		development_id UUID NOT NULL REFERENCES developments(id) ON DELETE RESTRICT,
		category_id UUID REFERENCES planning_categories(id) ON DELETE SET NULL,
		name VARCHAR(150) NOT NULL,
		planned_start DATE NOT NULL,
		planned_end DATE NOT NULL,
		actual_end DATE,
		planned_cost NUMERIC(12,2) NOT NULL,
		actual_cost NUMERIC(12,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_sales_broker_id ON sales (broker_id);`,
	`CREATE INDEX IF NOT EXISTS idx_sales_development_id ON sales (development_id);`,
	`CREATE INDEX IF NOT EXISTS idx_sales_sale_date ON sales (sale_date);`,
	`CREATE INDEX IF NOT EXISTS idx_installments_sale_id ON installments (sale_id);`,
	`CREATE INDEX IF NOT EXISTS idx_installments_status ON installments (status);`,
	`CREATE INDEX IF NOT EXISTS idx_installments_due_date ON installments (due_date);`,
	`CREATE INDEX IF NOT EXISTS idx_purchase_orders_development_id ON purchase_orders (development_id);`,
	`CREATE INDEX IF NOT EXISTS idx_purchase_orders_supplier_id ON purchase_orders (supplier_id);`,
	`CREATE INDEX IF NOT EXISTS idx_purchase_items_order_id ON purchase_items (order_id);`,
	`CREATE INDEX IF NOT EXISTS idx_planned_tasks_development_id ON planned_tasks (development_id);`,
}

// RunMigrations applies the schema statements in order. Statements are
// idempotent, so reruns are safe.
func RunMigrations(database *gorm.DB, log zerolog.Logger) error {
	for i, statement := range migrationStatements {
		if err := database.Exec(statement).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	log.Info().Int("statements", len(migrationStatements)).Msg("migrations applied")
	return nil
}
