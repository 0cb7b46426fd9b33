package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// migrations DDL idempotente que se aplica en cada arranque. Los registros de
// negocio llevan deleted_at para el borrado suave; NULL significa activo.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id          BIGSERIAL PRIMARY KEY,
		user_id     TEXT NOT NULL REFERENCES users(id),
		name        TEXT NOT NULL,
		sku         TEXT NOT NULL,
		factory_sku TEXT NOT NULL DEFAULT '',
		details     TEXT NOT NULL DEFAULT '',
		stock       BIGINT NOT NULL DEFAULT 0,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ,
		deleted_at  TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id              BIGSERIAL PRIMARY KEY,
		user_id         TEXT NOT NULL REFERENCES users(id),
		product_details TEXT NOT NULL,
		factory_sku     TEXT NOT NULL,
		quantity        BIGINT NOT NULL,
		cost_per_item   NUMERIC(12,2) NOT NULL,
		order_date      TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at      TIMESTAMPTZ,
		deleted_at      TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id             BIGSERIAL PRIMARY KEY,
		user_id        TEXT NOT NULL REFERENCES users(id),
		product_id     BIGINT NOT NULL REFERENCES products(id),
		quantity       BIGINT NOT NULL,
		price_per_item NUMERIC(12,2) NOT NULL,
		sale_date      TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at     TIMESTAMPTZ,
		deleted_at     TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id           BIGSERIAL PRIMARY KEY,
		user_id      TEXT NOT NULL REFERENCES users(id),
		order_id     BIGINT NOT NULL REFERENCES orders(id),
		amount       NUMERIC(12,2) NOT NULL,
		payment_date TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at   TIMESTAMPTZ,
		deleted_at   TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_user_active ON products (user_id) WHERE deleted_at IS NULL`,
	`CREATE INDEX IF NOT EXISTS idx_orders_user_active ON orders (user_id) WHERE deleted_at IS NULL`,
	`CREATE INDEX IF NOT EXISTS idx_sales_user_active ON sales (user_id) WHERE deleted_at IS NULL`,
	`CREATE INDEX IF NOT EXISTS idx_payments_user_active ON payments (user_id) WHERE deleted_at IS NULL`,
	`CREATE INDEX IF NOT EXISTS idx_payments_order ON payments (order_id)`,
}

// Migrate aplica el esquema. Seguro de ejecutar en cada arranque.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("aplicar esquema: %w", err)
		}
	}
	return nil
}
