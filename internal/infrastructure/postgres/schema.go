package postgres

import (
	"context"
	"fmt"
)

// Las tablas llevan el nombre de las colecciones del document store; "user" es palabra reservada.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS "user" (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		role          TEXT NOT NULL DEFAULT 'technician' CHECK (role IN ('technician', 'office')),
		password_hash TEXT NOT NULL,
		phone         TEXT,
		is_active     BOOLEAN NOT NULL DEFAULT TRUE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS inventoryitem (
		sku         TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT,
		unit        TEXT,
		supplier    TEXT NOT NULL,
		price       NUMERIC(14,4) CHECK (price >= 0),
		active      BOOLEAN NOT NULL DEFAULT TRUE,
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS technicianstock (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		sku        TEXT NOT NULL,
		quantity   INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (user_id, sku)
	)`,
	`CREATE TABLE IF NOT EXISTS workorder (
		order_id         TEXT PRIMARY KEY,
		technician_id    TEXT,
		technician_email TEXT,
		status           TEXT NOT NULL DEFAULT 'open' CHECK (status IN ('open', 'completed')),
		external_ref     TEXT,
		completed_at     TEXT,
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Migrate crea las tablas si no existen, todo en una transacción.
func Migrate(ctx context.Context, tx *TxRunner) error {
	return tx.Run(ctx, func(q Querier) error {
		for _, stmt := range schemaStatements {
			if _, err := q.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}
		return nil
	})
}
