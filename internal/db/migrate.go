package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the data store schema. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Rows carry a seq column holding their position in the source collection;
// list queries order by it so the original order survives the round trip.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id     TEXT PRIMARY KEY,
		name   TEXT NOT NULL,
		email  TEXT NOT NULL DEFAULT '',
		phone  TEXT NOT NULL DEFAULT '',
		avatar TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS clients (
		id      TEXT PRIMARY KEY,
		seq     INTEGER NOT NULL,
		name    TEXT NOT NULL,
		phone   TEXT NOT NULL DEFAULT '',
		email   TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS equipment (
		id               TEXT PRIMARY KEY,
		seq              INTEGER NOT NULL,
		name             TEXT NOT NULL,
		type             TEXT NOT NULL,
		serial           TEXT NOT NULL DEFAULT '',
		model            TEXT NOT NULL DEFAULT '',
		status           TEXT NOT NULL CHECK(status IN ('Ativo','Inativo')),
		location         TEXT NOT NULL DEFAULT '',
		install_date     TEXT NOT NULL DEFAULT '',
		last_maintenance TEXT NOT NULL DEFAULT '',
		next_maintenance TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS equipment_attachments (
		id           TEXT PRIMARY KEY,
		equipment_id TEXT NOT NULL REFERENCES equipment(id) ON DELETE CASCADE,
		seq          INTEGER NOT NULL,
		name         TEXT NOT NULL,
		size         TEXT NOT NULL DEFAULT '',
		date         TEXT NOT NULL DEFAULT '',
		kind         TEXT NOT NULL CHECK(kind IN ('pdf','doc'))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_attachments_equipment ON equipment_attachments(equipment_id)`,

	`CREATE TABLE IF NOT EXISTS service_records (
		id           TEXT PRIMARY KEY,
		equipment_id TEXT NOT NULL REFERENCES equipment(id) ON DELETE CASCADE,
		seq          INTEGER NOT NULL,
		title        TEXT NOT NULL,
		technician   TEXT NOT NULL DEFAULT '',
		date         TEXT NOT NULL DEFAULT '',
		observations TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_service_records_equipment ON service_records(equipment_id)`,

	`CREATE TABLE IF NOT EXISTS service_orders (
		id           TEXT PRIMARY KEY,
		seq          INTEGER NOT NULL,
		os_number    TEXT NOT NULL,
		client_id    TEXT NOT NULL REFERENCES clients(id),
		status       TEXT NOT NULL
		             CHECK(status IN ('Pendente','Para Orçamento','Orçamento Enviado',
		                              'Aguardando Peças','Iniciada','Concluída','Por Iniciar')),
		service_type TEXT NOT NULL DEFAULT '',
		date         TEXT NOT NULL DEFAULT '',
		time         TEXT NOT NULL DEFAULT '',
		description  TEXT NOT NULL DEFAULT '',
		scheduled    TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_service_orders_client ON service_orders(client_id)`,

	`CREATE TABLE IF NOT EXISTS service_order_equipment (
		service_order_id TEXT NOT NULL REFERENCES service_orders(id) ON DELETE CASCADE,
		equipment_id     TEXT NOT NULL REFERENCES equipment(id),
		seq              INTEGER NOT NULL,
		PRIMARY KEY (service_order_id, equipment_id)
	)`,

	`CREATE TABLE IF NOT EXISTS service_order_history (
		id               TEXT PRIMARY KEY,
		service_order_id TEXT NOT NULL REFERENCES service_orders(id) ON DELETE CASCADE,
		seq              INTEGER NOT NULL,
		action           TEXT NOT NULL,
		date             TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_history_service_order ON service_order_history(service_order_id)`,
}
