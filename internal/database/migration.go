package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS verification_codes (
	code             TEXT PRIMARY KEY,
	participant_name TEXT NOT NULL,
	event_name       TEXT NOT NULL,
	event_date       TEXT NOT NULL DEFAULT '',
	event_place      TEXT NOT NULL DEFAULT '',
	workload         TEXT NOT NULL DEFAULT '',
	verification_url TEXT NOT NULL DEFAULT '',
	qr_base64        TEXT NOT NULL DEFAULT '',
	issued_at        TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_verification_codes_event
	ON verification_codes (event_name, event_date);
`

// Migrate cria o esquema do armazenamento de códigos de verificação.
// O DDL é idempotente, então pode rodar a cada inicialização.
func Migrate(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to run schema migration: %w", err)
	}
	return nil
}
