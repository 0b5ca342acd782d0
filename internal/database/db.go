package database

import (
	"log"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // driver SQLite puro-Go para database/sql
)

// Connect abre (ou cria) o banco SQLite embutido. A conexão é um recurso de
// dono único: o orquestrador a detém durante todo o lote, sem escrita
// concorrente de múltiplos processos.
func Connect(dbPath string) *sqlx.DB {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create database directory: %v", err)
		}
	}

	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// SQLite embutido: um único escritor
	db.SetMaxOpenConns(1)

	return db
}
