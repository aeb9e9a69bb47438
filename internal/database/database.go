package database

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // SQLite driver
)

func init() {
	// modernc registers itself as "sqlite"; sqlx does not know that name,
	// so named queries need the bindvar style registered explicitly.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// NewSQLXSQLiteDB opens the SQLite database behind sqlx and verifies the
// connection. SQLite allows a single writer, so the pool is kept small.
func NewSQLXSQLiteDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %v", err)
	}

	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %v", err)
	}

	log.Println("Successfully connected to SQLite database")
	return db, nil
}
