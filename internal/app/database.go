package app

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Registers "sqlite" driver

	"sotrama/internal/config"
)

// NewDatabase opens the SQLite database file.
//
// WAL mode lets readers run alongside the single writer, and the
// immediate transaction lock makes every BeginTx take the write lock up
// front, so two reservations can never interleave their seat checks.
func NewDatabase(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)&_pragma=foreign_keys(ON)&_txlock=immediate",
		cfg.Path, cfg.BusyTimeout.Milliseconds(),
	)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows one writer at a time. A single connection keeps all
	// statements on it and turns write contention into queueing instead
	// of SQLITE_BUSY errors.
	db.SetMaxOpenConns(1)

	// Verify connection.
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
