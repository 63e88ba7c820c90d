package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is the on-disk layout. The agences, voyages and reservations
// tables are a compatibility contract with database files created by
// earlier releases of the mobile app and must keep this exact shape.
// The artisans and commentaires tables are additive.
const schema = `
CREATE TABLE IF NOT EXISTS agences (
	id INTEGER PRIMARY KEY NOT NULL,
	nom TEXT NOT NULL,
	telephone TEXT NOT NULL,
	email TEXT NOT NULL,
	ville TEXT NOT NULL,
	latitude REAL NOT NULL,
	longitude REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS voyages (
	id INTEGER PRIMARY KEY NOT NULL,
	agenceId INTEGER NOT NULL,
	depart TEXT NOT NULL,
	arrivee TEXT NOT NULL,
	date TEXT NOT NULL,
	heure TEXT NOT NULL,
	prix INTEGER NOT NULL,
	placesDisponibles INTEGER NOT NULL,
	FOREIGN KEY (agenceId) REFERENCES agences(id)
);
CREATE TABLE IF NOT EXISTS reservations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	voyageId INTEGER NOT NULL,
	nombrePlaces INTEGER NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	paymentStatus TEXT NOT NULL DEFAULT 'unpaid',
	createdAt TEXT NOT NULL,
	FOREIGN KEY (voyageId) REFERENCES voyages(id)
);
CREATE TABLE IF NOT EXISTS artisans (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	nom TEXT NOT NULL,
	metier TEXT NOT NULL,
	ville TEXT NOT NULL,
	quartier TEXT NOT NULL,
	contact TEXT NOT NULL,
	whatsapp INTEGER NOT NULL DEFAULT 0,
	note REAL NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS commentaires (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	artisanId INTEGER NOT NULL,
	contenu TEXT NOT NULL,
	date TEXT NOT NULL,
	FOREIGN KEY (artisanId) REFERENCES artisans(id) ON DELETE CASCADE
);
`

// Initialize creates the tables if they do not exist yet.
func Initialize(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
