package database

import (
	"context"
	"fmt"
)

// schemaStatements are applied in order on startup. Tables are created
// only if missing, so restarting against an existing database is safe.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS movies (
		id BIGSERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		duration_minutes INT NOT NULL,
		age_restriction INT NOT NULL,
		ticket_price NUMERIC(10,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS viewers (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		age INT NOT NULL,
		balance NUMERIC(12,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS cinemas (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		city VARCHAR(255) NOT NULL DEFAULT '',
		address VARCHAR(255) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS cinema_movies (
		cinema_id BIGINT NOT NULL REFERENCES cinemas(id) ON DELETE CASCADE,
		movie_id BIGINT NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
		seats INT NOT NULL,
		PRIMARY KEY (cinema_id, movie_id)
	)`,
}

// Setup creates the required tables if they do not exist yet.
// Call once on startup, after the pool is connected.
func Setup(ctx context.Context, db PgxIface) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement: %w", err)
		}
	}
	return nil
}
