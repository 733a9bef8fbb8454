// repository/db.go
package repository

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"

	"github.com/smarttravelhq/smart-travel-backend/config"
)

var db *sql.DB

// InitDB opens the database connection and bootstraps the schema
func InitDB(cfg config.DatabaseConfig) error {
	var err error
	db, err = sql.Open("postgres", cfg.ConnString())
	if err != nil {
		return fmt.Errorf("failed to open database: %v", err)
	}

	if err = db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %v", err)
	}

	if err = createTables(db); err != nil {
		return fmt.Errorf("failed to create tables: %v", err)
	}

	log.Println("Successfully connected to the database")
	return nil
}

// createTables creates the users, trips, and expenses tables if they don't
// exist. Expenses cascade on trip delete; trips reference their owning user.
func createTables(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS trips (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id),
			trip_name TEXT NOT NULL,
			destination TEXT NOT NULL,
			start_date TEXT,
			end_date TEXT,
			budget DOUBLE PRECISION NOT NULL DEFAULT 0,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id SERIAL PRIMARY KEY,
			trip_id INTEGER NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
			category TEXT NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			description TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// CloseDB closes the database connection
func CloseDB() {
	if db != nil {
		db.Close()
	}
}

// GetDB returns the database instance
func GetDB() *sql.DB {
	return db
}
