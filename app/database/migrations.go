package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the tables this application owns. The four academic
// reference tables (program_master, course_evaluation_component,
// student_marks, student_marks_summary) are provisioned and populated by the
// university's upstream systems and are never created or written here.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := createUsersTable(db); err != nil {
		return err
	}
	if err := createSessionsTable(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createUsersTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL
		)`

	_, err := db.Exec(query)
	return err
}

func createSessionsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`

	_, err := db.Exec(query)
	return err
}
