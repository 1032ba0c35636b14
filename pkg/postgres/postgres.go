package postgres

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/ds124wfegd/activity-registration/config"

	_ "github.com/lib/pq"
)

func NewPostgresDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Successfully connected to PostgreSQL")
	return db, nil
}

func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS places (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS activities (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			starts_at TIMESTAMP NOT NULL,
			ends_at TIMESTAMP NOT NULL,
			rooms INTEGER NOT NULL CHECK (rooms >= 0),
			place_id INTEGER NOT NULL REFERENCES places(id),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			CHECK (starts_at < ends_at)
		)`,

		`CREATE TABLE IF NOT EXISTS activity_reservations (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL,
			activity_id INTEGER NOT NULL REFERENCES activities(id),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (user_id, activity_id)
		)`,

		// Indexes
		`CREATE INDEX IF NOT EXISTS idx_activities_starts_at ON activities(starts_at)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_place_id ON activities(place_id)`,
		`CREATE INDEX IF NOT EXISTS idx_reservations_user_id ON activity_reservations(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_reservations_activity_id ON activity_reservations(activity_id)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to execute migration: %w", err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
