package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if missing and applies incremental updates.
// Every statement is idempotent so this is safe to run on every boot.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := createTables(db); err != nil {
		return err
	}

	if err := addReviewExpiryColumn(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createTables(db *sql.DB) error {
	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,

		`CREATE TABLE IF NOT EXISTS companies (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			is_admin BOOLEAN NOT NULL DEFAULT FALSE,
			company_id UUID REFERENCES companies(id),
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions (expires_at)`,

		`CREATE TABLE IF NOT EXISTS categories (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			pillar TEXT NOT NULL,
			label TEXT NOT NULL,
			sequence INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (pillar, label)
		)`,

		`CREATE TABLE IF NOT EXISTS questions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			category_id UUID NOT NULL REFERENCES categories(id),
			company_id UUID REFERENCES companies(id),
			prompt TEXT NOT NULL,
			sequence INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_questions_company_id ON questions (company_id)`,
		`CREATE INDEX IF NOT EXISTS idx_questions_category_id ON questions (category_id)`,

		`CREATE TABLE IF NOT EXISTS assessment_periods (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			company_id UUID NOT NULL REFERENCES companies(id),
			year INTEGER NOT NULL,
			quarter INTEGER NOT NULL CHECK (quarter BETWEEN 1 AND 4),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (company_id, year, quarter)
		)`,

		`CREATE TABLE IF NOT EXISTS assessment_responses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			period_id UUID NOT NULL REFERENCES assessment_periods(id) ON DELETE CASCADE,
			question_id UUID NOT NULL REFERENCES questions(id),
			score INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_responses_period_id ON assessment_responses (period_id)`,

		`CREATE TABLE IF NOT EXISTS quarterly_reviews (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			company_id UUID NOT NULL REFERENCES companies(id),
			year INTEGER NOT NULL,
			quarter INTEGER NOT NULL,
			content TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (company_id, year, quarter)
		)`,

		`CREATE TABLE IF NOT EXISTS monthly_reports (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			company_id UUID NOT NULL REFERENCES companies(id),
			year INTEGER NOT NULL,
			month INTEGER NOT NULL CHECK (month BETWEEN 1 AND 12),
			team TEXT NOT NULL DEFAULT '',
			product TEXT NOT NULL DEFAULT '',
			sales TEXT NOT NULL DEFAULT '',
			marketing TEXT NOT NULL DEFAULT '',
			finance TEXT NOT NULL DEFAULT '',
			fundraise TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (company_id, year, month)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Failed to run schema statement: %v", err)
			return err
		}
	}
	return nil
}

func addReviewExpiryColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'quarterly_reviews'
				AND column_name = 'expires_at'
			) THEN
				ALTER TABLE quarterly_reviews ADD COLUMN expires_at TIMESTAMPTZ NOT NULL DEFAULT NOW() + INTERVAL '24 hours';
				RAISE NOTICE 'Added expires_at column to quarterly_reviews';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for expires_at column: %v", err)
		return err
	}
	return nil
}
