// internal/common/database/migrations.go
// Schema for people, match decisions and introductions

package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS people (
		id UUID PRIMARY KEY,
		matchmaker_id TEXT,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		name VARCHAR(200) NOT NULL,
		age INTEGER,
		location TEXT,
		gender TEXT,
		preferences JSONB,
		personality JSONB,
		notes TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS match_decisions (
		id UUID PRIMARY KEY,
		matchmaker_id TEXT NOT NULL,
		subject_id UUID NOT NULL REFERENCES people(id),
		candidate_id UUID NOT NULL REFERENCES people(id),
		decision VARCHAR(16) NOT NULL CHECK (decision IN ('accepted', 'declined')),
		decline_reason TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (matchmaker_id, subject_id, candidate_id)
	)`,

	`CREATE TABLE IF NOT EXISTS introductions (
		id UUID PRIMARY KEY,
		matchmaker_id TEXT NOT NULL,
		person_a_id UUID NOT NULL REFERENCES people(id),
		person_b_id UUID NOT NULL REFERENCES people(id),
		status VARCHAR(16) NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'accepted', 'declined', 'completed')),
		notes TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE INDEX IF NOT EXISTS idx_people_matchmaker_id ON people(matchmaker_id)`,
	`CREATE INDEX IF NOT EXISTS idx_people_active ON people(active)`,
	`CREATE INDEX IF NOT EXISTS idx_match_decisions_lookup ON match_decisions(subject_id, matchmaker_id, decision)`,
	`CREATE INDEX IF NOT EXISTS idx_introductions_matchmaker_id ON introductions(matchmaker_id)`,
}

// RunMigrations applies the schema inside a single transaction
func RunMigrations(ctx context.Context, db *sqlx.DB, logger *zap.Logger) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration: %w", err)
	}
	defer tx.Rollback()

	for i, stmt := range migrations {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migrations: %w", err)
	}

	logger.Info("database migrations completed", zap.Int("statements", len(migrations)))
	return nil
}
