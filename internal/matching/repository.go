// internal/matching/repository.go

package matching

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/imadgeboyega/kiekky-matchmaker/internal/common/apperror"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repository persists match decisions
type Repository interface {
	UpsertDecision(ctx context.Context, d *MatchDecision) error
	DeclinedCandidateIDs(ctx context.Context, subjectID, matchmakerID string) ([]string, error)
	ListDecisions(ctx context.Context, subjectID, matchmakerID string) ([]*MatchDecision, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository returns a Repository backed by PostgreSQL
func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

// UpsertDecision writes the verdict unconditionally on its key; the last
// write wins.
func (r *postgresRepository) UpsertDecision(ctx context.Context, d *MatchDecision) error {
	query := `
		INSERT INTO match_decisions (id, matchmaker_id, subject_id, candidate_id, decision, decline_reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (matchmaker_id, subject_id, candidate_id)
		DO UPDATE SET
			decision = EXCLUDED.decision,
			decline_reason = EXCLUDED.decline_reason,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowxContext(
		ctx, query,
		d.ID, d.MatchmakerID, d.SubjectID, d.CandidateID, d.Decision, d.DeclineReason,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return apperror.Storage("upsert decision", err)
	}
	return nil
}

func (r *postgresRepository) DeclinedCandidateIDs(ctx context.Context, subjectID, matchmakerID string) ([]string, error) {
	query, args, err := psql.Select("candidate_id").
		From("match_decisions").
		Where(sq.Eq{
			"subject_id":    subjectID,
			"matchmaker_id": matchmakerID,
			"decision":      DecisionDeclined,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build declined candidates: %w", err)
	}

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, apperror.Storage("list declined candidates", err)
	}
	return ids, nil
}

func (r *postgresRepository) ListDecisions(ctx context.Context, subjectID, matchmakerID string) ([]*MatchDecision, error) {
	query, args, err := psql.Select(
		"id", "matchmaker_id", "subject_id", "candidate_id",
		"decision", "decline_reason", "created_at", "updated_at",
	).
		From("match_decisions").
		Where(sq.Eq{"subject_id": subjectID, "matchmaker_id": matchmakerID}).
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list decisions: %w", err)
	}

	decisions := []*MatchDecision{}
	if err := r.db.SelectContext(ctx, &decisions, query, args...); err != nil {
		return nil, apperror.Storage("list decisions", err)
	}
	return decisions, nil
}
