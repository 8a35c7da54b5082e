// internal/introductions/repository.go

package introductions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/imadgeboyega/kiekky-matchmaker/internal/common/apperror"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repository persists introductions
type Repository interface {
	Create(ctx context.Context, intro *Introduction) error
	Get(ctx context.Context, id string) (*Introduction, error)
	ListByMatchmaker(ctx context.Context, matchmakerID, status string) ([]*Introduction, error)
	UpdateStatus(ctx context.Context, id, status string, notes *string) error
}

type postgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository returns a Repository backed by PostgreSQL
func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, intro *Introduction) error {
	query, args, err := psql.Insert("introductions").
		Columns("id", "matchmaker_id", "person_a_id", "person_b_id", "status", "notes").
		Values(intro.ID, intro.MatchmakerID, intro.PersonAID, intro.PersonBID, intro.Status, intro.Notes).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create introduction: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&intro.CreatedAt, &intro.UpdatedAt); err != nil {
		return apperror.Storage("create introduction", err)
	}
	return nil
}

func (r *postgresRepository) Get(ctx context.Context, id string) (*Introduction, error) {
	query, args, err := psql.Select(introductionColumns...).
		From("introductions").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get introduction: %w", err)
	}

	var intro Introduction
	if err := r.db.GetContext(ctx, &intro, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("introduction %s: %w", id, apperror.ErrNotFound)
		}
		return nil, apperror.Storage("get introduction", err)
	}
	return &intro, nil
}

// ListByMatchmaker returns the introductions matchmakerID proposed, newest
// first. An empty status lists every status.
func (r *postgresRepository) ListByMatchmaker(ctx context.Context, matchmakerID, status string) ([]*Introduction, error) {
	builder := psql.Select(introductionColumns...).
		From("introductions").
		Where(sq.Eq{"matchmaker_id": matchmakerID}).
		OrderBy("created_at DESC")
	if status != "" {
		builder = builder.Where(sq.Eq{"status": status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list introductions: %w", err)
	}

	intros := []*Introduction{}
	if err := r.db.SelectContext(ctx, &intros, query, args...); err != nil {
		return nil, apperror.Storage("list introductions", err)
	}
	return intros, nil
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, id, status string, notes *string) error {
	builder := psql.Update("introductions").
		Set("status", status).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id})
	if notes != nil {
		builder = builder.Set("notes", *notes)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build update introduction: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return apperror.Storage("update introduction", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("introduction %s: %w", id, apperror.ErrNotFound)
	}
	return nil
}
