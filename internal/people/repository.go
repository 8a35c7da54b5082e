// internal/people/repository.go

package people

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

// Repository is the persistence collaborator for Person records
type Repository interface {
	Create(ctx context.Context, p *Person) error
	Get(ctx context.Context, id string) (*Person, error)
	ListByMatchmaker(ctx context.Context, matchmakerID string, includeInactive bool) ([]*Person, error)
	ListActiveExcluding(ctx context.Context, excludeID string) ([]*Person, error)
	Update(ctx context.Context, id string, req *UpdatePersonRequest) error
	Deactivate(ctx context.Context, id string) error
}

type postgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository returns a Repository backed by PostgreSQL
func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, p *Person) error {
	query, args, err := psql.Insert("people").
		Columns("id", "matchmaker_id", "active", "name", "age", "location", "gender", "preferences", "personality", "notes").
		Values(p.ID, p.MatchmakerID, p.Active, p.Name, p.Age, p.Location, p.Gender,
			jsonArg(p.Preferences), jsonArg(p.Personality), p.Notes).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create person: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return apperror.Storage("create person", err)
	}
	return nil
}

func (r *postgresRepository) Get(ctx context.Context, id string) (*Person, error) {
	query, args, err := psql.Select(personColumns...).
		From("people").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get person: %w", err)
	}

	var row personRow
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("person %s: %w", id, apperror.ErrNotFound)
		}
		return nil, apperror.Storage("get person", err)
	}
	return row.toPerson(), nil
}

func (r *postgresRepository) ListByMatchmaker(ctx context.Context, matchmakerID string, includeInactive bool) ([]*Person, error) {
	builder := psql.Select(personColumns...).
		From("people").
		Where(sq.Eq{"matchmaker_id": matchmakerID}).
		OrderBy("created_at DESC")
	if !includeInactive {
		builder = builder.Where(sq.Eq{"active": true})
	}
	return r.selectPeople(ctx, "list people", builder)
}

func (r *postgresRepository) ListActiveExcluding(ctx context.Context, excludeID string) ([]*Person, error) {
	builder := psql.Select(personColumns...).
		From("people").
		Where(sq.Eq{"active": true}).
		Where(sq.NotEq{"id": excludeID}).
		OrderBy("id")
	return r.selectPeople(ctx, "list active people", builder)
}

func (r *postgresRepository) selectPeople(ctx context.Context, op string, builder sq.SelectBuilder) ([]*Person, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}

	var rows []personRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, apperror.Storage(op, err)
	}

	out := make([]*Person, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toPerson())
	}
	return out, nil
}

func (r *postgresRepository) Update(ctx context.Context, id string, req *UpdatePersonRequest) error {
	builder := psql.Update("people").
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))
	if req.Name != nil {
		builder = builder.Set("name", *req.Name)
	}
	if req.Age != nil {
		builder = builder.Set("age", *req.Age)
	}
	if req.Location != nil {
		builder = builder.Set("location", *req.Location)
	}
	if req.Gender != nil {
		builder = builder.Set("gender", *req.Gender)
	}
	if req.Preferences != nil {
		builder = builder.Set("preferences", jsonArg(req.Preferences))
	}
	if req.Personality != nil {
		builder = builder.Set("personality", jsonArg(req.Personality))
	}
	if req.Notes != nil {
		builder = builder.Set("notes", *req.Notes)
	}
	return r.execOne(ctx, "update person", id, builder)
}

func (r *postgresRepository) Deactivate(ctx context.Context, id string) error {
	builder := psql.Update("people").
		Where(sq.Eq{"id": id}).
		Set("active", false).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))
	return r.execOne(ctx, "deactivate person", id, builder)
}

func (r *postgresRepository) execOne(ctx context.Context, op, id string, builder sq.UpdateBuilder) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build %s: %w", op, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return apperror.Storage(op, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("person %s: %w", id, apperror.ErrNotFound)
	}
	return nil
}
