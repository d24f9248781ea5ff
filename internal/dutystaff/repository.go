package dutystaff

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/admin-console/pkg/pagination"
	"github.com/JaimeStill/admin-console/pkg/query"
	"github.com/JaimeStill/admin-console/pkg/repository"
	"github.com/google/uuid"
)

type repo struct {
	db         *sql.DB
	stats      Stats
	logger     *slog.Logger
	pagination pagination.Config
}

func New(db *sql.DB, stats Stats, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		stats:      stats,
		logger:     logger.With("system", "dutystaff"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Staff], error) {
	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name")

	filters.Apply(qb)
	return r.page(ctx, qb, page)
}

func (r *repo) ListFieldStaff(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Staff], error) {
	qb := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("Type", FieldStaffType).
		WhereSearch(page.Search, "Name")

	filters.Apply(qb)
	return r.page(ctx, qb, page)
}

func (r *repo) page(ctx context.Context, qb *query.Builder, page pagination.PageRequest) (*pagination.PageResult[Staff], error) {
	page.Normalize(r.pagination)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count duty staff: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanStaff)
	if err != nil {
		return nil, fmt.Errorf("query duty staff: %w", err)
	}

	if names := fieldStaffNames(items); len(names) > 0 {
		stats, err := r.stats.FieldStaffStats(ctx, names)
		if err != nil {
			return nil, err
		}
		enrich(items, stats)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Staff, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildSingle("ID", id)

	s, err := repository.QueryOne(ctx, r.db, q, args, scanStaff)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &s, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Staff, error) {
	q := `
		INSERT INTO duty_staff (id, name, type)
		VALUES ($1, $2, $3)
		RETURNING id, name, type, actual_expenditure, created_at, updated_at`

	s, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Staff, error) {
		return repository.QueryOne(ctx, tx, q, []any{uuid.New(), cmd.Name, cmd.Type}, scanStaff)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("staff created", "id", s.ID, "name", s.Name, "type", s.Type)
	return &s, nil
}

func (r *repo) Update(ctx context.Context, cmd UpdateCommand) (*Staff, error) {
	q := `
		UPDATE duty_staff
		SET name = $2, type = $3, actual_expenditure = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, type, actual_expenditure, created_at, updated_at`

	s, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Staff, error) {
		return repository.QueryOne(ctx, tx, q, []any{cmd.ID, cmd.Name, cmd.Type, cmd.ActualExpenditure}, scanStaff)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("staff updated", "id", s.ID, "name", s.Name)
	return &s, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := `DELETE FROM duty_staff WHERE id = $1`

	if err := repository.ExecExpectOne(ctx, r.db, q, id); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("staff deleted", "id", id)
	return nil
}
