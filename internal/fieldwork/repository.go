package fieldwork

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
	logger     *slog.Logger
	pagination pagination.Config
}

func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "fieldwork"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Record], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "Remark")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count field work: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	records, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanRecord)
	if err != nil {
		return nil, fmt.Errorf("query field work: %w", err)
	}

	result := pagination.NewPageResult(records, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Record, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildSingle("ID", id)

	record, err := repository.QueryOne(ctx, r.db, q, args, scanRecord)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &record, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Record, error) {
	q := `
		INSERT INTO field_work (id, name, number, expected_expenditure, difference, date, remark)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, number, expected_expenditure, difference, date, remark, created_at, updated_at`

	record, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Record, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			uuid.New(), cmd.Name, cmd.Number, cmd.ExpectedExpenditure,
			cmd.Difference, cmd.Date, cmd.Remark,
		}, scanRecord)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("field work created", "id", record.ID, "name", record.Name, "date", record.Date)
	return &record, nil
}

func (r *repo) Update(ctx context.Context, cmd UpdateCommand) (*Record, error) {
	q := `
		UPDATE field_work
		SET name = $2, number = $3, expected_expenditure = $4,
			difference = $5, date = $6, remark = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, number, expected_expenditure, difference, date, remark, created_at, updated_at`

	record, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Record, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			cmd.ID, cmd.Name, cmd.Number, cmd.ExpectedExpenditure,
			cmd.Difference, cmd.Date, cmd.Remark,
		}, scanRecord)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("field work updated", "id", record.ID)
	return &record, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := `DELETE FROM field_work WHERE id = $1`

	if err := repository.ExecExpectOne(ctx, r.db, q, id); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("field work deleted", "id", id)
	return nil
}
