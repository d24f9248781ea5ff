package totals

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
		logger:     logger.With("system", "totals"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Total], error) {
	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Plate", "Business", "Company")

	filters.Apply(qb)
	return r.page(ctx, qb, page)
}

func (r *repo) ListOwn(ctx context.Context, page pagination.PageRequest, owner string, filters Filters) (*pagination.PageResult[Total], error) {
	if owner == "" {
		return nil, ErrOwnerRequired
	}

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("InternalStaff", owner).
		WhereSearch(page.Search, "Plate", "Business", "Company")

	filters.Apply(qb)
	return r.page(ctx, qb, page)
}

func (r *repo) page(ctx context.Context, qb *query.Builder, page pagination.PageRequest) (*pagination.PageResult[Total], error) {
	page.Normalize(r.pagination)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count totals: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanTotal)
	if err != nil {
		return nil, fmt.Errorf("query totals: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) ListFieldService(ctx context.Context, page pagination.PageRequest, filters FieldServiceFilters) (*pagination.PageResult[FieldService], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(fieldServiceProjection, query.SortField{Field: "FieldStaff"}).
		WhereSearch(page.Search, "FieldStaff", "Plate")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count field service: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanFieldService)
	if err != nil {
		return nil, fmt.Errorf("query field service: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Summarize(ctx context.Context, page pagination.PageRequest, business *string) (*pagination.PageResult[BusinessSummary], error) {
	page.Normalize(r.pagination)

	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereContains("Business", business).
		BuildSum("Business", "ExpectedExpenditure", "Income")

	all, err := repository.QueryMany(ctx, r.db, q, args, scanSummary)
	if err != nil {
		return nil, fmt.Errorf("summarize totals: %w", err)
	}

	start := min(page.Offset(), len(all))
	end := min(start+page.PageSize, len(all))

	result := pagination.NewPageResult(all[start:end], len(all), page.Page, page.PageSize)
	return &result, nil
}

type namedStats struct {
	name  string
	stats StaffStats
}

func (r *repo) FieldStaffStats(ctx context.Context, names []string) (map[string]StaffStats, error) {
	out := make(map[string]StaffStats, len(names))
	if len(names) == 0 {
		return out, nil
	}

	q := `
		SELECT field_staff, COUNT(*), COALESCE(SUM(expected_expenditure), 0)
		FROM totals
		WHERE field_staff = ANY($1)
		GROUP BY field_staff`

	rows, err := repository.QueryMany(ctx, r.db, q, []any{names}, func(s repository.Scanner) (namedStats, error) {
		var n namedStats
		err := s.Scan(&n.name, &n.stats.Count, &n.stats.ExpectedExpenditureSum)
		return n, err
	})
	if err != nil {
		return nil, fmt.Errorf("field staff stats: %w", err)
	}

	for _, n := range rows {
		out[n.name] = n.stats
	}
	return out, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Total, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildSingle("ID", id)

	t, err := repository.QueryOne(ctx, r.db, q, args, scanTotal)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &t, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Total, error) {
	q := `
		INSERT INTO totals (id, date, plate, region, company, field_staff, internal_staff,
			platform, account, password, business, expected_expenditure, income,
			destination, remark, docking_time, handover_time, is_completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + columns

	t, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Total, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			uuid.New(), cmd.Date, cmd.Plate, cmd.Region, cmd.Company,
			cmd.FieldStaff, cmd.InternalStaff, cmd.Platform, cmd.Account,
			cmd.Password, cmd.Business, cmd.ExpectedExpenditure, cmd.Income,
			cmd.Destination, cmd.Remark, cmd.DockingTime, cmd.HandoverTime,
			cmd.IsCompleted,
		}, scanTotal)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("record created", "id", t.ID, "plate", t.Plate, "business", t.Business)
	return &t, nil
}

func (r *repo) Update(ctx context.Context, cmd UpdateCommand) (*Total, error) {
	q := `
		UPDATE totals
		SET date = COALESCE($2, date),
			plate = COALESCE($3, plate),
			region = COALESCE($4, region),
			company = COALESCE($5, company),
			field_staff = COALESCE($6, field_staff),
			internal_staff = COALESCE($7, internal_staff),
			platform = COALESCE($8, platform),
			account = COALESCE($9, account),
			password = COALESCE($10, password),
			business = COALESCE($11, business),
			expected_expenditure = COALESCE($12, expected_expenditure),
			income = COALESCE($13, income),
			destination = COALESCE($14, destination),
			remark = COALESCE($15, remark),
			docking_time = COALESCE($16, docking_time),
			handover_time = COALESCE($17, handover_time),
			is_completed = COALESCE($18, is_completed),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + columns

	t, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Total, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			cmd.ID, cmd.Date, cmd.Plate, cmd.Region, cmd.Company,
			cmd.FieldStaff, cmd.InternalStaff, cmd.Platform, cmd.Account,
			cmd.Password, cmd.Business, cmd.ExpectedExpenditure, cmd.Income,
			cmd.Destination, cmd.Remark, cmd.DockingTime, cmd.HandoverTime,
			cmd.IsCompleted,
		}, scanTotal)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("record updated", "id", t.ID)
	return &t, nil
}

func (r *repo) UpdateFieldService(ctx context.Context, cmd UpdateFieldServiceCommand) (*FieldService, error) {
	q := `
		UPDATE totals
		SET field_staff = COALESCE($2, field_staff),
			plate = COALESCE($3, plate),
			business = COALESCE($4, business),
			expected_expenditure = COALESCE($5, expected_expenditure),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, field_staff, plate, business, expected_expenditure`

	f, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (FieldService, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			cmd.ID, cmd.FieldStaff, cmd.Plate, cmd.Business, cmd.ExpectedExpenditure,
		}, scanFieldService)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("field service updated", "id", f.ID, "field_staff", f.FieldStaff)
	return &f, nil
}

func (r *repo) UpdateOwn(ctx context.Context, cmd UpdateOwnCommand) (*Total, error) {
	if cmd.InternalStaff == "" {
		return nil, ErrOwnerRequired
	}

	q := `
		UPDATE totals
		SET income = COALESCE($3, income),
			destination = COALESCE($4, destination),
			remark = COALESCE($5, remark),
			docking_time = COALESCE($6, docking_time),
			handover_time = COALESCE($7, handover_time),
			is_completed = COALESCE($8, is_completed),
			updated_at = NOW()
		WHERE id = $1 AND internal_staff = $2
		RETURNING ` + columns

	t, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Total, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			cmd.ID, cmd.InternalStaff, cmd.Income, cmd.Destination,
			cmd.Remark, cmd.DockingTime, cmd.HandoverTime, cmd.IsCompleted,
		}, scanTotal)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("own record updated", "id", t.ID, "internal_staff", t.InternalStaff)
	return &t, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := `DELETE FROM totals WHERE id = $1`

	if err := repository.ExecExpectOne(ctx, r.db, q, id); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("record deleted", "id", id)
	return nil
}
