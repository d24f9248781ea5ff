package transactions

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
		logger:     logger.With("system", "transactions"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Transaction], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Recipient").
		OrderByFields(listOrder)

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count transactions: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanTransaction)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildSingle("ID", id)

	t, err := repository.QueryOne(ctx, r.db, q, args, scanTransaction)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &t, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Transaction, error) {
	q := `
		INSERT INTO transactions (id, payment_time, payment_amount, recipient)
		VALUES ($1, $2, $3, $4)
		RETURNING id, payment_time, payment_amount, recipient, created_at, updated_at`

	t, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Transaction, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			uuid.New(), cmd.PaymentTime, cmd.PaymentAmount, cmd.Recipient,
		}, scanTransaction)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("transaction created", "id", t.ID, "recipient", t.Recipient)
	return &t, nil
}

func (r *repo) Update(ctx context.Context, cmd UpdateCommand) (*Transaction, error) {
	q := `
		UPDATE transactions
		SET payment_time = COALESCE($2, payment_time),
			payment_amount = COALESCE($3, payment_amount),
			recipient = COALESCE($4, recipient),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, payment_time, payment_amount, recipient, created_at, updated_at`

	t, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Transaction, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			cmd.ID, cmd.PaymentTime, cmd.PaymentAmount, cmd.Recipient,
		}, scanTransaction)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("transaction updated", "id", t.ID)
	return &t, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := `DELETE FROM transactions WHERE id = $1`

	if err := repository.ExecExpectOne(ctx, r.db, q, id); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("transaction deleted", "id", id)
	return nil
}
