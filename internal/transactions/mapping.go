package transactions

import (
	"net/url"

	"github.com/JaimeStill/admin-console/pkg/query"
	"github.com/JaimeStill/admin-console/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "transactions", "t").
	Project("id", "ID").
	Project("payment_time", "PaymentTime").
	Project("payment_amount", "PaymentAmount").
	Project("recipient", "Recipient").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "PaymentTime"}

// listOrder keeps pages stable when payment times collide.
var listOrder = []query.SortField{
	{Field: "PaymentTime"},
	{Field: "ID"},
}

func scanTransaction(s repository.Scanner) (Transaction, error) {
	var t Transaction
	err := s.Scan(
		&t.ID, &t.PaymentTime, &t.PaymentAmount,
		&t.Recipient, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// Filters narrow a transaction listing. Every filter is a substring match.
type Filters struct {
	PaymentTime   *string
	PaymentAmount *string
	Recipient     *string
}

func FiltersFromQuery(values url.Values) Filters {
	return Filters{
		PaymentTime:   optional(values, "payment_time"),
		PaymentAmount: optional(values, "payment_amount"),
		Recipient:     optional(values, "recipient"),
	}
}

func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereTextContains("PaymentTime", f.PaymentTime).
		WhereTextContains("PaymentAmount", f.PaymentAmount).
		WhereContains("Recipient", f.Recipient)
}

func optional(values url.Values, key string) *string {
	if v := values.Get(key); v != "" {
		return &v
	}
	return nil
}
