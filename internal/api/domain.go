package api

import (
	"github.com/JaimeStill/admin-console/internal/dutystaff"
	"github.com/JaimeStill/admin-console/internal/fieldwork"
	"github.com/JaimeStill/admin-console/internal/totals"
	"github.com/JaimeStill/admin-console/internal/transactions"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Transactions transactions.System
	Totals       totals.System
	FieldWork    fieldwork.System
	DutyStaff    dutystaff.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()

	transactionsSys := transactions.New(db, runtime.Logger, runtime.Pagination)
	totalsSys := totals.New(db, runtime.Logger, runtime.Pagination)
	fieldWorkSys := fieldwork.New(db, runtime.Logger, runtime.Pagination)

	// duty staff rows are enriched with field staff ledger statistics
	dutyStaffSys := dutystaff.New(db, totalsSys, runtime.Logger, runtime.Pagination)

	return &Domain{
		Transactions: transactionsSys,
		Totals:       totalsSys,
		FieldWork:    fieldWorkSys,
		DutyStaff:    dutyStaffSys,
	}
}
