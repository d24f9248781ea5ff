package main

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/JaimeStill/admin-console/internal/dutystaff"
	"github.com/JaimeStill/admin-console/internal/fieldwork"
	"github.com/JaimeStill/admin-console/internal/totals"
	"github.com/JaimeStill/admin-console/internal/transactions"
	"github.com/JaimeStill/admin-console/pkg/validation"
)

//go:embed seeds/*.json
var seedFiles embed.FS

// seedNamespace derives stable record ids so reseeding updates rows in place.
var seedNamespace = uuid.MustParse("6f1c2b7e-9a54-4f0e-8d3b-2c61a0e5d9b4")

func init() {
	registerSeeder(&BusinessSeeder{})
}

// BusinessSeedData represents the JSON structure for business seed files.
type BusinessSeedData struct {
	DutyStaff    []dutystaff.UpdateCommand    `json:"duty_staff"`
	Transactions []transactions.CreateCommand `json:"transactions"`
	Totals       []totals.CreateCommand       `json:"totals"`
	FieldWork    []fieldwork.CreateCommand    `json:"field_work"`
}

// BusinessSeeder populates the business tables with sample records.
type BusinessSeeder struct {
	file string
}

func (s *BusinessSeeder) Name() string {
	return "business"
}

func (s *BusinessSeeder) Description() string {
	return "Seeds duty staff, transactions, ledger and field work sample records"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *BusinessSeeder) SetFile(path string) {
	s.file = path
}

// Seed validates every record and upserts it by a deterministic id.
func (s *BusinessSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	data, err := s.loadSeedData()
	if err != nil {
		return err
	}

	for i, cmd := range data.DutyStaff {
		if err := s.saveDutyStaff(ctx, tx, cmd); err != nil {
			return fmt.Errorf("save duty staff %d (%s): %w", i, cmd.Name, err)
		}
	}
	for i, cmd := range data.Transactions {
		if err := s.saveTransaction(ctx, tx, i, cmd); err != nil {
			return fmt.Errorf("save transaction %d: %w", i, err)
		}
	}
	for i, cmd := range data.Totals {
		if err := s.saveTotal(ctx, tx, i, cmd); err != nil {
			return fmt.Errorf("save ledger record %d (%s): %w", i, cmd.Plate, err)
		}
	}
	for i, cmd := range data.FieldWork {
		if err := s.saveFieldWork(ctx, tx, i, cmd); err != nil {
			return fmt.Errorf("save field work %d (%s): %w", i, cmd.Name, err)
		}
	}

	return nil
}

func (s *BusinessSeeder) loadSeedData() (*BusinessSeedData, error) {
	var content []byte
	var err error

	if s.file != "" {
		content, err = os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	} else {
		content, err = seedFiles.ReadFile("seeds/business.json")
		if err != nil {
			return nil, fmt.Errorf("read embedded seed file: %w", err)
		}
	}

	var data BusinessSeedData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}

	return &data, nil
}

func seedID(table string, key any) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, fmt.Appendf(nil, "%s/%v", table, key))
}

func (s *BusinessSeeder) saveDutyStaff(ctx context.Context, tx *sql.Tx, cmd dutystaff.UpdateCommand) error {
	cmd.ID = seedID("duty_staff", cmd.Name)
	if err := validation.Struct(cmd); err != nil {
		return err
	}

	const query = `
		INSERT INTO duty_staff (id, name, type, actual_expenditure, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (name) DO UPDATE SET
			type = EXCLUDED.type,
			actual_expenditure = EXCLUDED.actual_expenditure,
			updated_at = NOW()`

	_, err := tx.ExecContext(ctx, query, cmd.ID, cmd.Name, cmd.Type, cmd.ActualExpenditure)
	return err
}

func (s *BusinessSeeder) saveTransaction(ctx context.Context, tx *sql.Tx, i int, cmd transactions.CreateCommand) error {
	if err := validation.Struct(cmd); err != nil {
		return err
	}

	const query = `
		INSERT INTO transactions (id, payment_time, payment_amount, recipient, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			payment_time = EXCLUDED.payment_time,
			payment_amount = EXCLUDED.payment_amount,
			recipient = EXCLUDED.recipient,
			updated_at = NOW()`

	_, err := tx.ExecContext(ctx, query, seedID("transactions", i), cmd.PaymentTime, cmd.PaymentAmount, cmd.Recipient)
	return err
}

func (s *BusinessSeeder) saveTotal(ctx context.Context, tx *sql.Tx, i int, cmd totals.CreateCommand) error {
	if err := validation.Struct(cmd); err != nil {
		return err
	}

	const query = `
		INSERT INTO totals (
			id, date, plate, region, company, field_staff, internal_staff,
			platform, account, password, business, expected_expenditure, income,
			destination, remark, docking_time, handover_time, is_completed,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			date = EXCLUDED.date,
			plate = EXCLUDED.plate,
			region = EXCLUDED.region,
			company = EXCLUDED.company,
			field_staff = EXCLUDED.field_staff,
			internal_staff = EXCLUDED.internal_staff,
			platform = EXCLUDED.platform,
			account = EXCLUDED.account,
			password = EXCLUDED.password,
			business = EXCLUDED.business,
			expected_expenditure = EXCLUDED.expected_expenditure,
			income = EXCLUDED.income,
			destination = EXCLUDED.destination,
			remark = EXCLUDED.remark,
			docking_time = EXCLUDED.docking_time,
			handover_time = EXCLUDED.handover_time,
			is_completed = EXCLUDED.is_completed,
			updated_at = NOW()`

	_, err := tx.ExecContext(ctx, query,
		seedID("totals", i), cmd.Date, cmd.Plate, cmd.Region, cmd.Company,
		cmd.FieldStaff, cmd.InternalStaff, cmd.Platform, cmd.Account, cmd.Password,
		cmd.Business, cmd.ExpectedExpenditure, cmd.Income, cmd.Destination,
		cmd.Remark, cmd.DockingTime, cmd.HandoverTime, cmd.IsCompleted,
	)
	return err
}

func (s *BusinessSeeder) saveFieldWork(ctx context.Context, tx *sql.Tx, i int, cmd fieldwork.CreateCommand) error {
	if err := validation.Struct(cmd); err != nil {
		return err
	}

	const query = `
		INSERT INTO field_work (id, name, number, expected_expenditure, difference, date, remark, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			number = EXCLUDED.number,
			expected_expenditure = EXCLUDED.expected_expenditure,
			difference = EXCLUDED.difference,
			date = EXCLUDED.date,
			remark = EXCLUDED.remark,
			updated_at = NOW()`

	_, err := tx.ExecContext(ctx, query,
		seedID("field_work", i), cmd.Name, cmd.Number, cmd.ExpectedExpenditure,
		cmd.Difference, cmd.Date, cmd.Remark,
	)
	return err
}
