// Package main populates the business tables with sample records.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"
)

// Seeder writes one group of records inside a caller-owned transaction.
type Seeder interface {
	Name() string
	Description() string
	Seed(ctx context.Context, tx *sql.Tx) error
}

// seeders run in registration order.
var seeders []Seeder

func registerSeeder(s Seeder) {
	seeders = append(seeders, s)
}

func getSeeder(name string) (Seeder, bool) {
	i := slices.IndexFunc(seeders, func(s Seeder) bool { return s.Name() == name })
	if i < 0 {
		return nil, false
	}
	return seeders[i], true
}

// run applies the selected seeders in a single transaction. Any failure rolls
// back every seeder in the batch.
func run(ctx context.Context, db *sql.DB, logger *slog.Logger, batch ...Seeder) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, s := range batch {
		logger.Info("seeding", "seeder", s.Name())
		if err := s.Seed(ctx, tx); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
