package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JaimeStill/admin-console/internal/config"
	"github.com/JaimeStill/admin-console/pkg/logging"
)

const EnvDatabaseDSN = "DATABASE_DSN"

func main() {
	var (
		dsn      = flag.String("dsn", "", "Database connection string (defaults to "+EnvDatabaseDSN+" or config.toml)")
		all      = flag.Bool("all", false, "Run all seeders")
		business = flag.Bool("business", false, "Seed business tables")
		file     = flag.String("file", "", "External seed file (overrides embedded)")
		list     = flag.Bool("list", false, "List available seeders")
	)
	flag.Parse()

	if *list {
		for _, s := range seeders {
			fmt.Printf("%-10s %s\n", s.Name(), s.Description())
		}
		return
	}

	var batch []Seeder
	switch {
	case *all:
		batch = seeders
	case *business:
		s, _ := getSeeder("business")
		batch = []Seeder{s}
	default:
		fmt.Fprintln(os.Stderr, "usage: seed [-dsn <connection-string>] -all|-business [-file <path>] | -list")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *file != "" {
		if s, ok := getSeeder("business"); ok {
			s.(*BusinessSeeder).SetFile(*file)
		}
	}

	logger := logging.New(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatText})

	conn, err := resolveDSN(*dsn)
	if err != nil {
		logger.Error("resolve database", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := seed(ctx, conn, logger, batch); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	logger.Info("seeding complete", "seeders", len(batch))
}

func seed(ctx context.Context, dsn string, logger *slog.Logger, batch []Seeder) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	return run(ctx, db, logger.With("system", "seed"), batch...)
}

// resolveDSN prefers the flag, then the environment, then the service config.
func resolveDSN(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if v := os.Getenv(EnvDatabaseDSN); v != "" {
		return v, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("no -dsn or %s and config unavailable: %w", EnvDatabaseDSN, err)
	}
	return cfg.Database.Dsn(), nil
}
