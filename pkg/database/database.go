// Package database owns the PostgreSQL connection pool and its lifecycle.
// Connections use the pgx stdlib driver; schema changes are applied from an
// embedded migration source during startup.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync/atomic"

	"github.com/JaimeStill/admin-console/pkg/lifecycle"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrNotReady is returned by Check before startup has connected.
var ErrNotReady = errors.New("database not ready")

// System exposes the shared connection pool.
type System interface {
	Connection() *sql.DB
	Start(lc *lifecycle.Coordinator) error
	Check(ctx context.Context) error
}

// Migrations identifies an embedded migration directory.
type Migrations struct {
	FS  fs.FS
	Dir string
}

type database struct {
	cfg        *Config
	conn       *sql.DB
	logger     *slog.Logger
	migrations *Migrations
	ready      atomic.Bool
}

// New opens the pool without connecting. Call Start to ping and migrate.
func New(cfg *Config, logger *slog.Logger, migrations *Migrations) (System, error) {
	conn, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &database{
		cfg:        cfg,
		conn:       conn,
		logger:     logger.With("system", "database"),
		migrations: migrations,
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.conn
}

func (d *database) Start(lc *lifecycle.Coordinator) error {
	d.logger.Info("starting database system", "host", d.cfg.Host, "name", d.cfg.Name)

	lc.OnStartup(func() {
		ctx, cancel := context.WithTimeout(lc.Context(), d.cfg.ConnTimeoutDuration())
		defer cancel()

		if err := d.conn.PingContext(ctx); err != nil {
			d.logger.Error("database ping failed", "error", err)
			return
		}

		if d.migrations != nil && d.cfg.MigrateOnStart() {
			if err := Migrate(d.cfg, d.migrations); err != nil {
				d.logger.Error("database migration failed", "error", err)
				return
			}
			d.logger.Info("database migrations applied")
		}

		d.ready.Store(true)
		d.logger.Info("database connection established")
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := d.conn.Close(); err != nil {
			d.logger.Error("database close failed", "error", err)
			return
		}
		d.logger.Info("database connection closed")
	})

	return nil
}

func (d *database) Check(ctx context.Context) error {
	if !d.ready.Load() {
		return ErrNotReady
	}
	return d.conn.PingContext(ctx)
}
