package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/JaimeStill/admin-console/pkg/database"
	"github.com/JaimeStill/admin-console/pkg/logging"
)

func TestNew_DoesNotConnect(t *testing.T) {
	cfg := database.Config{Name: "n", User: "u", Host: "127.0.0.1", Port: 1}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatal(err)
	}

	sys, err := database.New(&cfg, logging.Discard(), nil)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer sys.Connection().Close()

	if got := sys.Connection().Stats().MaxOpenConnections; got != cfg.MaxOpenConns {
		t.Errorf("MaxOpenConnections = %d, want %d", got, cfg.MaxOpenConns)
	}
	if err := sys.Check(context.Background()); !errors.Is(err, database.ErrNotReady) {
		t.Errorf("Check() before Start = %v, want ErrNotReady", err)
	}
}
