package pagination_test

import (
	"testing"

	"github.com/JaimeStill/admin-console/pkg/pagination"
)

var testEnv = &pagination.ConfigEnv{
	DefaultPageSize: "TEST_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "TEST_PAGINATION_MAX_PAGE_SIZE",
}

func TestConfig_Finalize_Defaults(t *testing.T) {
	var c pagination.Config
	if err := c.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}

	if c.DefaultPageSize != 10 || c.MaxPageSize != 100 {
		t.Errorf("defaults = (%d, %d), want (10, 100)", c.DefaultPageSize, c.MaxPageSize)
	}
}

func TestConfig_Finalize_Env(t *testing.T) {
	t.Setenv(testEnv.DefaultPageSize, "25")
	t.Setenv(testEnv.MaxPageSize, "200")

	var c pagination.Config
	if err := c.Finalize(testEnv); err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}

	if c.DefaultPageSize != 25 || c.MaxPageSize != 200 {
		t.Errorf("env = (%d, %d), want (25, 200)", c.DefaultPageSize, c.MaxPageSize)
	}
}

func TestConfig_Finalize_DefaultExceedsMax(t *testing.T) {
	c := pagination.Config{DefaultPageSize: 50, MaxPageSize: 20}
	if err := c.Finalize(nil); err == nil {
		t.Error("expected error when default exceeds max")
	}
}

func TestConfig_Merge(t *testing.T) {
	c := pagination.Config{DefaultPageSize: 10, MaxPageSize: 100}
	c.Merge(&pagination.Config{MaxPageSize: 30})

	if c.DefaultPageSize != 10 || c.MaxPageSize != 30 {
		t.Errorf("Merge() = (%d, %d), want (10, 30)", c.DefaultPageSize, c.MaxPageSize)
	}
}
