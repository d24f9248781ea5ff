package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/JaimeStill/admin-console/pkg/validation"
)

func TestBusinessSeeder_EmbeddedDataValid(t *testing.T) {
	data, err := (&BusinessSeeder{}).loadSeedData()
	if err != nil {
		t.Fatalf("loadSeedData() error: %v", err)
	}

	if len(data.DutyStaff) == 0 || len(data.Totals) == 0 {
		t.Fatal("embedded seed data is empty")
	}

	for _, cmd := range data.Transactions {
		if err := validation.Struct(cmd); err != nil {
			t.Errorf("transaction %s: %v", cmd.Recipient, err)
		}
	}
	for _, cmd := range data.Totals {
		if err := validation.Struct(cmd); err != nil {
			t.Errorf("ledger record %s: %v", cmd.Plate, err)
		}
	}
	for _, cmd := range data.FieldWork {
		if err := validation.Struct(cmd); err != nil {
			t.Errorf("field work %s: %v", cmd.Name, err)
		}
	}
}

func TestBusinessSeeder_ExternalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	content := `{"duty_staff": [{"name": "赵六", "type": "外勤人员"}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s := &BusinessSeeder{}
	s.SetFile(path)

	data, err := s.loadSeedData()
	if err != nil {
		t.Fatalf("loadSeedData() error: %v", err)
	}
	if len(data.DutyStaff) != 1 || data.DutyStaff[0].Name != "赵六" {
		t.Errorf("DutyStaff = %+v", data.DutyStaff)
	}
}

func TestBusinessSeeder_MissingFile(t *testing.T) {
	s := &BusinessSeeder{}
	s.SetFile(filepath.Join(t.TempDir(), "missing.json"))

	if _, err := s.loadSeedData(); err == nil {
		t.Error("expected error for missing seed file")
	}
}

func TestSeedID_Deterministic(t *testing.T) {
	if seedID("totals", 0) != seedID("totals", 0) {
		t.Error("seedID not deterministic")
	}
	if seedID("totals", 0) == seedID("field_work", 0) {
		t.Error("seedID collides across tables")
	}
}

func TestRegistry_HasBusiness(t *testing.T) {
	if _, ok := getSeeder("business"); !ok {
		t.Error("business seeder not registered")
	}
}

func TestResolveDSN_Precedence(t *testing.T) {
	t.Setenv(EnvDatabaseDSN, "host=env")

	got, err := resolveDSN("host=flag")
	if err != nil || got != "host=flag" {
		t.Errorf("resolveDSN(flag) = %q, %v", got, err)
	}

	got, err = resolveDSN("")
	if err != nil || got != "host=env" {
		t.Errorf("resolveDSN(env) = %q, %v", got, err)
	}
}

func TestResolveDSN_ConfigFallback(t *testing.T) {
	t.Setenv(EnvDatabaseDSN, "")
	t.Chdir(t.TempDir())

	if _, err := resolveDSN(""); err == nil {
		t.Error("expected error without flag, env or config.toml")
	}
}
