package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/JaimeStill/admin-console/pkg/validation"
)

type command struct {
	Name   string  `json:"name" validate:"required"`
	Amount int     `json:"amount" validate:"gte=0"`
	Kind   string  `json:"kind" validate:"omitempty,oneof=a b"`
	Note   *string `json:"note,omitempty" validate:"omitempty,min=1"`
}

func TestStruct(t *testing.T) {
	empty := ""

	tests := []struct {
		name    string
		input   command
		wantErr string
	}{
		{"valid", command{Name: "x", Amount: 1}, ""},
		{"missing name", command{Amount: 1}, "name is required"},
		{"negative amount", command{Name: "x", Amount: -1}, "amount must be at least 0"},
		{"bad kind", command{Name: "x", Kind: "c"}, "kind must be one of [a b]"},
		{"empty note", command{Name: "x", Note: &empty}, "note must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Struct(tt.input)

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Struct() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, validation.ErrInvalid) {
				t.Fatalf("Struct() error = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Struct() error = %q, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestStruct_JoinsMessages(t *testing.T) {
	err := validation.Struct(command{Amount: -1})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "name is required; amount must be at least 0") {
		t.Errorf("Struct() error = %q", err)
	}
}

func TestVar(t *testing.T) {
	if err := validation.Var("", "required"); !errors.Is(err, validation.ErrInvalid) {
		t.Errorf("Var() error = %v, want ErrInvalid", err)
	}
	if err := validation.Var("x", "required"); err != nil {
		t.Errorf("Var() error = %v, want nil", err)
	}
}
