package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/regkit/errors"
)

type registryConfig struct {
	Name        string `yaml:"name" validate:"required"`
	Environment string `yaml:"environment" validate:"oneof=development staging production"`
	Capacity    int    `yaml:"capacity" validate:"min=0,max=1024"`
}

func TestStructValid(t *testing.T) {
	cfg := registryConfig{Name: "regkit", Environment: "development", Capacity: 16}
	if err := Struct(cfg); err != nil {
		t.Errorf("expected valid struct, got %v", err)
	}
}

func TestStructRequired(t *testing.T) {
	cfg := registryConfig{Environment: "development"}
	err := Struct(cfg)
	if !errors.IsCode(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("expected INVALID_INPUT, got %v", err)
	}
	if !strings.Contains(err.Error(), "name: is required") {
		t.Errorf("expected yaml-tag field name in message, got %q", err.Error())
	}
}

func TestStructOneOf(t *testing.T) {
	cfg := registryConfig{Name: "regkit", Environment: "qa"}
	err := Struct(cfg)
	if err == nil {
		t.Fatal("expected an error for a disallowed environment")
	}
	if !strings.Contains(err.Error(), "must be one of: development staging production") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestStructMinMax(t *testing.T) {
	cfg := registryConfig{Name: "regkit", Environment: "staging", Capacity: 4096}
	err := Struct(cfg)
	if err == nil {
		t.Fatal("expected an error for capacity above the maximum")
	}
	if !strings.Contains(err.Error(), "must be at most 1024") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestStructFieldDetails(t *testing.T) {
	err := Struct(registryConfig{})
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatal("expected an AppError")
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok {
		t.Fatalf("expected field error details, got %T", appErr.Details["fields"])
	}
	if len(fields) == 0 {
		t.Error("expected at least one field error")
	}
}

func TestValidatorFluent(t *testing.T) {
	v := New()
	v.Required("key", "cache").
		OneOf("lifetime", "singleton", "singleton", "scoped", "transient")

	if v.HasErrors() {
		t.Errorf("expected no errors, got %v", v.Errors())
	}
	if err := v.Validate(); err != nil {
		t.Errorf("expected nil from Validate, got %v", err)
	}
}

func TestValidatorCollectsErrors(t *testing.T) {
	v := New()
	v.Required("key", "   ").
		OneOf("environment", "qa", "development", "staging", "production")

	if !v.HasErrors() {
		t.Fatal("expected errors")
	}
	if len(v.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(v.Errors()))
	}

	err := v.Validate()
	if err == nil {
		t.Fatal("expected an AppError")
	}
	if err.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}
	if !strings.Contains(err.Message, "key: is required") {
		t.Errorf("unexpected message: %q", err.Message)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Name", "name"},
		{"CapacityHint", "capacity_hint"},
		{"WarnOnReplace", "warn_on_replace"},
		{"already_snake", "already_snake"},
	}
	for _, tc := range tests {
		if got := toSnakeCase(tc.in); got != tc.want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
