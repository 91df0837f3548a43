package util

import (
	"reflect"
	"testing"
)

type sample struct{}

type reader interface {
	Read() string
}

func TestValidateNonEmpty(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"plain value", "hello", false},
		{"value with spaces", "  hello  ", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"tabs and newlines", "\t\n", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateNonEmpty("field", tc.value)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateNonEmpty(%q) error = %v, wantErr %v", tc.value, err, tc.wantErr)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", true},
		{" ", true},
		{"\t", true},
		{" \n ", true},
		{"x", false},
		{" x ", false},
	}
	for _, tc := range tests {
		if got := IsBlank(tc.value); got != tc.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want string
	}{
		{"nil", nil, "<nil>"},
		{"struct", reflect.TypeOf((*sample)(nil)).Elem(), "github.com/kbukum/regkit/util.sample"},
		{"pointer", reflect.TypeOf((**sample)(nil)).Elem(), "*github.com/kbukum/regkit/util.sample"},
		{"interface", reflect.TypeOf((*reader)(nil)).Elem(), "github.com/kbukum/regkit/util.reader"},
		{"builtin", reflect.TypeOf((*string)(nil)).Elem(), "string"},
		{"slice", reflect.TypeOf((*[]int)(nil)).Elem(), "[]int"},
		{"map", reflect.TypeOf((*map[string]int)(nil)).Elem(), "map[string]int"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TypeName(tc.typ); got != tc.want {
				t.Errorf("TypeName = %q, want %q", got, tc.want)
			}
		})
	}
}
