package schema

import (
	"encoding/json"
	"fmt"
	"testing"
)

func TestBuiltinTypes(t *testing.T) {
	tests := []struct {
		name    string
		typ     Type
		value   any
		wantErr bool
	}{
		{"string ok", String(), "Ohio", false},
		{"string bad", String(), 42, true},
		{"number json", Number(), json.Number("39.5"), false},
		{"number json bad", Number(), json.Number("abc"), true},
		{"number int", Number(), 7, false},
		{"number float", Number(), 1.5, false},
		{"number bad", Number(), "7", true},
		{"bool ok", Bool(), true, false},
		{"bool bad", Bool(), "true", true},
		{"slice ok", Slice(String()), []any{"a", "b"}, false},
		{"slice elem bad", Slice(String()), []any{"a", 1}, true},
		{"slice not slice", Slice(String()), "a", true},
		{"slice nil", Slice(String()), nil, true},
		{"non-empty ok", NonEmptyString(), "Utah", false},
		{"non-empty blank", NonEmptyString(), "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.typ.Validate(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestCustomType(t *testing.T) {
	upper := Custom("upper", func(v any) error {
		s, ok := v.(string)
		if !ok || len(s) == 0 || s[0] < 'A' || s[0] > 'Z' {
			return fmt.Errorf("must start with an uppercase letter")
		}
		return nil
	})

	if upper.Name() != "upper" {
		t.Errorf("Name() = %q, want upper", upper.Name())
	}
	if err := upper.Validate("Texas"); err != nil {
		t.Errorf("Validate(Texas) = %v", err)
	}
	if err := upper.Validate("texas"); err == nil {
		t.Error("Validate(texas) should fail")
	}
}

func TestParseType(t *testing.T) {
	tests := map[string]string{
		"string":     "string",
		"number":     "number",
		"int":        "number",
		"float":      "number",
		"bool":       "bool",
		"[string]":   "[string]",
		"[[number]]": "[[number]]",
		" bool ":     "bool",
	}
	for input, want := range tests {
		typ, err := ParseType(input)
		if err != nil {
			t.Errorf("ParseType(%q) error = %v", input, err)
			continue
		}
		if typ.Name() != want {
			t.Errorf("ParseType(%q).Name() = %q, want %q", input, typ.Name(), want)
		}
	}

	for _, bad := range []string{"", "date", "[]", "[date]"} {
		if _, err := ParseType(bad); err == nil {
			t.Errorf("ParseType(%q) should fail", bad)
		}
	}
}

func TestParseTypeMap(t *testing.T) {
	s, err := ParseTypeMap(map[string]string{"population": "number", "tags": "[string]"})
	if err != nil {
		t.Fatalf("ParseTypeMap() error = %v", err)
	}
	if got, want := s.Describe(), "population:number, tags:[string]"; got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}

	if _, err := ParseTypeMap(map[string]string{"when": "date"}); err == nil {
		t.Error("ParseTypeMap should reject unknown types")
	}
}
