/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package kind

import (
	"encoding"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  error  ", "error"},
		{"to lower", "TyPe_ErRoR", "type_error"},
		{"mixed", "  AGGREGATE_ERROR  ", "aggregate_error"},
		{"no repair", "type-error", "type-error"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Kind
	}{
		{"simple", "error", Base},
		{"with spaces", "  type_error  ", Type},
		{"upper", "RANGE_ERROR", Range},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too short", "ab"},
		{"starts with digit", "1error"},
		{"bad chars", "type error"},
		{"dash", "type-error"},
		{"too long", "a_very_long_kind_that_is_definitely_more_than_sixty_four_characters_long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", tt.in, got)
			}
			if got != "" {
				t.Fatalf("Parse(%q) on error must return empty kind, got %q", tt.in, got)
			}
		})
	}
}

func TestValidate_FamilyConstants(t *testing.T) {
	for _, k := range []Kind{Base, Type, Range, Reference, Syntax, Aggregate, Suppressed} {
		if err := Validate(k); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", k, err)
		}
	}

	invalid := []Kind{"", "ab", "Error", "type-error"}
	for _, k := range invalid {
		if err := Validate(k); err == nil {
			t.Fatalf("Validate(%q) expected error", k)
		}
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("NOT A KIND ??")
}

func TestKind_TextRoundTrip(t *testing.T) {
	text, err := Type.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "type_error" {
		t.Fatalf("MarshalText() = %q, want %q", string(text), "type_error")
	}

	var k Kind
	if err := k.UnmarshalText([]byte("  TYPE_ERROR  ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if k != Type {
		t.Fatalf("UnmarshalText() = %q, want %q", k, Type)
	}

	var bad Kind
	if err := bad.UnmarshalText([]byte("!@#")); err == nil {
		t.Fatalf("UnmarshalText() expected error for invalid input")
	}
}

func TestKind_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Kind)(nil)
	var _ encoding.TextUnmarshaler = (*Kind)(nil)
}
