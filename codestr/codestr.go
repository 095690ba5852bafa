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

package codestr

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Str is the canonical, validated string form of a code value.
//
// Strs are dot-separated hierarchical identifiers with a small, fixed
// depth. Each segment names a subsystem, component, or condition:
//
//   - "err_invalid_arg"
//   - "storage.pg.connect_timeout"
//   - "auth.token.expired"
//
// The intent is to make it easy to build such identifiers programmatically
// and to let mappers and log pipelines match on their prefixes.
type Str string

// MinLength and MaxLength define the allowed length range for a canonical
// code string.
//
// Code strings may be longer than kinds because they often carry multiple
// segments (subsystem.component.condition).
const (
	// MinLength is the minimum length for a non-empty code string. Trivial
	// values like "x" are not meaningful codes. The empty string is still
	// allowed and means "no conventional form".
	MinLength = 3

	// MaxLength is the maximum length for a valid code string.
	// 128 characters is enough even for 4 segments with descriptive names.
	MaxLength = 128
)

const (
	// strFmt is the canonical regular expression used to validate code
	// strings.
	//
	// We accept 1 to 4 segments, dot-separated, each segment:
	//
	//   - starts with a lowercase ASCII letter [a-z]
	//   - continues with lowercase letters, digits, or underscore [a-z0-9_]*
	//
	// Examples that match:
	//
	//	"err_invalid_arg"
	//	"storage.pg.connect_timeout"
	//	"auth.token.expired"
	//
	// Examples that DO NOT match:
	//
	//	"ERR_INVALID_ARG" (uppercase; use Normalize first)
	//	"storage/pg"      (slash; Normalize converts it)
	//	"storage..pg"     (empty segment)
	//	"1storage.pg"     (digit first)
	//
	// NOTE: the empty string ("") is treated separately as "no conventional
	// form" and does not go through this regexp.
	strFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`
)

var (
	// strRe is the compiled regexp for the above pattern.
	strRe = regexp.MustCompile(strFmt)
)

var (
	// ErrInvalidFormat is returned when a code string does not conform to
	// the expected format.
	ErrInvalidFormat = errors.New("errcode: invalid code string format")
	// ErrInvalidLength is returned when a code string is too short or too long.
	ErrInvalidLength = errors.New("errcode: invalid code string length")
)

// Ensure Str implements encoding.TextMarshaler / encoding.TextUnmarshaler.
var (
	_ encoding.TextMarshaler   = (*Str)(nil)
	_ encoding.TextUnmarshaler = (*Str)(nil)
)

// Empty is the zero-value code string: "no conventional form".
var Empty Str = ""

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical form. Only conservative, non-lossy transformations are applied:
//
//   - trim spaces
//   - lower-case (ecosystem codes are frequently SCREAMING_SNAKE)
//   - convert "/" to "." (callers may build paths with slashes)
//   - replace "-" with "_"
//
// It does NOT guarantee validity — callers should still call Parse/Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Str value.
//
// Parse also accepts the empty string and returns Empty without error.
// This is what makes the conventional form optional.
func Parse(s string) (Str, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Str(s), nil
}

// MustParse is the panic-on-error variant of Parse, for package-level
// constants in var/const blocks.
//
// NOTE: unlike Parse, MustParse does NOT allow the empty string — passing
// one here is almost always a programmer error.
func MustParse(s string) Str {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if c == Empty {
		panic("errcode: empty code string in MustParse")
	}
	return c
}

// Validate checks whether the provided Str is in canonical form.
//
// The empty string ("") is valid here, because the conventional form is
// optional. If you need "must be non-empty", add that check at call site.
func Validate(c Str) error {
	if c == Empty {
		return nil
	}
	return validate(string(c))
}

// String returns the canonical string representation.
func (c Str) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
//
// The empty value marshals to an empty slice so that JSON/YAML encoders
// relying on TextMarshaler keep working.
func (c Str) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	if c == Empty {
		return []byte{}, nil
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
// An empty or whitespace-only input produces Empty.
func (c *Str) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// validate is the internal helper that checks length and format.
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrInvalidLength
	}
	if !strRe.MatchString(s) {
		return ErrInvalidFormat
	}
	return nil
}
