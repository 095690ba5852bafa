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
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Kind names the variant of an error object: which constructor family it
// belongs to. The working set is the package constants below (Base, Type,
// Aggregate, ...); the type stays open so embedders can declare their own
// variants, which must satisfy Validate.
//
// A Kind is not user input. The only external surface that produces one is
// UnmarshalText, for kinds stored in configuration or arriving over the
// wire.
type Kind string

// Kinds are snake_case identifiers between MinLength and MaxLength
// characters. The bounds rule out one-letter variants on one end and
// accidental free text on the other.
const (
	MinLength = 3
	MaxLength = 64
)

// kindFmt accepts a lowercase letter followed by lowercase letters, digits
// or underscores. The quantifier {2,63} pins the total length to
// MinLength..MaxLength; keep them in sync.
const kindFmt = `^[a-z][a-z0-9_]{2,63}$`

var kindRe = regexp.MustCompile(kindFmt)

// ErrKindInvalid is returned when a value cannot be parsed or validated as
// a kind.
var ErrKindInvalid = errors.New("errcode: invalid kind")

var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// Parse normalizes and validates a string as a kind.
func Parse(s string) (Kind, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return "", err
	}
	return Kind(s), nil
}

// MustParse is the panic-on-error variant of Parse, for declaring
// variants in var blocks.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Normalize smooths case and surrounding whitespace from configuration or
// wire text. Kinds in code are declared as constants and never need it; it
// does not attempt to repair arbitrary strings, and its result may still
// fail Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	return strings.ToLower(s)
}

// Validate reports whether k is a well-formed kind. The empty kind ("")
// is invalid.
func Validate(k Kind) error {
	return validate(string(k))
}

func (k Kind) String() string {
	return string(k)
}

// MarshalText implements encoding.TextMarshaler. Invalid kinds refuse to
// marshal rather than leak a malformed identifier.
func (k Kind) MarshalText() ([]byte, error) {
	if err := Validate(k); err != nil {
		return nil, err
	}
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func validate(s string) error {
	if !kindRe.MatchString(s) {
		return ErrKindInvalid
	}
	return nil
}
