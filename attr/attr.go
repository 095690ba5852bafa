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

package attr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigurable is returned when Define or Delete targets an
	// attribute whose Configurable flag is false. A locked-down attribute
	// must never be silently overwritten or removed.
	ErrNotConfigurable = errors.New("attr: attribute is not configurable")

	// ErrNotWritable is returned when Assign targets an attribute whose
	// Writable flag is false.
	ErrNotWritable = errors.New("attr: attribute is not writable")

	// ErrNotExtensible is returned when Define or Assign would add a new
	// attribute to a set that had PreventExtensions called on it.
	ErrNotExtensible = errors.New("attr: set is not extensible")
)

// Flags holds the three independent metadata bits of a single attribute.
//
// The zero value (all false) describes a hidden, read-only, permanent
// attribute. Most call sites should use one of the preset helpers below
// instead of building Flags literals inline.
type Flags struct {
	// Enumerable controls inclusion in Names() — the default, iteration-
	// facing listing. Reflective listing via OwnNames() ignores this flag.
	Enumerable bool

	// Writable controls whether Assign may replace the value.
	Writable bool

	// Configurable controls whether the attribute may be redefined via
	// Define (including flag changes) or removed via Delete.
	Configurable bool
}

// Data returns the flags of a plain data attribute created by ordinary
// assignment: visible, mutable, removable.
func Data() Flags {
	return Flags{Enumerable: true, Writable: true, Configurable: true}
}

// Hidden returns the flags used for installed metadata attributes such as
// "code" and "cause": excluded from default iteration, but freely
// reassignable and deletable by any holder of the object.
func Hidden() Flags {
	return Flags{Enumerable: false, Writable: true, Configurable: true}
}

// property is a single slot in the set: the supplied value plus its flags.
type property struct {
	value any
	flags Flags
}

// Set is an insertion-ordered collection of named attributes.
//
// The zero value is ready to use. A Set is not safe for concurrent
// mutation; see the package documentation.
type Set struct {
	props map[string]property
	// order preserves definition order for Names/OwnNames. Entries are
	// removed on Delete, so the slice always mirrors the map.
	order []string
	// sealed blocks the addition of new attributes once set.
	sealed bool
}

// Define installs or redefines the named attribute with the given value and
// flags.
//
// Rules:
//   - redefining an existing attribute requires Configurable=true on the
//     existing attribute, otherwise ErrNotConfigurable is returned
//     (wrapped with the attribute name);
//   - adding a new attribute requires the set to be extensible, otherwise
//     ErrNotExtensible is returned;
//   - redefining an existing configurable attribute always succeeds and
//     replaces both value and flags (last write wins).
//
// On success exactly one attribute is present under name, holding exactly
// value.
func (s *Set) Define(name string, value any, f Flags) error {
	if old, ok := s.lookup(name); ok {
		if !old.flags.Configurable {
			return fmt.Errorf("attr: define %q: %w", name, ErrNotConfigurable)
		}
		s.props[name] = property{value: value, flags: f}
		return nil
	}
	if s.sealed {
		return fmt.Errorf("attr: define %q: %w", name, ErrNotExtensible)
	}
	s.put(name, property{value: value, flags: f})
	return nil
}

// Assign performs an ordinary write to the named attribute.
//
// When the attribute exists, its value is replaced if Writable allows it;
// flags are left untouched. When the attribute does not exist, a plain data
// attribute (Data() flags) is created, subject to extensibility.
func (s *Set) Assign(name string, value any) error {
	if old, ok := s.lookup(name); ok {
		if !old.flags.Writable {
			return fmt.Errorf("attr: assign %q: %w", name, ErrNotWritable)
		}
		old.value = value
		s.props[name] = old
		return nil
	}
	if s.sealed {
		return fmt.Errorf("attr: assign %q: %w", name, ErrNotExtensible)
	}
	s.put(name, property{value: value, flags: Data()})
	return nil
}

// Value returns the value of the named attribute and whether it is present.
// The value is returned as supplied — identity-preserving for non-primitive
// values, with no coercion.
func (s *Set) Value(name string) (any, bool) {
	p, ok := s.lookup(name)
	if !ok {
		return nil, false
	}
	return p.value, true
}

// Has reports whether the named attribute is present in the set.
func (s *Set) Has(name string) bool {
	_, ok := s.lookup(name)
	return ok
}

// Lookup returns the flags of the named attribute and whether it is present.
func (s *Set) Lookup(name string) (Flags, bool) {
	p, ok := s.lookup(name)
	if !ok {
		return Flags{}, false
	}
	return p.flags, true
}

// Delete removes the named attribute.
//
// Deleting an absent attribute is a no-op. Deleting a non-configurable
// attribute fails with ErrNotConfigurable (wrapped with the name).
func (s *Set) Delete(name string) error {
	p, ok := s.lookup(name)
	if !ok {
		return nil
	}
	if !p.flags.Configurable {
		return fmt.Errorf("attr: delete %q: %w", name, ErrNotConfigurable)
	}
	delete(s.props, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Names returns the enumerable attribute names in definition order.
// Non-enumerable attributes are excluded; this is the iteration-facing
// listing.
func (s *Set) Names() []string {
	if len(s.order) == 0 {
		return nil
	}
	out := make([]string, 0, len(s.order))
	for _, n := range s.order {
		if s.props[n].flags.Enumerable {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// OwnNames returns all attribute names in definition order, regardless of
// enumerability. This is the reflective listing.
func (s *Set) OwnNames() []string {
	if len(s.order) == 0 {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of attributes currently present.
func (s *Set) Len() int { return len(s.order) }

// PreventExtensions blocks the addition of new attributes. Existing
// attributes keep their individual flags and remain assignable/deletable
// according to those flags.
func (s *Set) PreventExtensions() { s.sealed = true }

// Extensible reports whether new attributes may still be added.
func (s *Set) Extensible() bool { return !s.sealed }

func (s *Set) lookup(name string) (property, bool) {
	if s == nil || s.props == nil {
		return property{}, false
	}
	p, ok := s.props[name]
	return p, ok
}

func (s *Set) put(name string, p property) {
	if s.props == nil {
		s.props = make(map[string]property, 2)
	}
	s.props[name] = p
	s.order = append(s.order, name)
}
