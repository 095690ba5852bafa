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

// Package errcode provides a family of error objects that carry an
// optional, installable "code" attribute.
//
// Every constructor accepts a human-readable message plus an optional,
// loosely-typed options bag (see dirpx.dev/errcode/bag). When the bag
// carries a "code" member, its value — of any type whatsoever — is
// installed on the object as a non-enumerable, writable, configurable
// attribute. The same mechanism installs the sibling "cause" attribute.
//
// A code is either entirely absent or holds exactly the supplied value;
// it is never synthesized or defaulted. Holders of the object may later
// reassign it (SetCode) or remove it (DeleteCode).
package errcode

import (
	"fmt"

	"dirpx.dev/errcode/apis"
	"dirpx.dev/errcode/attr"
	"dirpx.dev/errcode/bag"
	"dirpx.dev/errcode/kind"
)

// Error is the canonical error object of the family.
//
// It carries:
//   - Kind: which constructor built it (base, typed, aggregate, suppressed);
//   - Message: human-oriented description (what went wrong);
//   - a property set holding the optional installed attributes: "code",
//     "cause", and the variant-specific members.
//
// The zero value is not useful; always go through a constructor. An Error
// is exclusively owned by its constructor until the constructor returns;
// afterwards, attribute reads are safe to share but concurrent mutation
// (SetCode/DeleteCode) of a single object is the caller's problem, exactly
// as with any map-backed Go value.
type Error struct {
	kind    kind.Kind
	message string
	attrs   attr.Set
}

// Compile-time checks: *Error implements the apis contracts.
var (
	_ apis.Coded        = (*Error)(nil)
	_ apis.Kinded       = (*Error)(nil)
	_ apis.Caused       = (*Error)(nil)
	_ apis.Aggregated   = (*Error)(nil)
	_ apis.Suppressing  = (*Error)(nil)
	_ apis.ViewProvider = (*Error)(nil)
)

// New constructs a base error object.
//
// opts may be nil ("no options"), or any bag implementation. When the bag
// carries "cause" and/or "code" members they are installed onto the object;
// any failure reading a member or defining an attribute aborts construction
// and is returned to the caller — a failed construction yields no object.
func New(msg string, opts bag.Bag) (*Error, error) {
	e := &Error{kind: kind.Base, message: msg}
	return finish(e, opts)
}

// NewKind constructs a typed variant of the family, e.g. kind.Type or
// kind.Range. The kind must be canonical; kind.ErrKindInvalid is returned
// otherwise. Construction is otherwise identical to New.
func NewKind(k kind.Kind, msg string, opts bag.Bag) (*Error, error) {
	if err := kind.Validate(k); err != nil {
		return nil, err
	}
	e := &Error{kind: k, message: msg}
	return finish(e, opts)
}

// NewAggregate constructs the aggregate variant, bundling the given member
// errors. The member list is copied and installed under the "errors"
// attribute (non-enumerable, like the other installed metadata) before the
// cause and code installers run.
func NewAggregate(errs []error, msg string, opts bag.Bag) (*Error, error) {
	e := &Error{kind: kind.Aggregate, message: msg}
	members := make([]error, len(errs))
	copy(members, errs)
	if err := e.attrs.Define(AttrErrors, members, attr.Hidden()); err != nil {
		return nil, err
	}
	return finish(e, opts)
}

// NewSuppressed constructs the suppressed variant: result is the error that
// won, suppressed is the earlier error it hid (typically a cleanup failure
// masking the original one, or vice versa). Both are installed as
// non-enumerable attributes before the cause and code installers run.
func NewSuppressed(result, suppressed error, msg string, opts bag.Bag) (*Error, error) {
	e := &Error{kind: kind.Suppressed, message: msg}
	if err := e.attrs.Define(AttrError, result, attr.Hidden()); err != nil {
		return nil, err
	}
	if err := e.attrs.Define(AttrSuppressed, suppressed, attr.Hidden()); err != nil {
		return nil, err
	}
	return finish(e, opts)
}

// finish runs the construction-time installers in their fixed order:
// the pre-existing cause installer first, then the code installer.
// Failures surface unchanged; the partially-built object is discarded.
func finish(e *Error, opts bag.Bag) (*Error, error) {
	if err := InstallCause(&e.attrs, opts); err != nil {
		return nil, err
	}
	if err := InstallCode(&e.attrs, opts); err != nil {
		return nil, err
	}
	return e, nil
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<kind>: <message>
//
// or, when a code is installed:
//
//	<kind>[<code>]: <message>
//
// This keeps the error both human- and machine-scannable in logs.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if v, ok := e.attrs.Value(AttrCode); ok {
		return fmt.Sprintf("%s[%v]: %s", e.kind, v, e.message)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.message)
}

// Kind returns which constructor of the family built this object.
func (e *Error) Kind() kind.Kind { return e.kind }

// Message returns the human-readable message.
func (e *Error) Message() string { return e.message }

// Code returns the installed code value and whether it is present.
// The value is exactly what was supplied at installation (or via SetCode) —
// identity-preserving, never coerced. A present nil is distinct from absent.
func (e *Error) Code() (any, bool) {
	if e == nil {
		return nil, false
	}
	return e.attrs.Value(AttrCode)
}

// HasCode reports whether the code attribute is present.
func (e *Error) HasCode() bool {
	return e != nil && e.attrs.Has(AttrCode)
}

// SetCode reassigns the code attribute. The installed attribute is
// writable, so this succeeds whenever a code is present; when no code was
// ever installed, an ordinary (enumerable) attribute would be created, so
// SetCode instead defines it with the standard installed-metadata flags.
func (e *Error) SetCode(v any) error {
	if e.attrs.Has(AttrCode) {
		return e.attrs.Assign(AttrCode, v)
	}
	return e.attrs.Define(AttrCode, v, attr.Hidden())
}

// DeleteCode removes the code attribute. The installed attribute is
// configurable, so this succeeds; deleting an absent code is a no-op.
func (e *Error) DeleteCode() error {
	return e.attrs.Delete(AttrCode)
}

// CauseValue returns the installed cause value and whether it is present.
// A cause, like a code, may be any value — not necessarily an error.
func (e *Error) CauseValue() (any, bool) {
	if e == nil {
		return nil, false
	}
	return e.attrs.Value(AttrCause)
}

// Unwrap returns the installed cause when it is itself an error, enabling
// errors.Is / errors.As chains. Non-error cause values (and absent causes)
// yield nil.
func (e *Error) Unwrap() error {
	v, ok := e.CauseValue()
	if !ok {
		return nil
	}
	err, _ := v.(error)
	return err
}

// Errors returns the member errors of an aggregate object, or nil for the
// other variants. The returned slice is the installed one; treat it as
// read-only.
func (e *Error) Errors() []error {
	if e == nil {
		return nil
	}
	v, ok := e.attrs.Value(AttrErrors)
	if !ok {
		return nil
	}
	members, _ := v.([]error)
	return members
}

// Err returns the winning error of a suppressed object, or nil for the
// other variants.
func (e *Error) Err() error {
	if e == nil {
		return nil
	}
	v, ok := e.attrs.Value(AttrError)
	if !ok {
		return nil
	}
	err, _ := v.(error)
	return err
}

// Suppressed returns the hidden error of a suppressed object, or nil for
// the other variants.
func (e *Error) Suppressed() error {
	if e == nil {
		return nil
	}
	v, ok := e.attrs.Value(AttrSuppressed)
	if !ok {
		return nil
	}
	err, _ := v.(error)
	return err
}

// Attrs exposes the object's property set for reflective access —
// membership checks, enumerable vs own-name listings, and direct attribute
// manipulation. Mutations performed here obey the per-attribute flags.
func (e *Error) Attrs() *attr.Set { return &e.attrs }

// ErrorCode implements apis.Coded.
func (e *Error) ErrorCode() (any, bool) { return e.Code() }

// ErrorKind implements apis.Kinded.
func (e *Error) ErrorKind() string { return string(e.kind) }

// ErrorCause implements apis.Caused.
func (e *Error) ErrorCause() (any, bool) { return e.CauseValue() }

// ErrorView implements apis.ViewProvider. The view walks error-typed cause
// chains recursively and renders non-error causes as a string detail.
func (e *Error) ErrorView() apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	v := apis.ErrorView{
		Kind:    string(e.kind),
		Message: e.message,
	}
	if c, ok := e.Code(); ok {
		v.Code = c
	}
	if cv, ok := e.CauseValue(); ok {
		switch cause := cv.(type) {
		case *Error:
			cw := cause.ErrorView()
			v.Cause = &cw
		case error:
			v.Cause = &apis.ErrorView{Kind: string(kind.Base), Message: cause.Error()}
		default:
			v.Detail = fmt.Sprintf("%v", cause)
		}
	}
	for _, m := range e.Errors() {
		switch member := m.(type) {
		case *Error:
			v.Errors = append(v.Errors, member.ErrorView())
		case nil:
			// skip nil members in views; the attribute itself keeps them
		default:
			v.Errors = append(v.Errors, apis.ErrorView{Kind: string(kind.Base), Message: member.Error()})
		}
	}
	return v
}
