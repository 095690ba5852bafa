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

package apis

// Coded represents an error object that may carry the installed "code"
// attribute.
//
// The code value is deliberately unconstrained: it may be a string, a
// number, nil, or an arbitrary structure. The boolean distinguishes "no
// code was ever installed" from "a code was installed and happens to be
// nil" — the two are different states and adapters must not collapse them.
//
// Implementations MUST return the value exactly as it was installed, with
// no synthesis, defaulting, or coercion. Adapters that need a string form
// should do their own conversion (see the codestr package for the
// conventional shape).
type Coded interface {
	error

	// ErrorCode returns the installed code value and whether it is present.
	ErrorCode() (any, bool)
}

// Kinded represents an error object that reports which constructor of the
// family built it.
//
// The returned value is the canonical kind string ("error", "type_error",
// "aggregate_error", ...) as defined by the kind package. It MUST be
// non-empty and already normalized; callers should not try to "fix" the
// value here.
type Kinded interface {
	error

	// ErrorKind returns the canonical kind string.
	ErrorKind() string
}

// Caused represents an error object that may carry the installed "cause"
// attribute.
//
// Like the code, a cause is any value, not necessarily an error — the
// boolean again distinguishes absence from a present nil. Use the standard
// errors.Unwrap chain when you only care about error-typed causes.
type Caused interface {
	error

	// ErrorCause returns the installed cause value and whether it is present.
	ErrorCause() (any, bool)
}

// Aggregated represents the aggregate member of the family: an error object
// bundling several underlying errors.
//
// Implementations SHOULD return a slice that is safe to iterate over and
// that will not be modified by the callee. Returning nil means "no members".
type Aggregated interface {
	error

	// Errors returns the bundled member errors. May return nil.
	Errors() []error
}

// Suppressing represents the suppressed member of the family: an error
// object recording that a later failure hid an earlier one.
//
// Implementations SHOULD return the error that was suppressed, or nil.
type Suppressing interface {
	error

	// Suppressed returns the error that this one hid, if any.
	Suppressed() error
}
