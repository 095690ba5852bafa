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

// The error-object family.
//
// Every constructor in the root errcode package stamps exactly one of these
// kinds onto the object it builds. All variants install the same optional
// metadata attributes ("code", "cause") the same way; the kind only records
// which construction path produced the object.
const (
	// Base is the generic error object. Use this when no more specific
	// variant applies; it is also what New() stamps by default.
	Base Kind = "error"

	// Type indicates that a value had the wrong type or shape for the
	// attempted operation.
	Type Kind = "type_error"

	// Range indicates that a value was of the right type but outside the
	// set or range of acceptable values.
	Range Kind = "range_error"

	// Reference indicates that a referenced name or target does not exist
	// or cannot be resolved.
	Reference Kind = "reference_error"

	// Syntax indicates malformed input that could not be parsed at all.
	Syntax Kind = "syntax_error"

	// Aggregate is the variant that bundles several underlying errors into
	// one object. The member errors are carried alongside the usual
	// metadata attributes and exposed via Errors().
	Aggregate Kind = "aggregate_error"

	// Suppressed is the variant produced when a later failure hides an
	// earlier one (typically during cleanup). The hidden error is exposed
	// via Suppressed().
	Suppressed Kind = "suppressed_error"
)
