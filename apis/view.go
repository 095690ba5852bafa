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

// ViewProvider is implemented by errors that can produce a transport-
// friendly, self-contained representation of themselves.
//
// This is useful for HTTP/gRPC adapters that want to send "the canonical
// form" of the error to the client without knowing the concrete error type.
//
// The returned view MUST be safe to marshal to JSON and SHOULD contain all
// information that is safe to disclose to the client.
type ViewProvider interface {
	error

	// ErrorView returns a transport-friendly snapshot of the error.
	ErrorView() ErrorView
}

// ErrorView is a minimal, serializable representation of an error object.
//
// This is *not* the concrete error type used internally — it is the shape
// we are comfortable exposing over the wire or logging. Keeping it here (in
// apis) allows HTTP and gRPC adapters to share the same struct.
//
// NOTE: under encoding/json, a code installed with the value nil collapses
// to "absent" because of omitempty. The in-memory model and Descriptor keep
// the distinction; wire consumers that need it should use Descriptor.
type ErrorView struct {
	// Kind is the canonical family kind, e.g. "error", "type_error",
	// "aggregate_error".
	Kind string `json:"kind"`

	// Message is the human-readable explanation.
	Message string `json:"message,omitempty"`

	// Code is the installed code value, exactly as installed. Absent when
	// the attribute was never installed (or was deleted).
	Code any `json:"code,omitempty"`

	// Cause is the view of the cause chain, when the installed cause is
	// itself an error. Non-error cause values are rendered in Detail.
	Cause *ErrorView `json:"cause,omitempty"`

	// Detail carries the string form of a non-error cause value, when one
	// was installed. Empty otherwise.
	Detail string `json:"detail,omitempty"`

	// Errors holds the member views of an aggregate error object.
	Errors []ErrorView `json:"errors,omitempty"`
}
