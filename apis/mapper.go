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

import (
	"google.golang.org/grpc/codes"
)

// StatusMapper is an immutable, concurrency-safe view of transport mapping
// rules. It resolves a code value's string form into transport statuses for
// HTTP and gRPC.
//
// The string passed in is whatever the adapter extracted from the error's
// installed code; mappers are expected to normalize it themselves (see
// codestr.Normalize) and to fall back to their internal defaults when the
// string is empty or unresolvable.
type StatusMapper interface {
	// HTTPStatus returns the HTTP status for the given code string.
	// It must always return a usable status, falling back if nothing matches.
	HTTPStatus(code string) int

	// GRPCStatus returns the gRPC status for the given code string, with
	// the same fallback guarantee.
	GRPCStatus(code string) codes.Code

	// Status resolves both HTTP and gRPC in a single call, using the same
	// matching logic for each.
	Status(code string) Status

	// Explain returns a human-readable description of which rule matched.
	// Implementations may return an empty string in production builds.
	Explain(code string) string
}

// Status represents a resolved pair of transport statuses for a single
// error. It is the final output of a StatusMapper and can be written
// directly to HTTP/gRPC.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
