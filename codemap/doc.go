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

// Package codemap provides deterministic, immutable mappings from the
// string form of installed code values to transport-level statuses for
// HTTP and gRPC.
//
// # Overview
//
// The core model never constrains the type of a code value. Transport
// edges still have to pick a concrete status for each error, and in
// practice codes are short machine-readable strings, often namespaced:
// "not_found", "storage.pg.connect_timeout", "err_invalid_arg". A Mapper
// resolves such strings in a way that is:
//
//   - immutable — a built mapper is a snapshot, safe for concurrent reuse;
//   - overridable — callers can adjust library defaults per code;
//   - prefix-aware — fine-grained rules for namespaced code families;
//   - dual — HTTP and gRPC are resolved with the same logic.
//
// Non-string code values (and absent codes) are the adapter's concern:
// adapters pass an empty string, which resolves through the fallback tier.
//
// # Resolution model
//
// Lookups normalize the input via codestr.Normalize and then resolve in
// the following order:
//
//  1. exact override for the code;
//  2. longest-prefix-match (LPM) on dot-separated segments;
//  3. exact default (library or user-adjusted);
//  4. global fallback (500 / codes.Internal unless reconfigured).
//
// Prefix rules are segment-aware: "*" matches exactly one segment, and the
// more specific prefix wins. For example:
//
//	codemap.WithHTTPPrefix("storage.pg", http.StatusServiceUnavailable)
//	codemap.WithHTTPPrefix("auth.*.expired", http.StatusUnauthorized)
//
// # Library defaults
//
// The package ships defaults for the generic code vocabulary in
// defaults.go ("invalid" -> 400/InvalidArgument, "not_found" ->
// 404/NotFound, "unavailable" -> 503/Unavailable, ...). These can be
// adjusted at build time.
package codemap
