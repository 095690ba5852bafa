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

package codemap

import (
	"dirpx.dev/errcode/codestr"
	"google.golang.org/grpc/codes"
)

// Option configures the mapper at build time. All options are applied to
// an internal builder and then frozen into an immutable snapshot.
type Option func(*builder)

// WithHTTPDefault sets or replaces the library-level default HTTP status
// for the given code. Defaults are exact-match and sit below prefix rules.
func WithHTTPDefault(c codestr.Str, status int) Option {
	return func(b *builder) { b.httpDefaults[c] = status }
}

// WithGRPCDefault sets or replaces the library-level default gRPC status
// for the given code.
func WithGRPCDefault(c codestr.Str, status codes.Code) Option {
	return func(b *builder) { b.grpcDefaults[c] = status }
}

// WithHTTPOverride registers an exact HTTP override for the given code.
// Overrides take precedence over both prefix rules and defaults.
func WithHTTPOverride(c codestr.Str, status int) Option {
	return func(b *builder) { b.httpOverride[c] = status }
}

// WithGRPCOverride registers an exact gRPC override for the given code.
func WithGRPCOverride(c codestr.Str, status codes.Code) Option {
	return func(b *builder) { b.grpcOverride[c] = status }
}

// WithHTTPPrefix adds an HTTP longest-prefix-match rule. The rule is
// evaluated against the dot-separated code string; a more specific prefix
// wins. Use "*" to match a single segment.
func WithHTTPPrefix(prefix string, status int) Option {
	return func(b *builder) { b.httpPrefixes = append(b.httpPrefixes, prefixRule{prefix, status}) }
}

// WithGRPCPrefix adds a gRPC longest-prefix-match rule with the same
// matching semantics as WithHTTPPrefix.
func WithGRPCPrefix(prefix string, status codes.Code) Option {
	return func(b *builder) { b.grpcPrefixes = append(b.grpcPrefixes, prefixRule{prefix, int(status)}) }
}

// WithFallback replaces the global fallback statuses used when nothing
// matched — including for empty code strings, which is how adapters report
// absent or non-string code values.
func WithFallback(httpStatus int, grpcStatus codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = httpStatus
		b.fallbackGRPC = grpcStatus
	}
}
