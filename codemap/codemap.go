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
	"fmt"
	"strings"

	"dirpx.dev/errcode/apis"
	"dirpx.dev/errcode/codemap/internal/segmenttrie"
	"dirpx.dev/errcode/codestr"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.StatusMapper snapshot.
//
// The resulting mapper is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained instance — no shared
// references to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, prefix rules).
//  3. Normalize and validate all prefixes (via codestr.Normalize) and
//     compile them into segment tries supporting longest-prefix-match with
//     '*' as a single-segment wildcard.
//  4. Freeze all maps and tries into immutable copies.
//
// Errors indicate invalid prefixes or configuration problems.
func New(opts ...Option) (apis.StatusMapper, error) {
	b := newBuilder()

	// Library defaults first; options may replace them.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = v
	}

	for _, opt := range opts {
		opt(b)
	}

	httpRules := segmenttrie.New[int]()
	for _, r := range b.httpPrefixes {
		p, err := normalizePrefix(r.prefix)
		if err != nil {
			return nil, fmt.Errorf("codemap: invalid HTTP prefix %q: %w", r.prefix, err)
		}
		if err := httpRules.Insert(p, r.val); err != nil {
			return nil, fmt.Errorf("codemap: cannot insert HTTP prefix %q: %w", p, err)
		}
	}

	grpcRules := segmenttrie.New[codes.Code]()
	for _, r := range b.grpcPrefixes {
		p, err := normalizePrefix(r.prefix)
		if err != nil {
			return nil, fmt.Errorf("codemap: invalid gRPC prefix %q: %w", r.prefix, err)
		}
		if err := grpcRules.Insert(p, codes.Code(r.val)); err != nil {
			return nil, fmt.Errorf("codemap: cannot insert gRPC prefix %q: %w", p, err)
		}
	}

	m := &mapper{
		httpDefault:  freezeHTTP(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeHTTP(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		httpRules:    httpRules,
		grpcRules:    grpcRules,
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}
	return m, nil
}

// mapper is the immutable implementation combining exact overrides, prefix
// rules, and exact defaults. Lookups are O(depth) and safe for concurrent
// use once constructed.
type mapper struct {
	// httpDefault / grpcDefault hold the base statuses for exactly-known
	// codes. Used when no override and no prefix rule apply.
	httpDefault map[codestr.Str]int
	grpcDefault map[codestr.Str]codes.Code

	// httpOverride / grpcOverride hold explicit statuses for specific
	// codes. These take precedence over everything else.
	httpOverride map[codestr.Str]int
	grpcOverride map[codestr.Str]codes.Code

	// httpRules / grpcRules resolve statuses by longest prefix over the
	// dot-separated code string ("*" matches one segment).
	httpRules *segmenttrie.Trie[int]
	grpcRules *segmenttrie.Trie[codes.Code]

	// fallbackHTTP / fallbackGRPC apply when nothing else matched — in
	// particular for empty strings, which is how adapters report absent or
	// non-string code values.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given code string.
//
// Resolution order (highest to lowest):
//  1. exact override (explicitly registered);
//  2. longest-prefix-match rule;
//  3. exact default (library or user adjusted);
//  4. fallback.
func (m *mapper) HTTPStatus(code string) int {
	c := codestr.Str(codestr.Normalize(code))
	if v, ok := m.httpOverride[c]; ok {
		return v
	}
	if v, _, ok := m.httpRules.Match(string(c)); ok {
		return v
	}
	if v, ok := m.httpDefault[c]; ok {
		return v
	}
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given code string, using the
// same precedence as HTTPStatus.
func (m *mapper) GRPCStatus(code string) codes.Code {
	c := codestr.Str(codestr.Normalize(code))
	if v, ok := m.grpcOverride[c]; ok {
		return v
	}
	if v, _, ok := m.grpcRules.Match(string(c)); ok {
		return v
	}
	if v, ok := m.grpcDefault[c]; ok {
		return v
	}
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC for the same code string, keeping the
// two decisions consistent for a single logical error.
func (m *mapper) Status(code string) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(code),
		GRPC: m.GRPCStatus(code),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and
// gRPC statuses for a particular code string.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, prefix, default, or fallback) and, for prefix matches, which
// pattern was used.
//
// Example output:
//
//	code="storage.pg.connect_timeout"
//	http: source=prefix pattern="storage.pg" -> 503
//	grpc: source=default -> UNAVAILABLE(14)
//
// source is one of override | prefix | default | fallback.
func (m *mapper) Explain(code string) string {
	c := codestr.Str(codestr.Normalize(code))

	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q\n", string(c))

	if v, ok := m.httpOverride[c]; ok {
		_, _ = fmt.Fprintf(&b, "http: source=override -> %d\n", v)
	} else if v, pat, ok := m.httpRules.Match(string(c)); ok {
		_, _ = fmt.Fprintf(&b, "http: source=prefix pattern=%q -> %d\n", pat, v)
	} else if v, ok := m.httpDefault[c]; ok {
		_, _ = fmt.Fprintf(&b, "http: source=default -> %d\n", v)
	} else {
		_, _ = fmt.Fprintf(&b, "http: source=fallback -> %d\n", m.fallbackHTTP)
	}

	if v, ok := m.grpcOverride[c]; ok {
		_, _ = fmt.Fprintf(&b, "grpc: source=override -> %s(%d)\n", grpcName(v), int(v))
	} else if v, pat, ok := m.grpcRules.Match(string(c)); ok {
		_, _ = fmt.Fprintf(&b, "grpc: source=prefix pattern=%q -> %s(%d)\n", pat, grpcName(v), int(v))
	} else if v, ok := m.grpcDefault[c]; ok {
		_, _ = fmt.Fprintf(&b, "grpc: source=default -> %s(%d)\n", grpcName(v), int(v))
	} else {
		_, _ = fmt.Fprintf(&b, "grpc: source=fallback -> %s(%d)\n", grpcName(m.fallbackGRPC), int(m.fallbackGRPC))
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// grpcName renders a gRPC code the way grpc logs do: upper snake.
func grpcName(c codes.Code) string {
	return strings.ToUpper(c.String())
}

// normalizePrefix brings a rule prefix to canonical form. It forbids empty
// prefixes; structural checks (segment charset, all-wildcard rejection) are
// delegated to the trie on Insert.
func normalizePrefix(raw string) (string, error) {
	p := codestr.Normalize(raw)
	if p == "" {
		return "", fmt.Errorf("empty prefix")
	}
	return p, nil
}
