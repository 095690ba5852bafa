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
	"net/http"

	"dirpx.dev/errcode/codestr"
	"google.golang.org/grpc/codes"
)

type prefixRule struct {
	// prefix is the raw, dot-separated code prefix (may contain "*").
	// It is normalized and validated when the trie is built.
	prefix string
	// val is the numeric transport status to apply when this prefix
	// matches. For HTTP this is the final value; for gRPC the builder
	// stores ints and converts to codes.Code at build time.
	val int
}

type builder struct {
	// httpDefaults / grpcDefaults hold per-code defaults; pre-seeded from
	// the library tables, adjustable via options.
	httpDefaults map[codestr.Str]int
	grpcDefaults map[codestr.Str]codes.Code

	// httpOverride / grpcOverride hold exact per-code overrides (higher
	// than both defaults and prefix rules).
	httpOverride map[codestr.Str]int
	grpcOverride map[codestr.Str]codes.Code

	// httpPrefixes / grpcPrefixes hold LPM rules, compiled into segment
	// tries in New().
	httpPrefixes []prefixRule
	grpcPrefixes []prefixRule

	// global fallbacks used when nothing matched at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates an empty builder with maps pre-sized to hold the
// built-in defaults.
func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[codestr.Str]int, len(defaultHTTP)),
		grpcDefaults: make(map[codestr.Str]codes.Code, len(defaultGRPC)),

		// overrides are usually few
		httpOverride: make(map[codestr.Str]int),
		grpcOverride: make(map[codestr.Str]codes.Code),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}

// freezeHTTP makes an immutable copy of an HTTP status map so later
// builder mutations (or caller-owned maps) cannot affect the snapshot.
func freezeHTTP(src map[codestr.Str]int) map[codestr.Str]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[codestr.Str]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPC makes an immutable copy of a gRPC status map.
func freezeGRPC(src map[codestr.Str]codes.Code) map[codestr.Str]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[codestr.Str]codes.Code, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
