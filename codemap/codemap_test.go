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
	"strings"
	"sync"
	"testing"

	"google.golang.org/grpc/codes"
)

func TestDefaults_HTTP_GRPC(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	check := func(code string, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(code)
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%q) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				code, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check("invalid", 400, codes.InvalidArgument)
	check("not_found", 404, codes.NotFound)
	check("unavailable", 503, codes.Unavailable)
	// Normalization applies before lookup.
	check("  NOT-FOUND  ", 404, codes.NotFound)
}

func TestFallback(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st := m.Status("no.such.code"); st.HTTP != 500 || st.GRPC != codes.Internal {
		t.Fatalf("fallback = %+v", st)
	}
	// Empty string is how adapters report absent or non-string codes.
	if st := m.Status(""); st.HTTP != 500 || st.GRPC != codes.Internal {
		t.Fatalf("empty-code fallback = %+v", st)
	}

	m2, err := New(WithFallback(502, codes.Unknown))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st := m2.Status(""); st.HTTP != 502 || st.GRPC != codes.Unknown {
		t.Fatalf("custom fallback = %+v", st)
	}
}

func TestPriority_OverrideOverPrefixOverDefault(t *testing.T) {
	m, err := New(
		WithHTTPDefault("storage.pg.connect", 500),
		WithHTTPPrefix("storage.pg", 599),
		WithHTTPOverride("storage.pg.connect", 418),
		WithGRPCDefault("storage.pg.connect", codes.Internal),
		WithGRPCPrefix("storage.pg", codes.Unavailable),
		WithGRPCOverride("storage.pg.connect", codes.Aborted),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status("storage.pg.connect")
	if st.HTTP != 418 {
		t.Fatalf("override must win; got %d, want 418", st.HTTP)
	}
	if st.GRPC != codes.Aborted {
		t.Fatalf("override must win; got %v, want %v", st.GRPC, codes.Aborted)
	}

	// Without the override the prefix rule wins over the default.
	m2, err := New(
		WithHTTPDefault("storage.pg.connect", 500),
		WithHTTPPrefix("storage.pg", 599),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m2.HTTPStatus("storage.pg.connect"); got != 599 {
		t.Fatalf("prefix must beat default; got %d", got)
	}
}

func TestPrefix_LPM_And_SegmentBoundary(t *testing.T) {
	m, err := New(
		WithHTTPPrefix("storage.pg", 503),
		WithHTTPPrefix("storage.pg.connect", 599),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus("storage.pg.connect.timeout"); got != 599 {
		t.Fatalf("LPM failed: got %d, want 599", got)
	}
	// "auth.j" must not match an "auth.jwt" rule across the segment boundary.
	m2, _ := New(WithHTTPPrefix("auth.jwt", 499))
	if got := m2.HTTPStatus("auth.j"); got == 499 {
		t.Fatalf("unexpected match across segment boundary")
	}
}

func TestWildcard_OneSegment(t *testing.T) {
	m, err := New(
		WithHTTPPrefix("auth.*.expired", 401),
		WithHTTPPrefix("auth.token.expired", 440),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus("auth.token.expired"); got != 440 {
		t.Fatalf("exact must beat wildcard; got %d", got)
	}
	if got := m.HTTPStatus("auth.session.expired"); got != 401 {
		t.Fatalf("wildcard match failed; got %d", got)
	}
	// Exactly one segment, not zero.
	if got := m.HTTPStatus("auth.expired"); got == 401 {
		t.Fatalf("wildcard must not match zero segments")
	}
}

func TestNormalization_In_Options(t *testing.T) {
	m, err := New(
		WithHTTPPrefix("  STORAGE/PG.CONNECT-TIMEOUT  ", 599),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus("storage.pg.connect_timeout"); got != 599 {
		t.Fatalf("normalized prefix must match; got %d", got)
	}
}

func TestInvalidPrefix(t *testing.T) {
	for _, p := range []string{"", "*", "*.*", "storage..pg"} {
		if _, err := New(WithHTTPPrefix(p, 500)); err == nil {
			t.Fatalf("New with prefix %q expected error", p)
		}
	}
}

func TestConcurrentLookups(t *testing.T) {
	m, err := New(WithHTTPPrefix("storage.pg", 503))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if got := m.HTTPStatus("storage.pg.connect"); got != 503 {
					panic("lookup mismatch")
				}
				_ = m.GRPCStatus("not_found")
			}
		}()
	}
	wg.Wait()
}

func TestExplain_Sources(t *testing.T) {
	m, err := New(
		WithHTTPPrefix("storage.pg", 503),
		WithGRPCPrefix("storage.pg", codes.Unavailable),
		WithHTTPOverride("canceled", 408),
		WithGRPCOverride("canceled", codes.Canceled),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	byPrefix := m.Explain("storage.pg.connect_timeout")
	for _, sub := range []string{`source=prefix`, `pattern="storage.pg"`, "503", "UNAVAILABLE(14)"} {
		if !strings.Contains(byPrefix, sub) {
			t.Fatalf("Explain missing %q in:\n%s", sub, byPrefix)
		}
	}

	byOverride := m.Explain("canceled")
	if !strings.Contains(byOverride, "source=override") {
		t.Fatalf("Explain = %s", byOverride)
	}

	byDefault := m.Explain("not_found")
	if !strings.Contains(byDefault, "source=default") {
		t.Fatalf("Explain = %s", byDefault)
	}

	byFallback := m.Explain("zzz.unknown")
	if !strings.Contains(byFallback, "source=fallback") {
		t.Fatalf("Explain = %s", byFallback)
	}
}
