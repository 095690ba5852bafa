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

package httpx

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"google.golang.org/grpc/codes"

	"dirpx.dev/errcode"
	"dirpx.dev/errcode/codemap"
	"dirpx.dev/errcode/codestr"
)

func TestWriteResolvesStatusFromCode(t *testing.T) {
	m, err := codemap.New(
		codemap.WithHTTPOverride(codestr.MustParse("storage.full"), 507),
	)
	if err != nil {
		t.Fatal(err)
	}
	w := Writer{Mapper: m}

	de, err := errcode.New("disk full", errcode.Opts(errcode.WithCode("storage.full")))
	if err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	w.Write(rec, de, Meta{Correlation: "req-7"})

	if rec.Code != 507 {
		t.Errorf("status = %d, want 507", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["kind"] != "error" {
		t.Errorf("kind = %v", body["kind"])
	}
	if body["message"] != "disk full" {
		t.Errorf("message = %v", body["message"])
	}
	if body["code"] != "storage.full" {
		t.Errorf("code = %v", body["code"])
	}
	if body["correlation"] != "req-7" {
		t.Errorf("correlation = %v", body["correlation"])
	}
}

func TestWriteFallbackWithoutCode(t *testing.T) {
	m, err := codemap.New(codemap.WithFallback(500, codes.Internal))
	if err != nil {
		t.Fatal(err)
	}
	w := Writer{Mapper: m}

	de, err := errcode.New("unexplained", nil)
	if err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	w.Write(rec, de, Meta{})

	if rec.Code != 500 {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if _, ok := body["code"]; ok {
		t.Error("code key should be absent when no code is installed")
	}
}

func TestWriteRetryAfterHeader(t *testing.T) {
	m, err := codemap.New()
	if err != nil {
		t.Fatal(err)
	}
	w := Writer{Mapper: m}

	de, err := errcode.New("slow down", errcode.Opts(errcode.WithCode("rate_limited")))
	if err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	w.Write(rec, de, Meta{RetryAfterSeconds: 30})

	if rec.Code != 429 {
		t.Errorf("status = %d, want 429", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "30" {
		t.Errorf("Retry-After = %q", got)
	}
}

func TestWriteNilError(t *testing.T) {
	m, err := codemap.New()
	if err != nil {
		t.Fatal(err)
	}
	rec := httptest.NewRecorder()
	Writer{Mapper: m}.Write(rec, nil, Meta{})
	if rec.Body.Len() != 0 {
		t.Errorf("body written for nil error: %q", rec.Body.String())
	}
}
