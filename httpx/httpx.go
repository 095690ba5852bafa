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
	"net/http"
	"strconv"

	"dirpx.dev/errcode"
	"dirpx.dev/errcode/adapter"
	"dirpx.dev/errcode/apis"
)

// Meta carries extra context that the HTTP layer can add on top of an
// errcode.Error. All fields are optional and typically come from request
// context, headers, rate-limiter output, or router-level logic.
type Meta struct {
	Correlation       string
	TraceID           string
	RetryAfterSeconds int
}

// envelope is the wire shape: the error's own view plus request-scoped
// annotations the error object does not carry.
type envelope struct {
	apis.ErrorView
	Correlation       string `json:"correlation,omitempty"`
	TraceID           string `json:"trace_id,omitempty"`
	RetryAfterSeconds int    `json:"retry_after_seconds,omitempty"`
}

// Writer is a thin adapter that knows how to turn an errcode.Error into an
// HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.StatusMapper
}

// Write serializes the error's view and writes it to the response writer.
// The HTTP status is resolved via the Mapper from the error's installed
// code; errors without a string code resolve through the mapper's
// fallback tier.
//
// No automatic redaction or filtering is performed here: whatever is
// present in the error and Meta is exposed as-is. Higher-level handlers
// should apply policies if needed.
func (w Writer) Write(rw http.ResponseWriter, err *errcode.Error, meta Meta) {
	if err == nil {
		return
	}

	st := w.Mapper.Status(adapter.CodeString(err))

	body := envelope{
		ErrorView:         err.ErrorView(),
		Correlation:       meta.Correlation,
		TraceID:           meta.TraceID,
		RetryAfterSeconds: meta.RetryAfterSeconds,
	}

	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(meta.RetryAfterSeconds))
	}
	rw.WriteHeader(st.HTTP)

	b, _ := json.Marshal(body)
	_, _ = rw.Write(b)
}
