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

// Package adapter converts errcode error objects into the portable shapes
// consumed by transport edges and log pipelines.
package adapter

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/errcode"
	"dirpx.dev/errcode/apis"
	"dirpx.dev/errcode/codestr"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
)

// CodeString extracts the string form of an error's installed code, for
// feeding a StatusMapper.
//
// It returns "" when the error carries no code, or when the code value is
// not a string — mappers resolve "" through their fallback tier, which is
// exactly the right treatment for both cases. No coercion of non-string
// values is attempted: a numeric code is a legitimate value, just not one
// the mapping convention covers.
func CodeString(err error) string {
	var coded apis.Coded
	if !errors.As(err, &coded) {
		return ""
	}
	v, ok := coded.ErrorCode()
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// ToView converts an error object into a public ErrorView. This performs
// no redaction or filtering; it exposes exactly what the error contains.
// Higher-level handlers should apply policies if needed.
func ToView(e *errcode.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	return e.ErrorView()
}

// ToDescriptor converts an error object together with its resolved
// transport status into a flat Descriptor.
//
// The descriptor is intended for structured logging, tracing, or message
// bus propagation. It keeps "installed as nil" distinct from "never
// installed" via HasCode, which the view type cannot do under omitempty.
func ToDescriptor(e *errcode.Error, st apis.Status) apis.Descriptor {
	if e == nil {
		return apis.Descriptor{}
	}
	d := apis.Descriptor{
		Kind:       e.ErrorKind(),
		Message:    e.Message(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
	}
	if v, ok := e.Code(); ok {
		d.HasCode = true
		d.Code = fmt.Sprintf("%v", v)
	}
	return d
}

// ToErrorInfo converts an error object into a googleapis ErrorInfo detail
// for attaching to gRPC statuses.
//
// Reason carries the conventional UPPER_SNAKE rendering of the code's
// string form (googleapis style); Metadata keeps the verbatim code string
// under "code" plus the object's kind. When no code is installed, Reason
// stays empty and Metadata only reports the kind.
func ToErrorInfo(e *errcode.Error, domain string) *errdetails.ErrorInfo {
	if e == nil {
		return nil
	}
	info := &errdetails.ErrorInfo{
		Domain:   domain,
		Metadata: map[string]string{"kind": e.ErrorKind()},
	}
	if v, ok := e.Code(); ok {
		s := fmt.Sprintf("%v", v)
		info.Reason = reasonForm(s)
		info.Metadata["code"] = s
	}
	return info
}

// reasonForm renders a code string the way googleapis ErrorInfo reasons
// look: normalized, dots collapsed to underscores, upper snake.
func reasonForm(s string) string {
	n := codestr.Normalize(s)
	n = strings.ReplaceAll(n, ".", "_")
	return strings.ToUpper(n)
}
