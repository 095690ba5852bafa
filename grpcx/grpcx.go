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

package grpcx

import (
	"context"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/errcode"
	"dirpx.dev/errcode/adapter"
	"dirpx.dev/errcode/apis"
)

// MetaFn enriches the ErrorInfo metadata for an outgoing error. It may
// inspect the request context (correlation tokens, trace identifiers) and
// the error object itself. Returned entries are merged into the detail's
// Metadata map; returning nil adds nothing.
type MetaFn func(ctx context.Context, e *errcode.Error) map[string]string

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// errcode.Error into gRPC errors carrying a google.rpc.ErrorInfo detail.
//
// The StatusMapper resolves the error's installed code (its string form)
// into a transport status; errors without a code, or with a non-string
// code value, resolve through the mapper's fallback tier. Errors that are
// not *errcode.Error pass through unchanged.
//
// domain names the service producing the error (googleapis convention:
// usually the service's DNS name). The optional MetaFn adds request-scoped
// metadata; pass nil to skip.
func UnaryServerInterceptor(m apis.StatusMapper, domain string, metaFn MetaFn) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		de, ok := err.(*errcode.Error)
		if !ok {
			// Not ours — return as-is.
			return nil, err
		}

		st := m.Status(adapter.CodeString(de))
		detail := adapter.ToErrorInfo(de, domain)
		if metaFn != nil {
			for k, v := range metaFn(ctx, de) {
				detail.Metadata[k] = v
			}
		}

		base := gstatus.New(st.GRPC, de.Message())

		// WithDetails wraps each message in an Any itself. Attaching a
		// pre-wrapped Any would bury the detail one level too deep for
		// Status.Details() to unpack. If attaching fails — return base.
		if with, err := base.WithDetails(detail); err == nil {
			return nil, with.Err()
		}

		return nil, base.Err()
	}
}

// ErrorInfoFromError pulls a google.rpc.ErrorInfo detail out of a gRPC
// error, if present. Useful in tests and client code.
func ErrorInfoFromError(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}
