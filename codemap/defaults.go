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

// defaultHTTP defines the library's built-in HTTP mappings for the generic
// code vocabulary. These are only defaults: callers are expected to adjust
// them at the boundary where HTTP is actually produced (REST gateway, HTTP
// handler, etc.), and teams with their own code namespaces will typically
// add prefix rules on top.
var defaultHTTP = map[codestr.Str]int{
	// 5xx — server / dependency / transient issues.
	"internal":    http.StatusInternalServerError, // Generic internal failure; do not expose details.
	"unavailable": http.StatusServiceUnavailable,  // Service or a required dependency is unreachable.
	"timeout":     http.StatusGatewayTimeout,      // Operation exceeded the time budget.
	"canceled":    http.StatusRequestTimeout,      // Caller canceled; 499 is common but non-standard.

	// 4xx — client/protocol/resource issues.
	"invalid":     http.StatusBadRequest, // Malformed input, validation errors, contract violation.
	"unsupported": http.StatusBadRequest, // Known but unsupported operation/content/option.
	"expired":     http.StatusBadRequest, // Resource or token has expired; client may refresh and retry.

	"not_found": http.StatusNotFound, // Target resource does not exist (or is not visible).
	"gone":      http.StatusGone,     // Resource used to exist but is permanently gone.

	// Conflicts and concurrency.
	"already_exists":      http.StatusConflict,           // Creation clash — identity already taken.
	"conflict":            http.StatusConflict,           // General conflicting update/action.
	"precondition_failed": http.StatusPreconditionFailed, // If-Match / preconditions failed.

	// AuthN / AuthZ.
	"unauthenticated":   http.StatusUnauthorized, // No/invalid credentials — caller must authenticate.
	"permission_denied": http.StatusForbidden,    // Authenticated but not allowed.

	// Rate/quotas.
	"rate_limited":   http.StatusTooManyRequests,
	"quota_exceeded": http.StatusTooManyRequests,
}

// defaultGRPC defines the library's built-in gRPC mappings for the same
// vocabulary, aligned with canonical gRPC status semantics. As with HTTP,
// callers may override these at the transport edge.
var defaultGRPC = map[codestr.Str]codes.Code{
	"internal":    codes.Internal,
	"unavailable": codes.Unavailable,
	"timeout":     codes.DeadlineExceeded,
	"canceled":    codes.Canceled,

	"invalid":     codes.InvalidArgument,
	"unsupported": codes.InvalidArgument,
	"expired":     codes.FailedPrecondition,

	"not_found": codes.NotFound,
	"gone":      codes.NotFound, // gRPC has no 410; NotFound is the closest practical choice.

	"already_exists":      codes.AlreadyExists,
	"conflict":            codes.Aborted,
	"precondition_failed": codes.FailedPrecondition,

	"unauthenticated":   codes.Unauthenticated,
	"permission_denied": codes.PermissionDenied,

	"rate_limited":   codes.ResourceExhausted,
	"quota_exceeded": codes.ResourceExhausted,
}
