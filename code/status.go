/*
   Copyright 2026 The Twirp Authors

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

package code

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// httpStatus is the fixed HTTP mapping for the closed code taxonomy.
// Unlike conventional REST mappers this table is not a default to be
// overridden: the wire protocol pins each code to exactly one status, so
// servers and clients built by different parties agree on the translation.
var httpStatus = map[Code]int{
	// Success marker. Not a wire error code.
	NoError: http.StatusOK,

	// Time / cancellation.
	Canceled:         http.StatusRequestTimeout, // Caller gave up or closed the connection.
	DeadlineExceeded: http.StatusRequestTimeout, // Time budget exceeded before completion.

	// 4xx — the request itself is not acceptable.
	InvalidArgument: http.StatusBadRequest, // Decoded fine, failed semantic validation.
	Malformed:       http.StatusBadRequest, // Could not be decoded at all.
	OutOfRange:      http.StatusBadRequest, // Past the valid range for the current state.

	// Lookups.
	NotFound: http.StatusNotFound, // Entity does not exist (or is not visible to the caller).
	BadRoute: http.StatusNotFound, // No such procedure at this path; do not retry.

	// Conflicts and concurrency.
	AlreadyExists:      http.StatusConflict,           // Resource creation clash — it already exists.
	Aborted:            http.StatusConflict,           // Concurrency conflict; retrying may succeed.
	FailedPrecondition: http.StatusPreconditionFailed, // System state does not allow the operation.

	// AuthN / AuthZ.
	Unauthenticated:  http.StatusUnauthorized, // No valid credentials — caller must authenticate.
	PermissionDenied: http.StatusForbidden,    // Caller is authenticated but not allowed.

	// Rate / quotas.
	ResourceExhausted: http.StatusTooManyRequests, // Quota or rate limit hit; back off.

	// 5xx — server-side failures.
	Unimplemented: http.StatusNotImplemented,      // Procedure exists in the contract but not in this server.
	Internal:      http.StatusInternalServerError, // Generic internal failure; do not expose internal details.
	Unavailable:   http.StatusServiceUnavailable,  // Transient outage; retry with backoff.
	DataLoss:      http.StatusInternalServerError, // Unrecoverable data loss or corruption.
	Unknown:       http.StatusInternalServerError, // No better classification available.
}

// grpcStatus is the fixed canonical gRPC mapping for the closed code
// taxonomy. The taxonomy deliberately shadows the canonical gRPC code
// space, so most entries are one-to-one; the two runtime-specific codes
// (Malformed, BadRoute) borrow their nearest canonical neighbor.
var grpcStatus = map[Code]codes.Code{
	// Success marker. Not a wire error code.
	NoError: codes.OK,

	// Time / cancellation.
	Canceled:         codes.Canceled,
	DeadlineExceeded: codes.DeadlineExceeded,

	// Input.
	InvalidArgument: codes.InvalidArgument,
	Malformed:       codes.InvalidArgument, // gRPC has no separate undecodable-body code.
	OutOfRange:      codes.OutOfRange,

	// Lookups.
	NotFound: codes.NotFound,
	BadRoute: codes.NotFound, // Unroutable procedure; NotFound is the closest practical choice.

	// Conflicts and concurrency.
	AlreadyExists:      codes.AlreadyExists,
	Aborted:            codes.Aborted,
	FailedPrecondition: codes.FailedPrecondition,

	// AuthN / AuthZ.
	Unauthenticated:  codes.Unauthenticated,
	PermissionDenied: codes.PermissionDenied,

	// Rate / quotas.
	ResourceExhausted: codes.ResourceExhausted,

	// Server-side.
	Unimplemented: codes.Unimplemented,
	Internal:      codes.Internal,
	Unavailable:   codes.Unavailable,
	DataLoss:      codes.DataLoss,
	Unknown:       codes.Unknown,
}

// HTTPStatus returns the HTTP status for c.
//
// The function is total: a value outside the closed taxonomy falls back to
// 500 rather than failing, so a transport edge can always write a response.
// NoError maps to 200.
func HTTPStatus(c Code) int {
	if s, ok := httpStatus[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// GRPCStatus returns the canonical gRPC code for c.
//
// Total in the same way as HTTPStatus; values outside the taxonomy fall
// back to codes.Internal. NoError maps to codes.OK.
func GRPCStatus(c Code) codes.Code {
	if g, ok := grpcStatus[c]; ok {
		return g
	}
	return codes.Internal
}
