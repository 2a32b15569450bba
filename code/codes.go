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

// Cancellation / deadline codes
//
// These codes describe requests that ended because time ran out or the
// caller gave up, not because anything was wrong with the request itself.
const (
	// Canceled indicates the operation was cancelled, typically by the
	// caller closing the connection or cancelling its request context.
	// The runtime produces this itself when it observes cancellation;
	// service logic rarely needs to.
	//
	// Maps to an HTTP 408.
	Canceled Code = "canceled"

	// DeadlineExceeded means the operation expired before completion.
	// For operations that change state this may be returned even if the
	// operation completed successfully: the response simply arrived too
	// late for anyone to see it.
	//
	// Maps to an HTTP 408.
	DeadlineExceeded Code = "deadline_exceeded"
)

// Request validation codes
//
// These codes describe requests the server understood enough to reject:
// the payload arrived and was readable, but its content is not acceptable.
const (
	// InvalidArgument indicates the client specified an invalid argument.
	// Use this for semantic validation of otherwise well-formed input
	// (a negative count, an out-of-policy name). The offending argument
	// name is conventionally carried in the "argument" metadata key.
	//
	// Maps to an HTTP 400.
	InvalidArgument Code = "invalid_argument"

	// Malformed indicates the client sent a message the server could not
	// decode: truncated bytes, invalid JSON, a body that does not match
	// the declared request shape. Different from InvalidArgument, which
	// is about decoded values failing semantic checks.
	//
	// Maps to an HTTP 400.
	Malformed Code = "malformed"

	// OutOfRange means the operation was attempted past the valid range,
	// for example seeking or reading past end of a paginated collection.
	// Unlike InvalidArgument, this indicates a problem that may be fixed
	// if the system state changes.
	//
	// Maps to an HTTP 400.
	OutOfRange Code = "out_of_range"
)

// Routing / resource codes
//
// These codes describe lookups that failed: of the requested procedure
// itself, or of the entity the procedure was asked about.
const (
	// NotFound means a requested entity was not found. This is a service
	// logic code: the routing worked, the method ran, and the thing the
	// caller asked about does not exist.
	//
	// Maps to an HTTP 404.
	NotFound Code = "not_found"

	// BadRoute means the requested URL path was not routable to a method:
	// wrong path scheme, unknown service or method name, a non-POST verb,
	// or an unrecognized content type. Clients should not retry; generated
	// clients do not produce this request shape.
	//
	// Maps to an HTTP 404.
	BadRoute Code = "bad_route"

	// AlreadyExists means an attempt to create an entity failed because
	// one with the same identity already exists.
	//
	// Maps to an HTTP 409.
	AlreadyExists Code = "already_exists"
)

// Authentication / authorization codes
//
// Two distinct failures: "we do not know who you are" versus "we know who
// you are and the answer is no". HTTP keeps them apart as 401 vs 403, gRPC
// as Unauthenticated vs PermissionDenied; so do we.
const (
	// Unauthenticated indicates the request does not have valid
	// authentication credentials for the operation.
	//
	// Maps to an HTTP 401.
	Unauthenticated Code = "unauthenticated"

	// PermissionDenied indicates the caller is authenticated but does not
	// have permission to execute the specified operation. It must not be
	// used for exhausted resources (use ResourceExhausted) or for missing
	// credentials (use Unauthenticated).
	//
	// Maps to an HTTP 403.
	PermissionDenied Code = "permission_denied"
)

// Load / precondition / concurrency codes
//
// These codes describe operations that failed against the current state of
// the system rather than against the request's own content.
const (
	// ResourceExhausted indicates some resource has been exhausted or the
	// caller has been rate-limited: a per-user quota, a token bucket, or
	// the whole file system being out of space.
	//
	// Maps to an HTTP 429.
	ResourceExhausted Code = "resource_exhausted"

	// FailedPrecondition indicates the operation was rejected because the
	// system is not in a state required for its execution, for example
	// deleting a non-empty directory. The client should not retry until
	// the system state has been explicitly fixed.
	//
	// Maps to an HTTP 412.
	FailedPrecondition Code = "failed_precondition"

	// Aborted indicates the operation was aborted because of a concurrency
	// issue such as a sequencer check failure or transaction conflict.
	// Unlike FailedPrecondition, retrying at a higher level may succeed.
	//
	// Maps to an HTTP 409.
	Aborted Code = "aborted"
)

// Server-side codes
//
// These codes describe failures on the serving side. Clients may generate
// Internal as well, when a response violates the protocol contract.
const (
	// Unimplemented indicates the operation is not implemented or not
	// supported/enabled in this service.
	//
	// Maps to an HTTP 501.
	Unimplemented Code = "unimplemented"

	// Internal indicates a broken invariant: something the underlying
	// system expected to hold did not. This is the reclassification target
	// for panics, encode failures and other unhandled errors; the original
	// cause is retained locally and never exposed on the wire.
	//
	// Maps to an HTTP 500.
	Internal Code = "internal"

	// Unavailable indicates the service is currently unavailable. This is
	// most likely a transient condition and may be corrected by retrying
	// with a backoff.
	//
	// Maps to an HTTP 503.
	Unavailable Code = "unavailable"

	// DataLoss indicates unrecoverable data loss or corruption.
	//
	// Maps to an HTTP 500.
	DataLoss Code = "dataloss"

	// Unknown is for errors that carry no better classification, for
	// example values returned from another address space that this runtime
	// cannot interpret. Clients also use it for non-2xx responses whose
	// intermediary status suggests nothing more specific.
	//
	// Maps to an HTTP 500.
	Unknown Code = "unknown"
)

// all enumerates the closed taxonomy in declaration order. It is the single
// source of truth for membership; the known set and the transport tables in
// status.go must stay aligned with it.
var all = []Code{
	Canceled,
	DeadlineExceeded,
	InvalidArgument,
	Malformed,
	OutOfRange,
	NotFound,
	BadRoute,
	AlreadyExists,
	Unauthenticated,
	PermissionDenied,
	ResourceExhausted,
	FailedPrecondition,
	Aborted,
	Unimplemented,
	Internal,
	Unavailable,
	DataLoss,
	Unknown,
}

// known is the membership index backing Validate.
var known = func() map[Code]struct{} {
	m := make(map[Code]struct{}, len(all))
	for _, c := range all {
		m[c] = struct{}{}
	}
	return m
}()
