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

package twirp

import (
	"context"
	"errors"
	"fmt"

	"github.com/vermuz/twirp/code"
)

// Error is the canonical rich error type of the runtime.
//
// It carries:
//   - Code: the wire classification, one member of the closed set in
//     package code (required);
//   - Msg: human-oriented description (what went wrong);
//   - Meta: string key/value payload exposed to API clients;
//   - Cause: wrapped underlying error for debugging / unwrapping.
//
// The wire representation is always {code, msg, meta}; Cause stays local.
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared and modified in a functional style.
type Error struct {
	// Code is the primary classification of the error, e.g.
	// "invalid_argument", "not_found", "internal". Must be a member of
	// the closed set declared in the code package.
	Code code.Code

	// Msg is a human-readable explanation. This is what ends up in the
	// "msg" field of the wire error body.
	Msg string

	// Meta is an optional, shallow map of extra strings. Use this to expose
	// structured error data to API clients (argument names, limits, resource
	// names, etc.). The map is treated as immutable: WithMeta/WithMetaMap
	// always copy it.
	Meta map[string]string

	// Cause holds the wrapped underlying error (if any). This is used for
	// errors.Is / errors.As and for local diagnostics such as logging.
	// It is NEVER part of the wire representation.
	Cause error
}

// E is a convenience constructor for Error.
//
// Usage:
//
//	return twirp.E(code.InvalidArgument, "inches must be at least 1",
//	    twirp.WithMetaOption("argument", "inches"),
//	)
//
// It always returns a *new* Error and applies all provided options in order.
func E(c code.Code, msg string, opts ...Option) *Error {
	e := &Error{Code: c, Msg: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<code>: <message>
//
// This makes the error both human- and machine-scannable in logs.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// MetaValue returns the metadata value for the given key, or "" when the
// key is absent. Convenient for the conventional keys ("argument", the
// intermediary keys set by the client) without nil-map checks.
func (e *Error) MetaValue(key string) string {
	if e == nil {
		return ""
	}
	return e.Meta[key]
}

// WithMsg returns a shallow copy of e with a replaced human message.
// Useful when you want to keep the Code/Meta but present the message
// in a different context.
func (e *Error) WithMsg(msg string) *Error {
	cp := *e
	cp.Msg = msg
	return &cp
}

// WithMeta returns a shallow copy of e with one extra key/value in Meta.
//
// The method always copies the map to preserve immutability. This prevents
// surprising modifications across goroutines or shared error values.
func (e *Error) WithMeta(k, v string) *Error {
	cp := *e
	// No meta yet — create a new single-entry map.
	if len(cp.Meta) == 0 {
		cp.Meta = map[string]string{k: v}
		return &cp
	}
	// Copy existing meta and add one more.
	m := make(map[string]string, len(cp.Meta)+1)
	for k0, v0 := range cp.Meta {
		m[k0] = v0
	}
	m[k] = v
	cp.Meta = m
	return &cp
}

// WithMetaMap returns a shallow copy of e with all provided kv merged into
// Meta.
//
// If the Error already has Meta, both maps are copied and merged, with kv
// taking precedence on key conflicts.
func (e *Error) WithMetaMap(kv map[string]string) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	// No existing meta — just copy kv.
	if len(cp.Meta) == 0 {
		m := make(map[string]string, len(kv))
		for k, v := range kv {
			m[k] = v
		}
		cp.Meta = m
		return &cp
	}
	// Merge existing + new.
	m := make(map[string]string, len(cp.Meta)+len(kv))
	for k0, v0 := range cp.Meta {
		m[k0] = v0
	}
	for k, v := range kv {
		m[k] = v
	}
	cp.Meta = m
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause
// attached. If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

// WrapError classifies an underlying error under the given code while
// preserving it as the cause. The cause stays available for local
// diagnostics (logging, errors.Is) but never reaches the wire.
func WrapError(err error, c code.Code, msg string) *Error {
	return E(c, msg, WithCauseOption(err))
}

// InternalError constructs an error with code.Internal.
func InternalError(msg string) *Error {
	return E(code.Internal, msg)
}

// InternalErrorWith reclassifies an arbitrary error as code.Internal,
// keeping it as the cause. This is the funnel for panics, encode failures
// and any other non-Error failure the runtime refuses to propagate raw.
func InternalErrorWith(err error) *Error {
	return WrapError(err, code.Internal, err.Error())
}

// NotFoundError constructs an error with code.NotFound.
func NotFoundError(msg string) *Error {
	return E(code.NotFound, msg)
}

// UnimplementedError constructs an error with code.Unimplemented.
func UnimplementedError(msg string) *Error {
	return E(code.Unimplemented, msg)
}

// InvalidArgumentError constructs an error with code.InvalidArgument and
// records which argument was at fault under the conventional "argument"
// metadata key. The message reads "<argument> <validationMsg>".
func InvalidArgumentError(argument, validationMsg string) *Error {
	return E(code.InvalidArgument, argument+" "+validationMsg,
		WithMetaOption("argument", argument),
	)
}

// RequiredArgumentError is the InvalidArgumentError for a missing required
// argument.
func RequiredArgumentError(argument string) *Error {
	return InvalidArgumentError(argument, "is required")
}

// BadRouteError constructs an error with code.BadRoute and records the
// unroutable request under the conventional "twirp_invalid_route" metadata
// key as "<method> <url>".
func BadRouteError(msg, method, url string) *Error {
	return E(code.BadRoute, msg,
		WithMetaOption("twirp_invalid_route", method+" "+url),
	)
}

// FromError classifies an arbitrary error into an *Error:
//
//   - a *Error passes through unchanged (service logic controls its own
//     code; the runtime never reclassifies it);
//   - context.Canceled and context.DeadlineExceeded become the matching
//     cancellation codes;
//   - everything else is reclassified as Internal with the original error
//     kept as the cause.
//
// FromError(nil) returns nil.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var twerr *Error
	if errors.As(err, &twerr) {
		return twerr
	}
	if errors.Is(err, context.Canceled) {
		return WrapError(err, code.Canceled, "request canceled")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return WrapError(err, code.DeadlineExceeded, "request deadline exceeded")
	}
	return InternalErrorWith(err)
}
