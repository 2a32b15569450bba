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
	"net/http"
)

// ServerHooks is a set of optional callbacks observing one request's
// lifecycle on the server. Each slot may be nil, in which case it is
// skipped.
//
// The fixed firing order on the success path is:
//
//	RequestReceived -> RequestRouted -> (method invocation) ->
//	ResponsePrepared -> ResponseSent
//
// On any failure the Error slot preempts ResponsePrepared/ResponseSent and
// fires exactly once, whatever stage failed. Hooks receive the request
// context and, for the slots that can steer the request, return a
// (possibly derived) context that replaces it for all later stages.
//
// Hooks run on the request's goroutine. A hook that touches process-wide
// state is responsible for its own synchronization.
type ServerHooks struct {
	// RequestReceived is called as soon as a request enters the handler,
	// before routing. Returning a non-nil error terminates the request
	// with that error (classified via FromError).
	RequestReceived func(context.Context) (context.Context, error)

	// RequestRouted is called after the method has been resolved, when
	// MethodName/ServiceName are available on the context. Returning a
	// non-nil error terminates the request with that error.
	RequestRouted func(context.Context) (context.Context, error)

	// ResponsePrepared is called on the success path once the response has
	// been encoded, immediately before the status and body are written.
	ResponsePrepared func(context.Context) context.Context

	// ResponseSent is called on the success path after the response has
	// been written. StatusCode is available on the context. This is the
	// last hook of a successful request.
	ResponseSent func(context.Context)

	// Error is called once for every failing request, at the point of
	// failure. The error's code has already been fixed; the hook may
	// derive a new context (for logging correlation) but cannot change
	// the response.
	Error func(context.Context, *Error) context.Context
}

// ChainHooks composes multiple hook sets into one. For every slot, the
// populated callbacks of each set fire in the order the sets were given.
// A RequestReceived/RequestRouted error short-circuits the remaining
// callbacks of that slot and terminates the request with that error.
//
// ChainHooks(nil) and ChainHooks() return nil; a single set is returned
// as-is.
func ChainHooks(hooks ...*ServerHooks) *ServerHooks {
	if len(hooks) == 0 {
		return nil
	}
	if len(hooks) == 1 {
		return hooks[0]
	}
	return &ServerHooks{
		RequestReceived: func(ctx context.Context) (context.Context, error) {
			var err error
			for _, h := range hooks {
				if h == nil || h.RequestReceived == nil {
					continue
				}
				ctx, err = h.RequestReceived(ctx)
				if err != nil {
					return ctx, err
				}
			}
			return ctx, nil
		},
		RequestRouted: func(ctx context.Context) (context.Context, error) {
			var err error
			for _, h := range hooks {
				if h == nil || h.RequestRouted == nil {
					continue
				}
				ctx, err = h.RequestRouted(ctx)
				if err != nil {
					return ctx, err
				}
			}
			return ctx, nil
		},
		ResponsePrepared: func(ctx context.Context) context.Context {
			for _, h := range hooks {
				if h == nil || h.ResponsePrepared == nil {
					continue
				}
				ctx = h.ResponsePrepared(ctx)
			}
			return ctx
		},
		ResponseSent: func(ctx context.Context) {
			for _, h := range hooks {
				if h == nil || h.ResponseSent == nil {
					continue
				}
				h.ResponseSent(ctx)
			}
		},
		Error: func(ctx context.Context, twerr *Error) context.Context {
			for _, h := range hooks {
				if h == nil || h.Error == nil {
					continue
				}
				ctx = h.Error(ctx, twerr)
			}
			return ctx
		},
	}
}

// ClientHooks is the outbound mirror of ServerHooks: optional callbacks
// observing one call's lifecycle on the client. Each slot may be nil.
type ClientHooks struct {
	// RequestPrepared is called after the outbound http.Request has been
	// built, before it is sent. The hook may modify the request in place
	// (headers, tracing). Returning a non-nil error aborts the call.
	RequestPrepared func(context.Context, *http.Request) (context.Context, error)

	// ResponseReceived is called after a response arrived and was decoded
	// successfully.
	ResponseReceived func(context.Context)

	// Error is called when the call fails, with the reconstructed or
	// locally produced error. Fired at most once per call.
	Error func(context.Context, *Error)
}

// ChainClientHooks composes multiple client hook sets into one, with the
// same ordering and short-circuit rules as ChainHooks.
func ChainClientHooks(hooks ...*ClientHooks) *ClientHooks {
	if len(hooks) == 0 {
		return nil
	}
	if len(hooks) == 1 {
		return hooks[0]
	}
	return &ClientHooks{
		RequestPrepared: func(ctx context.Context, req *http.Request) (context.Context, error) {
			var err error
			for _, h := range hooks {
				if h == nil || h.RequestPrepared == nil {
					continue
				}
				ctx, err = h.RequestPrepared(ctx, req)
				if err != nil {
					return ctx, err
				}
			}
			return ctx, nil
		},
		ResponseReceived: func(ctx context.Context) {
			for _, h := range hooks {
				if h == nil || h.ResponseReceived == nil {
					continue
				}
				h.ResponseReceived(ctx)
			}
		},
		Error: func(ctx context.Context, twerr *Error) {
			for _, h := range hooks {
				if h == nil || h.Error == nil {
					continue
				}
				h.Error(ctx, twerr)
			}
		},
	}
}
