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
	"net/http"

	"github.com/vermuz/twirp/internal/ctxsetters"
)

type contextKey int

const requestHeaderKey contextKey = 1

// reservedHeaders are managed by the runtime itself; callers may not
// override them through WithHTTPRequestHeaders.
var reservedHeaders = []string{"Accept", "Content-Type"}

// MethodName extracts the name of the method being handled from the
// request context. The server records it before firing RequestRouted;
// earlier stages see ("", false).
func MethodName(ctx context.Context) (string, bool) {
	return ctxsetters.MethodName(ctx)
}

// ServiceName extracts the name of the service handling the request,
// without its package prefix. Available from RequestRouted on.
func ServiceName(ctx context.Context) (string, bool) {
	return ctxsetters.ServiceName(ctx)
}

// PackageName extracts the proto package of the service handling the
// request. Available from RequestRouted on.
func PackageName(ctx context.Context) (string, bool) {
	return ctxsetters.PackageName(ctx)
}

// StatusCode extracts the HTTP status written for the request. It is only
// known late in the lifecycle: ResponseSent and Error hooks see it, earlier
// stages see (0, false).
func StatusCode(ctx context.Context) (int, bool) {
	return ctxsetters.StatusCode(ctx)
}

// WithHTTPRequestHeaders stores an http.Header in the context. A client
// invoker sends those headers with the outbound request. This is how
// callers attach cross-cutting headers (auth tokens, trace ids) to a call
// without a custom transport.
//
// Headers managed by the runtime (Accept, Content-Type) are rejected. The
// header map is copied, so later mutations by the caller do not leak into
// the call.
func WithHTTPRequestHeaders(ctx context.Context, h http.Header) (context.Context, error) {
	for _, reserved := range reservedHeaders {
		if _, ok := h[reserved]; ok {
			return nil, fmt.Errorf("twirp: header %q is reserved and managed by the runtime", reserved)
		}
	}
	return context.WithValue(ctx, requestHeaderKey, h.Clone()), nil
}

// HTTPRequestHeaders returns a copy of the outbound headers stored with
// WithHTTPRequestHeaders, or (nil, false) when none were set.
func HTTPRequestHeaders(ctx context.Context) (http.Header, bool) {
	h, ok := ctx.Value(requestHeaderKey).(http.Header)
	if !ok {
		return nil, false
	}
	return h.Clone(), true
}

// SetHTTPResponseHeader sets a header on the HTTP response of the request
// being handled. It only has an effect when called from service methods or
// hooks running under a server, before the response is written; elsewhere
// it is a no-op.
//
// Content-Type is owned by the codec negotiation and cannot be set.
func SetHTTPResponseHeader(ctx context.Context, key, value string) error {
	if http.CanonicalHeaderKey(key) == "Content-Type" {
		return errors.New("twirp: header Content-Type is reserved and managed by the runtime")
	}
	if w, ok := ctxsetters.ResponseWriter(ctx); ok {
		w.Header().Set(key, value)
	}
	return nil
}
