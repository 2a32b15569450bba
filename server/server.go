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

package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/vermuz/twirp"
	"github.com/vermuz/twirp/code"
	"github.com/vermuz/twirp/codec"
	"github.com/vermuz/twirp/descriptor"
	"github.com/vermuz/twirp/internal/ctxsetters"
	"github.com/vermuz/twirp/wire"
)

// DefaultPathPrefix is the URL prefix requests are served under when no
// WithPathPrefix option is given.
const DefaultPathPrefix = "/twirp"

// ContextSource injects transport-level data into the request context
// before the method is invoked. Typical use is authentication: read a
// header, resolve the caller, derive a context carrying the identity.
// Returning an error terminates the request with that error (classified
// via twirp.FromError, so a *twirp.Error keeps its code).
type ContextSource func(ctx context.Context, header http.Header) (context.Context, error)

// Server routes HTTP requests to the methods of one service. It
// implements http.Handler and is immutable after New.
type Server struct {
	service      *descriptor.Service
	hooks        *twirp.ServerHooks
	prefix       string
	ctxSource    ContextSource
	defaultCodec codec.Codec
}

var _ http.Handler = (*Server)(nil)

// New builds a Server for the given service. A nil service is a wiring
// bug and panics, like registering a nil handler on a mux.
func New(service *descriptor.Service, opts ...Option) *Server {
	if service == nil {
		panic("server: nil service descriptor")
	}
	s := &Server{
		service: service,
		prefix:  DefaultPathPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ServiceFullName returns the package-qualified name of the served
// service, e.g. "example.Haberdasher".
func (s *Server) ServiceFullName() string { return s.service.FullName() }

// PathPrefix returns the prefix all of the server's routes share,
// "{prefix}/{package.Service}/", suitable for mounting on a mux:
//
//	mux.Handle(srv.PathPrefix(), srv)
func (s *Server) PathPrefix() string {
	return s.prefix + "/" + s.service.FullName() + "/"
}

// ServeHTTP drives one request through the pipeline:
//
//	received -> routed -> codec -> decode -> invoke -> encode -> sent
//
// with any failure diverting into writeError, which renders the
// structured error body and fires the Error hook exactly once.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx = ctxsetters.WithPackageName(ctx, s.service.Package())
	ctx = ctxsetters.WithServiceName(ctx, s.service.Name())
	ctx = ctxsetters.WithResponseWriter(ctx, w)

	// c stays nil until the codec is resolved; writeError then falls back
	// to a JSON error body.
	var c codec.Codec

	ctx, err := s.callRequestReceived(ctx)
	if err != nil {
		s.writeError(ctx, w, c, twirp.FromError(err))
		return
	}

	method, twerr := s.route(r)
	if twerr != nil {
		s.writeError(ctx, w, c, twerr)
		return
	}
	ctx = ctxsetters.WithMethodName(ctx, method.Name)

	ctx, err = s.callRequestRouted(ctx)
	if err != nil {
		s.writeError(ctx, w, c, twirp.FromError(err))
		return
	}

	c, twerr = s.selectCodec(r)
	if twerr != nil {
		s.writeError(ctx, w, nil, twerr)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(ctx, w, c, bodyReadError(ctx, err))
		return
	}

	reqValue, err := method.Decode(c, body)
	if err != nil {
		// Undecodable input never reaches service logic.
		s.writeError(ctx, w, c, twirp.WrapError(err, code.Malformed, "the request could not be decoded"))
		return
	}

	if s.ctxSource != nil {
		ctx, err = s.ctxSource(ctx, r.Header)
		if err != nil {
			s.writeError(ctx, w, c, twirp.FromError(err))
			return
		}
	}

	respValue, err := s.invoke(ctx, method, reqValue)
	if err != nil {
		// Service errors pass through FromError unchanged; the runtime
		// never reclassifies them.
		s.writeError(ctx, w, c, twirp.FromError(err))
		return
	}

	// Cancellation observed after the method ran: abandon the response
	// rather than write bytes nobody is waiting for.
	if ctxErr := ctx.Err(); ctxErr != nil {
		s.writeError(ctx, w, c, twirp.FromError(ctxErr))
		return
	}

	respBody, err := method.Encode(c, respValue)
	if err != nil {
		s.writeError(ctx, w, c, twirp.WrapError(err, code.Internal, "failed to encode response"))
		return
	}

	ctx, err = s.callResponsePrepared(ctx)
	if err != nil {
		s.writeError(ctx, w, c, twirp.FromError(err))
		return
	}
	ctx = ctxsetters.WithStatusCode(ctx, http.StatusOK)

	w.Header().Set("Content-Type", c.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(len(respBody)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(respBody); err != nil {
		// The status is already on the wire and cannot change; the
		// failure is surfaced through the Error hook only.
		s.callError(ctx, twirp.WrapError(err, code.Internal, "failed to write response"))
		return
	}
	s.callResponseSent(ctx)
}

// route resolves the target method from the request line. Matching is
// byte-exact against "{prefix}/{package.Service}/{Method}" with no
// normalization, and only POST is routable.
func (s *Server) route(r *http.Request) (*descriptor.Method, *twirp.Error) {
	if r.Method != http.MethodPost {
		msg := fmt.Sprintf("unsupported method %q (only POST is allowed)", r.Method)
		return nil, twirp.BadRouteError(msg, r.Method, r.URL.Path)
	}

	base := s.PathPrefix()
	if !strings.HasPrefix(r.URL.Path, base) {
		msg := fmt.Sprintf("no handler for path %q", r.URL.Path)
		return nil, twirp.BadRouteError(msg, r.Method, r.URL.Path)
	}

	name := r.URL.Path[len(base):]
	method, ok := s.service.Method(name)
	if !ok {
		msg := fmt.Sprintf("no handler for path %q", r.URL.Path)
		return nil, twirp.BadRouteError(msg, r.Method, r.URL.Path)
	}
	return method, nil
}

// selectCodec picks the request's codec from its Content-Type header. An
// absent header is only accepted when the server was explicitly
// configured with a default codec.
func (s *Server) selectCodec(r *http.Request) (codec.Codec, *twirp.Error) {
	header := r.Header.Get("Content-Type")
	if header == "" && s.defaultCodec != nil {
		return s.defaultCodec, nil
	}
	c, twerr := codec.ForContentType(header)
	if twerr != nil {
		return nil, twerr.WithMeta("twirp_invalid_route", r.Method+" "+r.URL.Path)
	}
	return c, nil
}

// invoke runs the bound method, converting panics into internal errors so
// the wire contract survives a broken handler.
func (s *Server) invoke(ctx context.Context, m *descriptor.Method, req any) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = twirp.E(code.Internal, "internal service panic",
				twirp.WithCauseOption(fmt.Errorf("panic: %v", r)),
			)
		}
	}()
	return m.Invoke(ctx, req)
}

// writeError renders twerr as the response. Every failing request funnels
// through here exactly once: the status is fixed from the code table, the
// Error hook fires, then the structured body is written in the negotiated
// encoding (JSON when c is nil).
func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, c codec.Codec, twerr *twirp.Error) {
	status := code.HTTPStatus(twerr.Code)
	ctx = ctxsetters.WithStatusCode(ctx, status)
	s.callError(ctx, twerr)

	body, contentType := wire.MarshalError(c, twerr)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// bodyReadError classifies a request body read failure: cancellation if
// the context is done, malformed otherwise.
func bodyReadError(ctx context.Context, err error) *twirp.Error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return twirp.FromError(ctxErr)
	}
	return twirp.WrapError(err, code.Malformed, "failed to read request body")
}
