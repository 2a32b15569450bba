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

package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/vermuz/twirp"
	"github.com/vermuz/twirp/code"
	"github.com/vermuz/twirp/codec"
	"github.com/vermuz/twirp/internal/ctxsetters"
	"github.com/vermuz/twirp/wire"
)

// DefaultPathPrefix is the URL prefix calls are issued under when no
// WithPathPrefix option is given. It matches the server's default mount.
const DefaultPathPrefix = "/twirp"

// HTTPClient is the transport calls are performed with. *http.Client
// implements it; callers substitute their own for custom timeouts,
// instrumentation or tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client invokes the methods of one remote service: the outbound mirror
// of the server. Each call encodes the request with the client's codec,
// POSTs it to "{prefix}/{package.Service}/{Method}", and decodes either
// the response value or the structured error the server produced.
//
// A Client is immutable after New and safe for concurrent use.
type Client struct {
	baseURL string
	pkg     string
	name    string
	full    string
	codec   codec.Codec
	http    HTTPClient
	hooks   *twirp.ClientHooks
	prefix  string
}

// New builds a Client for the service with the given package-qualified
// wire name ("example.Haberdasher") reachable at baseURL, speaking the
// given encoding. A nil codec or an empty service name is a wiring bug
// and panics.
func New(baseURL, service string, c codec.Codec, opts ...Option) *Client {
	if c == nil {
		panic("client: nil codec")
	}
	if service == "" {
		panic("client: empty service name")
	}
	pkg, name := splitServiceName(service)
	cl := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		pkg:     pkg,
		name:    name,
		full:    service,
		codec:   c,
		http:    &http.Client{},
		prefix:  DefaultPathPrefix,
	}
	for _, opt := range opts {
		opt(cl)
	}
	return cl
}

// NewProtobuf builds a Client speaking the binary protobuf encoding.
func NewProtobuf(baseURL, service string, opts ...Option) *Client {
	return New(baseURL, service, codec.Proto, opts...)
}

// NewJSON builds a Client speaking the JSON encoding.
func NewJSON(baseURL, service string, opts ...Option) *Client {
	return New(baseURL, service, codec.JSON, opts...)
}

// ServiceFullName returns the package-qualified name of the called
// service, e.g. "example.Haberdasher".
func (c *Client) ServiceFullName() string { return c.full }

// Call invokes the named method: in is encoded with the client's codec,
// the HTTP round trip runs, and on a 2xx response the body is decoded
// into out. A non-2xx response is reconstructed into the *twirp.Error
// the server produced, with the same code, message and metadata.
//
// Responses that are not structured wire errors did not come from a
// runtime server — a proxy or load balancer answered instead — and are
// classified by their HTTP status (see errorFromIntermediary).
//
// Outbound headers stored with twirp.WithHTTPRequestHeaders are sent
// with the request. Call never retries; retry policy belongs to the
// caller.
func (c *Client) Call(ctx context.Context, method string, in, out any) error {
	ctx = ctxsetters.WithPackageName(ctx, c.pkg)
	ctx = ctxsetters.WithServiceName(ctx, c.name)
	ctx = ctxsetters.WithMethodName(ctx, method)

	// The unexported variant returns a concrete *twirp.Error; converting
	// here keeps a nil result from becoming a non-nil error interface.
	if twerr := c.call(ctx, method, in, out); twerr != nil {
		return twerr
	}
	return nil
}

func (c *Client) call(ctx context.Context, method string, in, out any) *twirp.Error {
	reqBody, err := c.codec.Marshal(in)
	if err != nil {
		return c.fail(ctx, twirp.WrapError(err, code.Internal, "failed to marshal request"))
	}

	req, err := c.newRequest(ctx, method, reqBody)
	if err != nil {
		return c.fail(ctx, twirp.FromError(err))
	}

	ctx, err = c.callRequestPrepared(ctx, req)
	if err != nil {
		return c.fail(ctx, twirp.FromError(err))
	}
	req = req.WithContext(ctx)

	resp, err := c.http.Do(req)
	if err != nil {
		// Cancellation reports its own code, not the transport failure
		// it caused.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return c.fail(ctx, twirp.FromError(ctxErr))
		}
		return c.fail(ctx, twirp.WrapError(err, code.Unavailable, "failed to reach service"))
	}
	defer drainAndClose(resp.Body)

	ctx = ctxsetters.WithStatusCode(ctx, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.fail(ctx, errorFromResponse(resp))
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(ctx, twirp.WrapError(err, code.Internal, "failed to read response body"))
	}
	if err := c.codec.Unmarshal(respBody, out); err != nil {
		// The server broke the protocol contract: a 2xx body must be the
		// declared response shape in the negotiated encoding.
		return c.fail(ctx, twirp.WrapError(err, code.Internal, "failed to unmarshal response body"))
	}

	c.callResponseReceived(ctx)
	return nil
}

// newRequest builds the outbound POST, merging in the caller's headers
// from the context before the runtime-owned ones are fixed.
func (c *Client) newRequest(ctx context.Context, method string, body []byte) (*http.Request, error) {
	url := c.baseURL + c.prefix + "/" + c.full + "/" + method
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("client: could not build request for %q: %w", url, err)
	}
	if headers, ok := twirp.HTTPRequestHeaders(ctx); ok {
		for k, vs := range headers {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}
	}
	contentType := c.codec.ContentType()
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", contentType)
	return req, nil
}

func (c *Client) callRequestPrepared(ctx context.Context, req *http.Request) (context.Context, error) {
	if c.hooks == nil || c.hooks.RequestPrepared == nil {
		return ctx, nil
	}
	return c.hooks.RequestPrepared(ctx, req)
}

func (c *Client) callResponseReceived(ctx context.Context) {
	if c.hooks == nil || c.hooks.ResponseReceived == nil {
		return
	}
	c.hooks.ResponseReceived(ctx)
}

// fail fires the Error hook and hands the error back; every failing call
// funnels through here exactly once.
func (c *Client) fail(ctx context.Context, twerr *twirp.Error) *twirp.Error {
	if c.hooks != nil && c.hooks.Error != nil {
		c.hooks.Error(ctx, twerr)
	}
	return twerr
}

// errorFromResponse reconstructs the error of a non-2xx response.
func errorFromResponse(resp *http.Response) *twirp.Error {
	status := resp.StatusCode

	if isRedirect(status) {
		// Calls are POST-only and never redirected by a server; an
		// intermediary answered. The Location header is the useful part.
		location := resp.Header.Get("Location")
		msg := fmt.Sprintf("unexpected HTTP status %d %q received, Location=%q",
			status, http.StatusText(status), location)
		return errorFromIntermediary(status, msg).WithMeta("location", location)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return twirp.WrapError(err, code.Internal, "failed to read error response body")
	}

	twerr, err := wire.UnmarshalError(resp.Header.Get("Content-Type"), body)
	if err != nil {
		msg := fmt.Sprintf("error from intermediary with HTTP status %d %q",
			status, http.StatusText(status))
		return errorFromIntermediary(status, msg).WithMeta("body", string(body))
	}
	return twerr
}

// errorFromIntermediary classifies a response whose body is not a
// structured wire error. The mapping follows what the common middleboxes
// mean by each status:
//
//	3xx -> Internal           (redirects are an intermediary's doing)
//	400 -> Internal           (a server would have sent a wire error)
//	401 -> Unauthenticated
//	403 -> PermissionDenied
//	404 -> BadRoute
//	429 -> ResourceExhausted
//	502, 503, 504 -> Unavailable
//	other -> Unknown
//
// The metadata marks the error as intermediary-produced so callers can
// tell it apart from a server-produced error with the same code.
func errorFromIntermediary(status int, msg string) *twirp.Error {
	var c code.Code
	switch {
	case isRedirect(status):
		c = code.Internal
	case status == http.StatusBadRequest:
		c = code.Internal
	case status == http.StatusUnauthorized:
		c = code.Unauthenticated
	case status == http.StatusForbidden:
		c = code.PermissionDenied
	case status == http.StatusNotFound:
		c = code.BadRoute
	case status == http.StatusTooManyRequests:
		c = code.ResourceExhausted
	case status == http.StatusBadGateway,
		status == http.StatusServiceUnavailable,
		status == http.StatusGatewayTimeout:
		c = code.Unavailable
	default:
		c = code.Unknown
	}
	return twirp.E(c, msg,
		twirp.WithMetaOption("http_error_from_intermediary", "true"),
		twirp.WithMetaOption("status_code", strconv.Itoa(status)),
	)
}

func isRedirect(status int) bool {
	return status >= 300 && status <= 399
}

// splitServiceName splits a package-qualified wire name on its last dot:
// "a.b.Service" -> ("a.b", "Service"). Names without a package come back
// with an empty package.
func splitServiceName(full string) (pkg, name string) {
	if i := strings.LastIndex(full, "."); i >= 0 {
		return full[:i], full[i+1:]
	}
	return "", full
}

// drainAndClose consumes what is left of body before closing it, so the
// transport can reuse the underlying connection for the next call.
func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
