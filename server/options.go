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
	"strings"

	"github.com/vermuz/twirp"
	"github.com/vermuz/twirp/codec"
)

// Option configures a Server at construction time. All options are
// applied inside New and the result is frozen; a running server cannot be
// reconfigured.
type Option func(*Server)

// WithHooks registers lifecycle hooks. The option may be repeated and may
// carry several sets at once; all sets compose in the order given, as by
// twirp.ChainHooks.
func WithHooks(hooks ...*twirp.ServerHooks) Option {
	return func(s *Server) {
		all := make([]*twirp.ServerHooks, 0, len(hooks)+1)
		all = append(all, s.hooks)
		all = append(all, hooks...)
		s.hooks = twirp.ChainHooks(all...)
	}
}

// WithPathPrefix changes the URL prefix requests are served under,
// DefaultPathPrefix ("/twirp") otherwise. The empty string mounts the
// service at the root ("/package.Service/Method").
func WithPathPrefix(prefix string) Option {
	return func(s *Server) {
		prefix = strings.TrimSuffix(prefix, "/")
		if prefix != "" && !strings.HasPrefix(prefix, "/") {
			prefix = "/" + prefix
		}
		s.prefix = prefix
	}
}

// WithContextSource installs the collaborator that augments the request
// context from transport headers before each invocation.
func WithContextSource(src ContextSource) Option {
	return func(s *Server) { s.ctxSource = src }
}

// WithDefaultCodec makes requests WITHOUT a Content-Type header decode
// with the given codec instead of failing with bad_route. Requests that
// do declare a content type are still matched strictly; the default never
// overrides an unrecognized value.
func WithDefaultCodec(c codec.Codec) Option {
	return func(s *Server) { s.defaultCodec = c }
}
