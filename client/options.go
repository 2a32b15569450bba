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
	"strings"

	"github.com/vermuz/twirp"
)

// Option configures a Client at construction time. All options are
// applied inside New and the result is frozen; a live client cannot be
// reconfigured.
type Option func(*Client)

// WithHTTPClient substitutes the transport calls are performed with. The
// default is a plain http.Client; bring your own for timeouts, proxies
// or connection pooling policies. A nil value keeps the default.
func WithHTTPClient(hc HTTPClient) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithPathPrefix changes the URL prefix calls are issued under,
// DefaultPathPrefix ("/twirp") otherwise. It must match the prefix the
// server side was mounted with.
func WithPathPrefix(prefix string) Option {
	return func(c *Client) {
		prefix = strings.TrimSuffix(prefix, "/")
		if prefix != "" && !strings.HasPrefix(prefix, "/") {
			prefix = "/" + prefix
		}
		c.prefix = prefix
	}
}

// WithClientHooks registers lifecycle hooks for every call the client
// makes. The option may be repeated and may carry several sets at once;
// all sets compose in the order given, as by twirp.ChainClientHooks.
func WithClientHooks(hooks ...*twirp.ClientHooks) Option {
	return func(c *Client) {
		all := make([]*twirp.ClientHooks, 0, len(hooks)+1)
		all = append(all, c.hooks)
		all = append(all, hooks...)
		c.hooks = twirp.ChainClientHooks(all...)
	}
}
