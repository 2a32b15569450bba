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

// Package ratelimit ships token-bucket admission control as server
// hooks. Requests beyond the configured rate fail with
// ResourceExhausted (HTTP 429) at the RequestReceived stage, before any
// routing or decoding work is spent on them.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/vermuz/twirp"
	"github.com/vermuz/twirp/code"
)

// ServerHooks returns admission hooks allowing r requests per second
// with the given burst:
//
//	srv := server.New(svc, server.WithHooks(ratelimit.ServerHooks(100, 20)))
func ServerHooks(r rate.Limit, burst int) *twirp.ServerHooks {
	return FromLimiter(rate.NewLimiter(r, burst))
}

// FromLimiter builds admission hooks around a caller-owned limiter, for
// sharing one bucket across several servers or mixing with other uses
// of the same limiter.
func FromLimiter(l *rate.Limiter) *twirp.ServerHooks {
	return &twirp.ServerHooks{
		RequestReceived: func(ctx context.Context) (context.Context, error) {
			// Reject rather than queue: a caller past the limit gets an
			// immediate, retryable answer instead of added latency.
			if !l.Allow() {
				return ctx, twirp.E(code.ResourceExhausted, "rate limit exceeded")
			}
			return ctx, nil
		},
	}
}
