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

// Package logging ships structured request logging as server hooks.
//
// The runtime itself never logs; observability rides the hook chain.
// ServerHooks emits one entry per request — "request handled" on
// success, "request failed" on failure — carrying the service, method,
// HTTP status, duration and, for failures, the error code and message.
package logging

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/vermuz/twirp"
)

// startKey carries the request arrival time between hook slots.
type startKey struct{}

// ServerHooks returns hooks that log every request's outcome to logger.
// Failures with a 5xx status log at Error level, everything else at
// Info. A nil logger logs nowhere.
//
// Register alongside other hook sets:
//
//	srv := server.New(svc, server.WithHooks(logging.ServerHooks(logger)))
func ServerHooks(logger *zap.Logger) *twirp.ServerHooks {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &twirp.ServerHooks{
		RequestReceived: func(ctx context.Context) (context.Context, error) {
			return context.WithValue(ctx, startKey{}, time.Now()), nil
		},
		ResponseSent: func(ctx context.Context) {
			logger.Info("request handled", fields(ctx)...)
		},
		Error: func(ctx context.Context, twerr *twirp.Error) context.Context {
			fs := append(fields(ctx),
				zap.Stringer("code", twerr.Code),
				zap.String("error", twerr.Msg),
			)
			if twerr.Cause != nil {
				fs = append(fs, zap.NamedError("cause", twerr.Cause))
			}
			status, _ := twirp.StatusCode(ctx)
			if status >= http.StatusInternalServerError {
				logger.Error("request failed", fs...)
			} else {
				logger.Info("request failed", fs...)
			}
			return ctx
		},
	}
}

// fields assembles the per-request fields known at the time of the call.
// Slots that fire before routing see fewer facts; that is fine, the
// entry simply carries less.
func fields(ctx context.Context) []zap.Field {
	fs := make([]zap.Field, 0, 4)
	if svc, ok := twirp.ServiceName(ctx); ok {
		if pkg, ok := twirp.PackageName(ctx); ok && pkg != "" {
			svc = pkg + "." + svc
		}
		fs = append(fs, zap.String("service", svc))
	}
	if m, ok := twirp.MethodName(ctx); ok {
		fs = append(fs, zap.String("method", m))
	}
	if status, ok := twirp.StatusCode(ctx); ok {
		fs = append(fs, zap.Int("status", status))
	}
	if start, ok := ctx.Value(startKey{}).(time.Time); ok {
		fs = append(fs, zap.Duration("duration", time.Since(start)))
	}
	return fs
}
