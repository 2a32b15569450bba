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

	"github.com/vermuz/twirp"
	"github.com/vermuz/twirp/code"
)

// The call* wrappers are the server's only entry points into the hook
// chain. They tolerate a nil chain and reclassify hook panics as internal
// errors, so a broken hook degrades into a structured error response
// instead of unwinding the connection.

func hookPanicError(r any) *twirp.Error {
	return twirp.E(code.Internal, "internal hook panic",
		twirp.WithCauseOption(fmt.Errorf("panic: %v", r)),
	)
}

func (s *Server) callRequestReceived(ctx context.Context) (out context.Context, err error) {
	out = ctx
	if s.hooks == nil || s.hooks.RequestReceived == nil {
		return out, nil
	}
	defer func() {
		if r := recover(); r != nil {
			out = ctx
			err = hookPanicError(r)
		}
	}()
	return s.hooks.RequestReceived(ctx)
}

func (s *Server) callRequestRouted(ctx context.Context) (out context.Context, err error) {
	out = ctx
	if s.hooks == nil || s.hooks.RequestRouted == nil {
		return out, nil
	}
	defer func() {
		if r := recover(); r != nil {
			out = ctx
			err = hookPanicError(r)
		}
	}()
	return s.hooks.RequestRouted(ctx)
}

func (s *Server) callResponsePrepared(ctx context.Context) (out context.Context, err error) {
	out = ctx
	if s.hooks == nil || s.hooks.ResponsePrepared == nil {
		return out, nil
	}
	defer func() {
		if r := recover(); r != nil {
			out = ctx
			err = hookPanicError(r)
		}
	}()
	return s.hooks.ResponsePrepared(ctx), nil
}

func (s *Server) callResponseSent(ctx context.Context) {
	if s.hooks == nil || s.hooks.ResponseSent == nil {
		return
	}
	// The response is already on the wire; a panicking hook has nothing
	// left to override.
	defer func() { _ = recover() }()
	s.hooks.ResponseSent(ctx)
}

func (s *Server) callError(ctx context.Context, twerr *twirp.Error) (out context.Context) {
	out = ctx
	if s.hooks == nil || s.hooks.Error == nil {
		return out
	}
	// Error handling must not re-enter itself: a panicking Error hook is
	// dropped and the response is written regardless.
	defer func() { _ = recover() }()
	out = s.hooks.Error(ctx, twerr)
	return out
}
