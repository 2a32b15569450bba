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

package descriptor

import (
	"context"
	"fmt"

	"github.com/vermuz/twirp/codec"
)

// DecodeFunc turns wire bytes into the method's typed request value, using
// the codec resolved for the request. Errors mean the body does not match
// the declared request shape; the runtime classifies them as malformed.
type DecodeFunc func(c codec.Codec, data []byte) (any, error)

// InvokeFunc runs the bound service method. Errors returned here are the
// service's own and pass through the runtime unchanged.
type InvokeFunc func(ctx context.Context, req any) (any, error)

// EncodeFunc turns the method's typed response value into wire bytes with
// the same codec that decoded the request. It must not fail for values of
// the declared response shape; if it does, the runtime classifies the
// failure as internal.
type EncodeFunc func(c codec.Codec, resp any) ([]byte, error)

// Method is the decode/invoke/encode triple for one RPC method. Values are
// built once by generated bindings and never modified afterwards.
type Method struct {
	// Name is the method's wire name, the last path segment of its URL.
	Name string

	Decode DecodeFunc
	Invoke InvokeFunc
	Encode EncodeFunc
}

// NewMethod builds the Method for one RPC from its typed handler. This is
// the constructor generated bindings call: Req and Resp are the method's
// payload types (the handler sees them as pointers, matching how protobuf
// message types are used).
//
// The returned closures keep the payload types to themselves; the runtime
// moves values through them as opaque any. A value of the wrong dynamic
// type reaching Invoke or Encode is a wiring bug and surfaces as an error.
func NewMethod[Req, Resp any](name string, handler func(ctx context.Context, req *Req) (*Resp, error)) *Method {
	return &Method{
		Name: name,
		Decode: func(c codec.Codec, data []byte) (any, error) {
			req := new(Req)
			if err := c.Unmarshal(data, req); err != nil {
				return nil, err
			}
			return req, nil
		},
		Invoke: func(ctx context.Context, req any) (any, error) {
			typed, ok := req.(*Req)
			if !ok {
				return nil, fmt.Errorf("method %s: unexpected request type %T", name, req)
			}
			return handler(ctx, typed)
		},
		Encode: func(c codec.Codec, resp any) ([]byte, error) {
			typed, ok := resp.(*Resp)
			if !ok {
				return nil, fmt.Errorf("method %s: unexpected response type %T", name, resp)
			}
			return c.Marshal(typed)
		},
	}
}
