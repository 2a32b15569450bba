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

// Package client invokes the methods of a remote service over HTTP: the
// outbound mirror of package server.
//
// A Client is bound to one service and one encoding. NewProtobuf and
// NewJSON are the two flavors; they share every piece of the call path
// except the codec:
//
//	cl := client.NewJSON("http://localhost:8080", "example.Haberdasher")
//	hat := &structpb.Struct{}
//	err := cl.Call(ctx, "MakeHat", size, hat)
//
// # Error reconstruction
//
// A non-2xx response carrying a structured wire error is reconstructed
// into the same *twirp.Error the server produced: identical code,
// message and metadata. Callers branch on the code, not on HTTP
// statuses:
//
//	var twerr *twirp.Error
//	if errors.As(err, &twerr) && twerr.Code == code.NotFound {
//	    ...
//	}
//
// Non-2xx responses WITHOUT a structured body were produced by an
// intermediary (a proxy, a load balancer), not by a server. Those are
// classified by HTTP status and marked with the
// "http_error_from_intermediary" metadata key.
//
// # What the client does not do
//
// No retries, no redirect following, no content negotiation. A canceled
// or expired context surfaces as a Canceled/DeadlineExceeded error; any
// retry policy on top belongs to the caller.
package client
