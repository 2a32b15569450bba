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

// Package server dispatches inbound HTTP requests to a service's methods.
//
// A Server is an http.Handler bound to one descriptor.Service. Each
// request runs the same fixed pipeline: receive, route by exact path
// ("{prefix}/{package.Service}/{Method}", POST only), resolve the codec
// from the Content-Type header, decode, invoke, encode with the same
// codec, write. Lifecycle hooks observe every stage; any failure short-
// circuits into a structured error response and fires the Error hook
// exactly once.
//
// The Server holds no per-request state: the descriptor and hook chain are
// frozen at construction and shared by all requests, everything else lives
// on the request context. Handlers are safe for concurrent use by the
// standard library's HTTP server without further locking.
package server
