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

// Package codec holds the two wire encodings of the protocol and the
// content-type dispatch between them.
//
// Exactly two encodings exist: binary protobuf ("application/protobuf")
// and JSON ("application/json"). ForContentType maps an HTTP Content-Type
// header to one of them and fails for everything else — the protocol has
// no negotiation and never silently defaults.
//
// A request is served with ONE codec end to end: the codec resolved from
// the request header encodes the response (and, on failure, the error
// body). Payload schemas are defined externally by generated protobuf
// types; this package only invokes their marshal/unmarshal entry points.
package codec
