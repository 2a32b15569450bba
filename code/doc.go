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

// Package code defines the closed set of wire error codes and their fixed
// transport mappings.
//
// A "code" is the top-level, machine-readable classification of an RPC
// error, such as "invalid_argument", "not_found" or "internal". Codes are
// meant to be:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated (not dash-separated);
//   - suitable for use in JSON/proto payloads on the wire.
//
// IMPORTANT: the set of codes is CLOSED. Servers and clients both depend on
// the taxonomy declared in this package; a string outside that set is not a
// valid Code. The zero value NoError ("") marks the absence of an error and
// is likewise rejected as a wire code.
//
// Every code maps to exactly one HTTP status and one canonical gRPC status
// code. Both mappings are total: values outside the taxonomy fall back to
// the Internal equivalents instead of failing, so a transport edge can
// always produce a response.
package code
