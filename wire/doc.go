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

// Package wire translates errors to and from their wire body.
//
// Every failure response carries the same structured shape, whatever
// encoding transports it: an object with "code", "msg" and "meta" fields
// ("meta" omitted when empty). The JSON encoding writes it literally; the
// binary encoding writes the equivalent schema message. Servers marshal
// through this package when writing failures, clients unmarshal through it
// when reconstructing the server's error.
package wire
