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

// Package descriptor defines the method-table contract between generated
// service bindings and the runtime.
//
// A Service is an immutable table mapping method names to Methods; a
// Method is the decode/invoke/encode closure triple for one RPC. Code
// generated from a service contract builds these tables (typically via
// NewMethod) and hands them to the server and client packages, which
// depend only on this fixed shape — no reflection, no registration
// side effects.
package descriptor
