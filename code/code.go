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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Code is the canonical, validated representation of a wire error code.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw wire input with recognized values.
//
// IMPORTANT: the set of codes is closed. Membership is defined by the
// constants in codes.go; Validate rejects everything else, including the
// zero value NoError.
type Code string

var (
	// ErrCodeInvalid is returned when a value cannot be parsed or validated
	// as a member of the closed code taxonomy.
	//
	// Having a dedicated sentinel error makes it easier for callers and tests
	// to detect "this is about code membership" vs "this is some other error".
	ErrCodeInvalid = errors.New("twirp: invalid error code")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// NoError is the zero-value code. It is not a wire error code: it marks the
// absence of an error and maps to the success statuses (HTTP 200, gRPC OK).
// Every structured wire error MUST carry a non-empty, recognized code.
const NoError Code = ""

// Parse takes a string read off the wire, normalizes it and validates it
// against the closed taxonomy. On success it returns the canonical Code.
func Parse(s string) (Code, error) {
	c := Code(Normalize(s))
	if err := Validate(c); err != nil {
		return NoError, err
	}
	return c, nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in init() or var blocks.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical code form.
//
// This function is intentionally conservative: it only performs obvious,
// non-lossy transformations:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '-' with '_';
//
// It does NOT guarantee that the result is a recognized code — callers
// should still call Validate/Parse after normalization.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether the provided Code is a member of the closed
// taxonomy. NoError ("") is considered invalid: it is a marker for the
// absence of an error, not a code a wire error may carry.
func Validate(c Code) error {
	if _, ok := known[c]; !ok {
		return ErrCodeInvalid
	}
	return nil
}

// Valid reports whether c is a member of the closed taxonomy.
func Valid(c Code) bool {
	return Validate(c) == nil
}

// All returns every member of the closed taxonomy in declaration order.
// The returned slice is a copy; callers may modify it freely.
func All() []Code {
	out := make([]Code, len(all))
	copy(out, all)
	return out
}

// String returns the canonical string representation of the code.
func (c Code) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical string representation.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (c *Code) UnmarshalText(text []byte) error {
	// We copy into a buffer to avoid changing the input slice.
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
