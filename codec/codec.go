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

package codec

import (
	"fmt"
	"strings"

	"github.com/vermuz/twirp"
	"github.com/vermuz/twirp/code"
)

// Recognized Content-Type header values. The set is fixed by the protocol.
const (
	// ContentTypeProto names the binary protobuf encoding.
	ContentTypeProto = "application/protobuf"

	// ContentTypeJSON names the JSON encoding.
	ContentTypeJSON = "application/json"
)

// Codec marshals and unmarshals payloads of one wire encoding.
//
// Implementations are stateless and safe for concurrent use.
type Codec interface {
	// Name is the codec's short identifier ("proto", "json"), used in
	// diagnostics and log fields.
	Name() string

	// ContentType is the canonical header value the codec answers to, and
	// the value written on responses it encodes.
	ContentType() string

	// Marshal encodes a payload value into wire bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes wire bytes into the given payload value.
	Unmarshal(data []byte, v any) error
}

// byContentType indexes the two codecs by their canonical header value.
var byContentType = map[string]Codec{
	ContentTypeProto: Proto,
	ContentTypeJSON:  JSON,
}

// ForContentType selects the codec matching an HTTP Content-Type header.
//
// Media-type parameters are ignored ("application/json; charset=utf-8"
// selects the JSON codec) and matching is case-insensitive, per RFC 9110.
// Anything outside the two recognized values fails with a bad_route error:
// requests carrying an unknown encoding are rejected before their body is
// ever decoded.
func ForContentType(header string) (Codec, *twirp.Error) {
	mediaType := header
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = mediaType[:i]
	}
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))

	if c, ok := byContentType[mediaType]; ok {
		return c, nil
	}
	if header == "" {
		return nil, twirp.E(code.BadRoute, "missing Content-Type header")
	}
	return nil, twirp.E(code.BadRoute, fmt.Sprintf("unexpected Content-Type: %q", header))
}
