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
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// JSON is the JSON codec. proto.Message payloads go through protojson,
// which knows the proto3 JSON mapping (field names, well-known types);
// plain Go values fall back to encoding/json so hand-written payload
// structs keep working under this encoding.
var JSON Codec = jsonCodec{}

type jsonCodec struct{}

// jsonMarshal emits proto field names as declared in the schema rather
// than lowerCamelCase, matching what generated clients in other languages
// send and expect.
var jsonMarshal = protojson.MarshalOptions{UseProtoNames: true}

// jsonUnmarshal tolerates unknown fields so old servers keep accepting
// requests from newer clients.
var jsonUnmarshal = protojson.UnmarshalOptions{DiscardUnknown: true}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) ContentType() string { return ContentTypeJSON }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	if msg, ok := v.(proto.Message); ok {
		return jsonMarshal.Marshal(msg)
	}
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if msg, ok := v.(proto.Message); ok {
		return jsonUnmarshal.Unmarshal(data, msg)
	}
	return json.Unmarshal(data, v)
}
