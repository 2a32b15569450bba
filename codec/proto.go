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

	"google.golang.org/protobuf/proto"
)

// Proto is the binary protobuf codec. Payloads must implement
// proto.Message; anything else is a programming error surfaced to the
// caller as a failed marshal.
var Proto Codec = protoCodec{}

type protoCodec struct{}

func (protoCodec) Name() string { return "proto" }

func (protoCodec) ContentType() string { return ContentTypeProto }

func (protoCodec) Marshal(v any) ([]byte, error) {
	msg, ok := v.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("proto codec: %T does not implement proto.Message", v)
	}
	return proto.Marshal(msg)
}

func (protoCodec) Unmarshal(data []byte, v any) error {
	msg, ok := v.(proto.Message)
	if !ok {
		return fmt.Errorf("proto codec: %T does not implement proto.Message", v)
	}
	return proto.Unmarshal(data, msg)
}
