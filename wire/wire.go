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

package wire

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vermuz/twirp"
	"github.com/vermuz/twirp/code"
	"github.com/vermuz/twirp/codec"
)

// payload is the JSON shape of a wire error body.
type payload struct {
	Code string            `json:"code"`
	Msg  string            `json:"msg"`
	Meta map[string]string `json:"meta,omitempty"`
}

// MarshalError serializes e into the encoding of c and reports the
// Content-Type describing the body. When c is nil — the failure happened
// before a codec was resolved — the body falls back to JSON.
//
// MarshalError is total: the error contract must hold on every failure
// path, so serialization problems degrade to the JSON form rather than
// propagate.
func MarshalError(c codec.Codec, e *twirp.Error) (body []byte, contentType string) {
	if c != nil && c.ContentType() == codec.ContentTypeProto {
		if b, err := c.Marshal(ErrorStruct(e)); err == nil {
			return b, codec.ContentTypeProto
		}
	}
	b, err := json.Marshal(payload{
		Code: string(e.Code),
		Msg:  e.Msg,
		Meta: e.Meta,
	})
	if err != nil {
		// Unreachable with string-only fields; keep the contract anyway.
		b = []byte(`{"code":"internal","msg":"failed to serialize error"}`)
	}
	return b, codec.ContentTypeJSON
}

// UnmarshalError reconstructs a *twirp.Error from an error response body.
//
// It fails when the body is not a structured wire error: an unrecognized
// Content-Type (a proxy's HTML page), undecodable bytes, or a code outside
// the closed set. The caller is expected to fall back to classifying the
// response by its HTTP status.
func UnmarshalError(contentType string, body []byte) (*twirp.Error, error) {
	c, selErr := codec.ForContentType(contentType)
	if selErr != nil {
		return nil, fmt.Errorf("wire: unrecognized error response Content-Type %q", contentType)
	}

	if c.ContentType() == codec.ContentTypeProto {
		s := &structpb.Struct{}
		if err := c.Unmarshal(body, s); err != nil {
			return nil, fmt.Errorf("wire: undecodable binary error body: %w", err)
		}
		return ErrorFromStruct(s)
	}

	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("wire: error body is not valid JSON: %w", err)
	}
	return build(p.Code, p.Msg, p.Meta)
}

// ErrorStruct builds the binary encoding's equivalent of the error body:
// a Struct with the same code/msg/meta fields. Construction cannot fail,
// the values are plain strings. The gRPC interop layer reuses this form
// as the status detail payload.
func ErrorStruct(e *twirp.Error) *structpb.Struct {
	fields := map[string]*structpb.Value{
		"code": structpb.NewStringValue(string(e.Code)),
		"msg":  structpb.NewStringValue(e.Msg),
	}
	if len(e.Meta) > 0 {
		meta := make(map[string]*structpb.Value, len(e.Meta))
		for k, v := range e.Meta {
			meta[k] = structpb.NewStringValue(v)
		}
		fields["meta"] = structpb.NewStructValue(&structpb.Struct{Fields: meta})
	}
	return &structpb.Struct{Fields: fields}
}

// ErrorFromStruct is the inverse of ErrorStruct. It fails when the code
// field is absent or outside the closed set.
func ErrorFromStruct(s *structpb.Struct) (*twirp.Error, error) {
	fields := s.GetFields()
	var meta map[string]string
	if m := fields["meta"].GetStructValue(); m != nil {
		meta = make(map[string]string, len(m.GetFields()))
		for k, v := range m.GetFields() {
			meta[k] = v.GetStringValue()
		}
	}
	return build(fields["code"].GetStringValue(), fields["msg"].GetStringValue(), meta)
}

func build(rawCode, msg string, meta map[string]string) (*twirp.Error, error) {
	c, err := code.Parse(rawCode)
	if err != nil {
		return nil, fmt.Errorf("wire: error body carries unrecognized code %q", rawCode)
	}
	return twirp.E(c, msg, twirp.WithMetaMapOption(meta)), nil
}
