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

package descriptor

import (
	"context"
	"reflect"
	"testing"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vermuz/twirp/codec"
)

// noopMethod returns a minimal valid Method for table-construction tests.
func noopMethod(name string) *Method {
	return &Method{
		Name:   name,
		Decode: func(codec.Codec, []byte) (any, error) { return nil, nil },
		Invoke: func(context.Context, any) (any, error) { return nil, nil },
		Encode: func(codec.Codec, any) ([]byte, error) { return nil, nil },
	}
}

func TestNewService_Valid(t *testing.T) {
	s, err := NewService("example", "Haberdasher", noopMethod("MakeHat"), noopMethod("Resize"))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	if s.Package() != "example" || s.Name() != "Haberdasher" {
		t.Fatalf("identity = %q/%q", s.Package(), s.Name())
	}
	if s.FullName() != "example.Haberdasher" {
		t.Fatalf("FullName() = %q", s.FullName())
	}
}

func TestNewService_EmptyPackage(t *testing.T) {
	s, err := NewService("", "Haberdasher", noopMethod("MakeHat"))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	if s.FullName() != "Haberdasher" {
		t.Fatalf("FullName() without package = %q", s.FullName())
	}
}

func TestNewService_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		pkg     string
		svc     string
		methods []*Method
	}{
		{"empty service name", "example", "", []*Method{noopMethod("M")}},
		{"nil method", "example", "Svc", []*Method{nil}},
		{"unnamed method", "example", "Svc", []*Method{noopMethod("")}},
		{"duplicate method", "example", "Svc", []*Method{noopMethod("M"), noopMethod("M")}},
		{"missing decode", "example", "Svc", []*Method{{
			Name:   "M",
			Invoke: func(context.Context, any) (any, error) { return nil, nil },
			Encode: func(codec.Codec, any) ([]byte, error) { return nil, nil },
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewService(tt.pkg, tt.svc, tt.methods...); err == nil {
				t.Fatal("NewService must fail")
			}
		})
	}
}

func TestMustNewService_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("MustNewService should panic on invalid input")
		}
	}()
	_ = MustNewService("example", "")
}

func TestService_MethodLookup(t *testing.T) {
	s := MustNewService("example", "Haberdasher", noopMethod("MakeHat"))

	if m, ok := s.Method("MakeHat"); !ok || m.Name != "MakeHat" {
		t.Fatal("declared method not found")
	}
	if _, ok := s.Method("MakeShoe"); ok {
		t.Fatal("undeclared method must not resolve")
	}
	// Matching is byte-exact, never case-folded.
	if _, ok := s.Method("makehat"); ok {
		t.Fatal("method lookup must be case-sensitive")
	}
}

func TestService_MethodsOrderIsDeclarationOrder(t *testing.T) {
	s := MustNewService("example", "Svc",
		noopMethod("C"), noopMethod("A"), noopMethod("B"))

	want := []string{"C", "A", "B"}
	if got := s.Methods(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Methods() = %v, want %v", got, want)
	}

	// The returned slice must be a copy.
	s.Methods()[0] = "clobbered"
	if s.Methods()[0] != "C" {
		t.Fatal("Methods() must return a copy, caller mutation leaked")
	}
}

func TestNewMethod_DecodeInvokeEncode(t *testing.T) {
	echo := NewMethod("Echo", func(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		resp, err := structpb.NewStruct(map[string]any{"echoed": true})
		if err != nil {
			return nil, err
		}
		for k, v := range req.GetFields() {
			resp.Fields[k] = v
		}
		return resp, nil
	})

	for _, c := range []codec.Codec{codec.Proto, codec.JSON} {
		t.Run(c.Name(), func(t *testing.T) {
			in, err := structpb.NewStruct(map[string]any{"inches": float64(12)})
			if err != nil {
				t.Fatalf("build payload: %v", err)
			}
			data, err := c.Marshal(in)
			if err != nil {
				t.Fatalf("marshal payload: %v", err)
			}

			req, err := echo.Decode(c, data)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			resp, err := echo.Invoke(context.Background(), req)
			if err != nil {
				t.Fatalf("Invoke: %v", err)
			}
			out, err := echo.Encode(c, resp)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}

			round := &structpb.Struct{}
			if err := c.Unmarshal(out, round); err != nil {
				t.Fatalf("unmarshal response: %v", err)
			}
			fields := round.GetFields()
			if fields["inches"].GetNumberValue() != 12 {
				t.Fatalf("inches = %v, want 12", fields["inches"])
			}
			if !fields["echoed"].GetBoolValue() {
				t.Fatal("handler-set field missing")
			}
		})
	}
}

func TestNewMethod_DecodeErrorPropagates(t *testing.T) {
	m := NewMethod("Echo", func(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		return req, nil
	})
	if _, err := m.Decode(codec.JSON, []byte(`{"broken`)); err == nil {
		t.Fatal("malformed bytes must fail Decode")
	}
}

func TestNewMethod_WrongDynamicTypes(t *testing.T) {
	m := NewMethod("Echo", func(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		return req, nil
	})

	if _, err := m.Invoke(context.Background(), "not a struct"); err == nil {
		t.Fatal("Invoke with a foreign type must fail")
	}
	if _, err := m.Encode(codec.JSON, 42); err == nil {
		t.Fatal("Encode with a foreign type must fail")
	}
}
