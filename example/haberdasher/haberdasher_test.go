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

package haberdasher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vermuz/twirp"
	"github.com/vermuz/twirp/client"
	"github.com/vermuz/twirp/code"
	"github.com/vermuz/twirp/server"
)

// startServer mounts the example service on a real listener so the
// tests exercise the full client/server round trip.
func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := server.New(Service(New()))
	mux := http.NewServeMux()
	mux.Handle(srv.PathPrefix(), srv)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func sizeStruct(t *testing.T, inches float64) *structpb.Struct {
	t.Helper()
	in, err := structpb.NewStruct(map[string]any{"inches": inches})
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	return in
}

func TestMakeHat_EndToEnd(t *testing.T) {
	ts := startServer(t)

	clients := map[string]*client.Client{
		"json":  client.NewJSON(ts.URL, "example.Haberdasher"),
		"proto": client.NewProtobuf(ts.URL, "example.Haberdasher"),
	}
	for name, c := range clients {
		t.Run(name, func(t *testing.T) {
			hat := &structpb.Struct{}
			if err := c.Call(context.Background(), "MakeHat", sizeStruct(t, 12), hat); err != nil {
				t.Fatalf("MakeHat: %v", err)
			}
			fields := hat.GetFields()
			if got := fields["inches"].GetNumberValue(); got != 12 {
				t.Fatalf("inches = %v, want 12", got)
			}
			if got := fields["color"].GetStringValue(); !slices.Contains(colors, got) {
				t.Fatalf("color = %q, not in the assortment", got)
			}
			if got := fields["name"].GetStringValue(); !slices.Contains(names, got) {
				t.Fatalf("name = %q, not in the assortment", got)
			}
		})
	}
}

func TestMakeHat_TooSmall(t *testing.T) {
	ts := startServer(t)
	c := client.NewJSON(ts.URL, "example.Haberdasher")

	err := c.Call(context.Background(), "MakeHat", sizeStruct(t, 0), &structpb.Struct{})
	if err == nil {
		t.Fatal("expected an error for a zero-inch hat")
	}
	var twerr *twirp.Error
	if !errors.As(err, &twerr) {
		t.Fatalf("error is %T, want *twirp.Error", err)
	}
	if twerr.Code != code.InvalidArgument {
		t.Fatalf("code = %q, want invalid_argument", twerr.Code)
	}
	if twerr.Msg != "inches I can't make a hat that small!" {
		t.Fatalf("msg = %q", twerr.Msg)
	}
	if twerr.Meta["argument"] != "inches" {
		t.Fatalf("meta = %v", twerr.Meta)
	}
}

func TestMakeHat_RawJSONShape(t *testing.T) {
	ts := startServer(t)

	resp, err := http.Post(
		ts.URL+"/twirp/example.Haberdasher/MakeHat",
		"application/json",
		strings.NewReader(`{"inches": 7}`),
	)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q", ct)
	}
}

func TestService_ShapesTheMethodTable(t *testing.T) {
	svc := Service(New())
	if got := svc.FullName(); got != "example.Haberdasher" {
		t.Fatalf("FullName() = %q", got)
	}
	if _, ok := svc.Method("MakeHat"); !ok {
		t.Fatal("MakeHat not registered")
	}
	if _, ok := svc.Method("MakeShoe"); ok {
		t.Fatal("MakeShoe should not exist")
	}
}

func TestMakeHat_DirectImplementation(t *testing.T) {
	h := New()
	hat, err := h.MakeHat(context.Background(), sizeStruct(t, 3))
	if err != nil {
		t.Fatalf("MakeHat: %v", err)
	}
	if got := hat.GetFields()["inches"].GetNumberValue(); got != 3 {
		t.Fatalf("inches = %v, want 3", got)
	}
}
