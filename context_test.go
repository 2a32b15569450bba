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

package twirp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vermuz/twirp/internal/ctxsetters"
)

func TestContextAccessors_RoundTrip(t *testing.T) {
	ctx := context.Background()

	if _, ok := MethodName(ctx); ok {
		t.Fatal("MethodName on empty context must report false")
	}
	if _, ok := StatusCode(ctx); ok {
		t.Fatal("StatusCode on empty context must report false")
	}

	ctx = ctxsetters.WithPackageName(ctx, "example")
	ctx = ctxsetters.WithServiceName(ctx, "Haberdasher")
	ctx = ctxsetters.WithMethodName(ctx, "MakeHat")
	ctx = ctxsetters.WithStatusCode(ctx, http.StatusOK)

	if got, ok := PackageName(ctx); !ok || got != "example" {
		t.Fatalf("PackageName = %q/%v", got, ok)
	}
	if got, ok := ServiceName(ctx); !ok || got != "Haberdasher" {
		t.Fatalf("ServiceName = %q/%v", got, ok)
	}
	if got, ok := MethodName(ctx); !ok || got != "MakeHat" {
		t.Fatalf("MethodName = %q/%v", got, ok)
	}
	if got, ok := StatusCode(ctx); !ok || got != http.StatusOK {
		t.Fatalf("StatusCode = %d/%v", got, ok)
	}
}

func TestWithHTTPRequestHeaders(t *testing.T) {
	h := make(http.Header)
	h.Set("Authorization", "Bearer token")

	ctx, err := WithHTTPRequestHeaders(context.Background(), h)
	if err != nil {
		t.Fatalf("WithHTTPRequestHeaders: %v", err)
	}

	got, ok := HTTPRequestHeaders(ctx)
	if !ok {
		t.Fatal("headers not stored")
	}
	if got.Get("Authorization") != "Bearer token" {
		t.Fatalf("Authorization = %q", got.Get("Authorization"))
	}

	// Mutating either the input or the returned copy must not leak into
	// the stored headers.
	h.Set("Authorization", "changed-after-store")
	got.Set("Authorization", "changed-after-read")
	fresh, _ := HTTPRequestHeaders(ctx)
	if fresh.Get("Authorization") != "Bearer token" {
		t.Fatalf("stored headers mutated: %q", fresh.Get("Authorization"))
	}
}

func TestWithHTTPRequestHeaders_RejectsReserved(t *testing.T) {
	for _, reserved := range []string{"Accept", "Content-Type"} {
		h := make(http.Header)
		h.Set(reserved, "application/json")
		if _, err := WithHTTPRequestHeaders(context.Background(), h); err == nil {
			t.Fatalf("reserved header %q must be rejected", reserved)
		}
	}
}

func TestHTTPRequestHeaders_AbsentReportsFalse(t *testing.T) {
	if h, ok := HTTPRequestHeaders(context.Background()); ok || h != nil {
		t.Fatal("absent headers must report (nil, false)")
	}
}

func TestSetHTTPResponseHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	ctx := ctxsetters.WithResponseWriter(context.Background(), rec)

	if err := SetHTTPResponseHeader(ctx, "Cache-Control", "no-store"); err != nil {
		t.Fatalf("SetHTTPResponseHeader: %v", err)
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Fatalf("Cache-Control = %q", got)
	}
}

func TestSetHTTPResponseHeader_ContentTypeReserved(t *testing.T) {
	rec := httptest.NewRecorder()
	ctx := ctxsetters.WithResponseWriter(context.Background(), rec)

	if err := SetHTTPResponseHeader(ctx, "content-type", "text/html"); err == nil {
		t.Fatal("Content-Type must be rejected regardless of case")
	}
	if got := rec.Header().Get("Content-Type"); got != "" {
		t.Fatalf("Content-Type leaked: %q", got)
	}
}

func TestSetHTTPResponseHeader_NoWriterIsNoop(t *testing.T) {
	if err := SetHTTPResponseHeader(context.Background(), "X-Custom", "v"); err != nil {
		t.Fatalf("no-writer call must be a no-op, got %v", err)
	}
}
