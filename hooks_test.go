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
	"errors"
	"net/http"
	"reflect"
	"testing"

	"github.com/vermuz/twirp/code"
)

// recordingHooks returns a hook set whose every slot appends "<name>.<slot>"
// to log, so tests can assert cross-set ordering.
func recordingHooks(name string, log *[]string) *ServerHooks {
	return &ServerHooks{
		RequestReceived: func(ctx context.Context) (context.Context, error) {
			*log = append(*log, name+".received")
			return ctx, nil
		},
		RequestRouted: func(ctx context.Context) (context.Context, error) {
			*log = append(*log, name+".routed")
			return ctx, nil
		},
		ResponsePrepared: func(ctx context.Context) context.Context {
			*log = append(*log, name+".prepared")
			return ctx
		},
		ResponseSent: func(ctx context.Context) {
			*log = append(*log, name+".sent")
		},
		Error: func(ctx context.Context, _ *Error) context.Context {
			*log = append(*log, name+".error")
			return ctx
		},
	}
}

func TestChainHooks_FiresInRegistrationOrder(t *testing.T) {
	var log []string
	chain := ChainHooks(recordingHooks("a", &log), recordingHooks("b", &log))

	ctx := context.Background()
	ctx, err := chain.RequestReceived(ctx)
	if err != nil {
		t.Fatalf("RequestReceived: %v", err)
	}
	ctx, err = chain.RequestRouted(ctx)
	if err != nil {
		t.Fatalf("RequestRouted: %v", err)
	}
	ctx = chain.ResponsePrepared(ctx)
	chain.ResponseSent(ctx)
	chain.Error(ctx, E(code.Internal, "x"))

	want := []string{
		"a.received", "b.received",
		"a.routed", "b.routed",
		"a.prepared", "b.prepared",
		"a.sent", "b.sent",
		"a.error", "b.error",
	}
	if !reflect.DeepEqual(log, want) {
		t.Fatalf("hook order = %v, want %v", log, want)
	}
}

func TestChainHooks_ErrorShortCircuitsStage(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	failing := &ServerHooks{
		RequestReceived: func(ctx context.Context) (context.Context, error) {
			log = append(log, "fail.received")
			return ctx, boom
		},
	}
	chain := ChainHooks(recordingHooks("a", &log), failing, recordingHooks("c", &log))

	_, err := chain.RequestReceived(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	want := []string{"a.received", "fail.received"}
	if !reflect.DeepEqual(log, want) {
		t.Fatalf("log = %v, want %v (later sets must not fire)", log, want)
	}
}

func TestChainHooks_NilSlotsAndNilSetsSkipped(t *testing.T) {
	var log []string
	partial := &ServerHooks{
		RequestRouted: func(ctx context.Context) (context.Context, error) {
			log = append(log, "partial.routed")
			return ctx, nil
		},
	}
	chain := ChainHooks(nil, partial, recordingHooks("b", &log))

	ctx, err := chain.RequestReceived(context.Background())
	if err != nil {
		t.Fatalf("RequestReceived: %v", err)
	}
	if _, err := chain.RequestRouted(ctx); err != nil {
		t.Fatalf("RequestRouted: %v", err)
	}

	want := []string{"b.received", "partial.routed", "b.routed"}
	if !reflect.DeepEqual(log, want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
}

func TestChainHooks_Degenerate(t *testing.T) {
	if ChainHooks() != nil {
		t.Fatal("ChainHooks() must be nil")
	}
	single := &ServerHooks{}
	if ChainHooks(single) != single {
		t.Fatal("ChainHooks(single) must return the set itself")
	}
}

func TestChainHooks_ContextFlowsThroughChain(t *testing.T) {
	type key struct{}
	first := &ServerHooks{
		RequestReceived: func(ctx context.Context) (context.Context, error) {
			return context.WithValue(ctx, key{}, "from-first"), nil
		},
	}
	var second *ServerHooks
	var sawValue string
	second = &ServerHooks{
		RequestReceived: func(ctx context.Context) (context.Context, error) {
			sawValue, _ = ctx.Value(key{}).(string)
			return ctx, nil
		},
	}
	chain := ChainHooks(first, second)
	if _, err := chain.RequestReceived(context.Background()); err != nil {
		t.Fatalf("RequestReceived: %v", err)
	}
	if sawValue != "from-first" {
		t.Fatalf("second hook saw %q, want value derived by first hook", sawValue)
	}
}

func TestChainClientHooks_OrderAndShortCircuit(t *testing.T) {
	var log []string
	boom := errors.New("abort")
	mk := func(name string, fail bool) *ClientHooks {
		return &ClientHooks{
			RequestPrepared: func(ctx context.Context, _ *http.Request) (context.Context, error) {
				log = append(log, name+".prepared")
				if fail {
					return ctx, boom
				}
				return ctx, nil
			},
			ResponseReceived: func(ctx context.Context) {
				log = append(log, name+".received")
			},
			Error: func(ctx context.Context, _ *Error) {
				log = append(log, name+".error")
			},
		}
	}

	chain := ChainClientHooks(mk("a", false), mk("b", true), mk("c", false))
	req, _ := http.NewRequest("POST", "http://localhost/twirp/x.Svc/M", nil)
	_, err := chain.RequestPrepared(context.Background(), req)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want abort", err)
	}
	chain.Error(context.Background(), E(code.Internal, "x"))

	want := []string{"a.prepared", "b.prepared", "a.error", "b.error", "c.error"}
	if !reflect.DeepEqual(log, want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
}

func TestChainClientHooks_Degenerate(t *testing.T) {
	if ChainClientHooks() != nil {
		t.Fatal("ChainClientHooks() must be nil")
	}
	single := &ClientHooks{}
	if ChainClientHooks(single) != single {
		t.Fatal("ChainClientHooks(single) must return the set itself")
	}
}
