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

// Package haberdasher is the canonical example service, assembled the
// way generated bindings would assemble it: a service interface over
// protobuf payloads, a method table built with descriptor.NewMethod,
// and an implementation behind the interface.
package haberdasher

import (
	"context"
	"math/rand"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vermuz/twirp"
	"github.com/vermuz/twirp/descriptor"
)

// Haberdasher makes hats. This is the service contract; implementations
// carry the business logic and express failures as *twirp.Error values.
type Haberdasher interface {
	// MakeHat makes a hat of the requested size. The request carries an
	// "inches" number; the response describes the hat with "inches",
	// "color" and "name".
	MakeHat(ctx context.Context, size *structpb.Struct) (*structpb.Struct, error)
}

// Service binds impl into the wire contract "example.Haberdasher":
//
//	srv := server.New(haberdasher.Service(haberdasher.New()))
func Service(impl Haberdasher) *descriptor.Service {
	return descriptor.MustNewService("example", "Haberdasher",
		descriptor.NewMethod("MakeHat", impl.MakeHat),
	)
}

// New returns a Haberdasher that makes random hats.
func New() Haberdasher { return randomHaberdasher{} }

// Hats come in a fixed assortment.
var (
	colors = []string{"white", "black", "brown", "red", "blue"}
	names  = []string{"bowler", "baseball cap", "top hat", "derby"}
)

type randomHaberdasher struct{}

func (randomHaberdasher) MakeHat(ctx context.Context, size *structpb.Struct) (*structpb.Struct, error) {
	inches := size.GetFields()["inches"].GetNumberValue()
	if inches < 1 {
		return nil, twirp.InvalidArgumentError("inches", "I can't make a hat that small!")
	}
	return structpb.NewStruct(map[string]any{
		"inches": inches,
		"color":  colors[rand.Intn(len(colors))],
		"name":   names[rand.Intn(len(names))],
	})
}
