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
	"errors"
	"fmt"
)

// Service is the immutable method table of one RPC service. It is built
// once from a generated contract and safely shared by every concurrent
// request afterwards.
type Service struct {
	pkg     string
	name    string
	methods map[string]*Method
	// order preserves declaration order for Methods(); the contract's
	// method sequence is part of its identity.
	order []string
}

// NewService builds a Service from its proto package, its name and its
// declared methods. The package may be empty for contracts declared
// outside any package.
//
// Construction validates the table once so the runtime never has to:
// the name must be non-empty, every method needs a name and all three
// closures, and method names must be unique.
func NewService(pkg, name string, methods ...*Method) (*Service, error) {
	if name == "" {
		return nil, errors.New("descriptor: service name must not be empty")
	}
	s := &Service{
		pkg:     pkg,
		name:    name,
		methods: make(map[string]*Method, len(methods)),
		order:   make([]string, 0, len(methods)),
	}
	for _, m := range methods {
		if m == nil || m.Name == "" {
			return nil, fmt.Errorf("descriptor: service %s: method without a name", s.FullName())
		}
		if m.Decode == nil || m.Invoke == nil || m.Encode == nil {
			return nil, fmt.Errorf("descriptor: service %s: method %s is missing a decode/invoke/encode closure", s.FullName(), m.Name)
		}
		if _, exists := s.methods[m.Name]; exists {
			return nil, fmt.Errorf("descriptor: service %s: duplicate method %s", s.FullName(), m.Name)
		}
		s.methods[m.Name] = m
		s.order = append(s.order, m.Name)
	}
	return s, nil
}

// MustNewService is the panic-on-error variant of NewService. Generated
// bindings use it in var blocks, where a broken table is a build-time bug.
func MustNewService(pkg, name string, methods ...*Method) *Service {
	s, err := NewService(pkg, name, methods...)
	if err != nil {
		panic(err)
	}
	return s
}

// Package returns the service's proto package ("example"), possibly empty.
func (s *Service) Package() string { return s.pkg }

// Name returns the service's bare name ("Haberdasher").
func (s *Service) Name() string { return s.name }

// FullName returns the package-qualified name used on the wire
// ("example.Haberdasher"), or the bare name when there is no package.
func (s *Service) FullName() string {
	if s.pkg == "" {
		return s.name
	}
	return s.pkg + "." + s.name
}

// Method looks up a method by its exact wire name.
func (s *Service) Method(name string) (*Method, bool) {
	m, ok := s.methods[name]
	return m, ok
}

// Methods returns the method names in declaration order. The returned
// slice is a copy; callers may modify it freely.
func (s *Service) Methods() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
