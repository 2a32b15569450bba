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

// Package ctxsetters is the write side of the request context: the server
// records routing facts here (package, service, method, status code, the
// response writer) as it learns them. The package is internal so only the
// runtime can write; handlers and hooks observe the values read-only
// through the accessors in the root package.
package ctxsetters

import (
	"context"
	"net/http"
)

type contextKey int

const (
	methodNameKey contextKey = 1 + iota
	serviceNameKey
	packageNameKey
	statusCodeKey
	responseWriterKey
)

// WithMethodName records the resolved RPC method name.
func WithMethodName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, methodNameKey, name)
}

// MethodName reads back the value recorded by WithMethodName.
func MethodName(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(methodNameKey).(string)
	return name, ok
}

// WithServiceName records the resolved service name (without package).
func WithServiceName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, serviceNameKey, name)
}

// ServiceName reads back the value recorded by WithServiceName.
func ServiceName(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(serviceNameKey).(string)
	return name, ok
}

// WithPackageName records the proto package of the resolved service.
func WithPackageName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, packageNameKey, name)
}

// PackageName reads back the value recorded by WithPackageName.
func PackageName(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(packageNameKey).(string)
	return name, ok
}

// WithStatusCode records the HTTP status chosen for the response.
func WithStatusCode(ctx context.Context, status int) context.Context {
	return context.WithValue(ctx, statusCodeKey, status)
}

// StatusCode reads back the value recorded by WithStatusCode.
func StatusCode(ctx context.Context) (int, bool) {
	status, ok := ctx.Value(statusCodeKey).(int)
	return status, ok
}

// WithResponseWriter makes the response writer reachable from handler
// code, so response headers can be set through the context.
func WithResponseWriter(ctx context.Context, w http.ResponseWriter) context.Context {
	return context.WithValue(ctx, responseWriterKey, w)
}

// ResponseWriter reads back the value recorded by WithResponseWriter.
func ResponseWriter(ctx context.Context) (http.ResponseWriter, bool) {
	w, ok := ctx.Value(responseWriterKey).(http.ResponseWriter)
	return w, ok
}
