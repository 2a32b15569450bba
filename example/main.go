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

// Command example serves the Haberdasher demo on :8080.
//
// Try it:
//
//	curl -X POST -H "Content-Type: application/json" \
//	     -d '{"inches": 12}' \
//	     http://localhost:8080/twirp/example.Haberdasher/MakeHat
package main

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/vermuz/twirp/example/haberdasher"
	"github.com/vermuz/twirp/hooks/logging"
	"github.com/vermuz/twirp/hooks/ratelimit"
	"github.com/vermuz/twirp/server"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	// Logging first so a rate-limited request is still logged with its
	// duration; the limiter runs after the logging hooks have seen it.
	srv := server.New(haberdasher.Service(haberdasher.New()),
		server.WithHooks(
			logging.ServerHooks(logger),
			ratelimit.ServerHooks(100, 20),
		),
	)

	mux := http.NewServeMux()
	mux.Handle(srv.PathPrefix(), srv)

	logger.Info("serving",
		zap.String("addr", ":8080"),
		zap.String("service", srv.ServiceFullName()),
		zap.String("prefix", srv.PathPrefix()),
	)
	if err := http.ListenAndServe(":8080", mux); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
