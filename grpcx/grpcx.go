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

// Package grpcx bridges the runtime's error model to gRPC, for services
// that expose the same implementation over both transports.
//
// ToStatus and FromStatus translate between *twirp.Error and
// *status.Status without losing the code, message or metadata: the full
// wire error rides along as a structured status detail.
// UnaryServerInterceptor applies ToStatus to every error a gRPC handler
// returns, so shared service logic keeps returning *twirp.Error values
// regardless of which transport carried the request.
package grpcx

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vermuz/twirp"
	"github.com/vermuz/twirp/code"
	"github.com/vermuz/twirp/wire"
)

// ToStatus converts twerr into a gRPC status: the code maps through the
// fixed code.GRPCStatus table, the message carries over, and the full
// code/msg/meta error body is attached as a status detail so FromStatus
// can reconstruct the exact error on the other side.
//
// A nil error converts to an OK status. A detail that cannot be packed
// degrades to the bare status rather than failing.
func ToStatus(twerr *twirp.Error) *status.Status {
	if twerr == nil {
		return status.New(codes.OK, "")
	}
	st := status.New(code.GRPCStatus(twerr.Code), twerr.Msg)

	detail, err := anypb.New(wire.ErrorStruct(twerr))
	if err != nil {
		return st
	}
	p := st.Proto()
	p.Details = append(p.Details, detail)
	return status.FromProto(p)
}

// FromStatus reconstructs a *twirp.Error from a gRPC status.
//
// When the status carries the detail attached by ToStatus, the original
// code, message and metadata come back exactly. Otherwise — the error
// was produced by a plain gRPC server — the code is inferred from the
// gRPC code alone, Unknown when nothing matches. An OK status returns
// nil.
func FromStatus(st *status.Status) *twirp.Error {
	if st == nil || st.Code() == codes.OK {
		return nil
	}
	for _, d := range st.Proto().GetDetails() {
		s := &structpb.Struct{}
		if err := d.UnmarshalTo(s); err != nil {
			continue
		}
		if twerr, err := wire.ErrorFromStruct(s); err == nil {
			return twerr
		}
	}
	return twirp.E(fromGRPCCode(st.Code()), st.Message())
}

// FromError is FromStatus over a plain error as returned by gRPC client
// stubs. Non-status errors classify through twirp.FromError.
func FromError(err error) *twirp.Error {
	if err == nil {
		return nil
	}
	if st, ok := status.FromError(err); ok {
		return FromStatus(st)
	}
	return twirp.FromError(err)
}

// UnaryServerInterceptor converts *twirp.Error values returned by
// handlers into rich gRPC statuses via ToStatus. Errors that are not
// *twirp.Error pass through untouched; gRPC applies its own defaults to
// them.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		var twerr *twirp.Error
		if !errors.As(err, &twerr) {
			// Not ours — return as-is.
			return nil, err
		}
		return nil, ToStatus(twerr).Err()
	}
}

// fromGRPC inverts the code.GRPCStatus table for statuses without a
// structured detail. The table is many-to-one (Malformed and BadRoute
// borrow canonical neighbors), so the inverse picks the canonical
// member for each gRPC code.
var fromGRPC = map[codes.Code]code.Code{
	codes.Canceled:           code.Canceled,
	codes.DeadlineExceeded:   code.DeadlineExceeded,
	codes.InvalidArgument:    code.InvalidArgument,
	codes.OutOfRange:         code.OutOfRange,
	codes.NotFound:           code.NotFound,
	codes.AlreadyExists:      code.AlreadyExists,
	codes.Aborted:            code.Aborted,
	codes.FailedPrecondition: code.FailedPrecondition,
	codes.Unauthenticated:    code.Unauthenticated,
	codes.PermissionDenied:   code.PermissionDenied,
	codes.ResourceExhausted:  code.ResourceExhausted,
	codes.Unimplemented:      code.Unimplemented,
	codes.Internal:           code.Internal,
	codes.Unavailable:        code.Unavailable,
	codes.DataLoss:           code.DataLoss,
	codes.Unknown:            code.Unknown,
}

func fromGRPCCode(gc codes.Code) code.Code {
	if c, ok := fromGRPC[gc]; ok {
		return c
	}
	return code.Unknown
}
