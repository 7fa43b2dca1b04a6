// Package client talks to the firstweek server over gRPC.
//
// GRPCClient wraps the MemberService stub from internal/proto, applies a
// per-request timeout and maps gRPC status codes to sentinel errors:
//
//   - codes.NotFound                         -> common.ErrorNotFound
//   - codes.InvalidArgument                  -> common.ErrorInvalidID
//   - codes.Unavailable, DeadlineExceeded    -> ErrUnavailable
//
// Anything else is returned wrapped as "rpc error: ...".
package client
