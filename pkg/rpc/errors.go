package rpc

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RPCErrorType classifies failures reported to callers.
type RPCErrorType int

const (
	// RPCFailError is a call rejected by an RPC element (admission, firewall, ...).
	RPCFailError RPCErrorType = iota
	// RPCUnavailableError is a call the transport could not deliver or complete.
	RPCUnavailableError
	// RPCUnknownError is anything else returned by the remote side.
	RPCUnknownError
)

func (t RPCErrorType) String() string {
	switch t {
	case RPCFailError:
		return "fail"
	case RPCUnavailableError:
		return "unavailable"
	default:
		return "unknown"
	}
}

type RPCError struct {
	Type   RPCErrorType
	Reason string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc %s error: %s", e.Type, e.Reason)
}

// GRPCStatus lets grpc report the error with a matching status code.
func (e *RPCError) GRPCStatus() *status.Status {
	switch e.Type {
	case RPCFailError:
		return status.New(codes.Aborted, e.Reason)
	case RPCUnavailableError:
		return status.New(codes.Unavailable, e.Reason)
	default:
		return status.New(codes.Unknown, e.Reason)
	}
}

var (
	ErrServerStarted = errors.New("rpc: server already started")
	ErrServerStopped = errors.New("rpc: server stopped")
	// ErrDrainTimeout is returned by Stop when in-flight calls outlive the grace period.
	ErrDrainTimeout = errors.New("rpc: grace period elapsed before in-flight calls finished")
)

// toRPCError converts an error returned by grpc into an *RPCError.
func toRPCError(err error) error {
	if err == nil {
		return nil
	}
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Aborted:
		return &RPCError{Type: RPCFailError, Reason: st.Message()}
	case codes.Unavailable, codes.Canceled, codes.DeadlineExceeded:
		return &RPCError{Type: RPCUnavailableError, Reason: st.Message()}
	default:
		return &RPCError{Type: RPCUnknownError, Reason: st.Message()}
	}
}

// toElementError reports an element's refusal as a failed call.
func toElementError(err error) error {
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr
	}
	return &RPCError{Type: RPCFailError, Reason: err.Error()}
}

// toStatusError converts handler and element errors into errors grpc can put on the wire.
func toStatusError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}
	return status.Error(codes.Unknown, err.Error())
}
