package rpc

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/appnet-org/hellotime/pkg/logging"
	"github.com/appnet-org/hellotime/pkg/rpc/element"
	"github.com/appnet-org/hellotime/pkg/serializer"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client represents an RPC client with a transport and serializer. It implements
// grpc.ClientConnInterface so generated service clients can wrap it directly.
type Client struct {
	conn            *grpc.ClientConn
	serializer      serializer.Serializer
	rpcElementChain *element.RPCElementChain
	nextID          atomic.Uint64
}

var _ grpc.ClientConnInterface = (*Client)(nil)

// NewClient creates a new Client using the given serializer and target address.
// The address must pass ValidateTarget. The connection is insecure and
// established lazily on the first call.
func NewClient(codec serializer.Serializer, addr string, rpcElements []element.RPCElement) (*Client, error) {
	if err := ValidateTarget(addr); err != nil {
		return nil, err
	}
	if codec == nil {
		codec = serializer.ProtoSerializer{}
	}
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(codec)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create client for %s: %w", addr, err)
	}
	return &Client{
		conn:            conn,
		serializer:      codec,
		rpcElementChain: element.NewRPCElementChain(rpcElements...),
	}, nil
}

// Invoke makes a unary RPC call with RPC element processing. Failures are
// reported as *RPCError.
func (c *Client) Invoke(ctx context.Context, fullMethod string, req, resp any, opts ...grpc.CallOption) error {
	service, method := splitMethod(fullMethod)
	rpcReq := &element.RPCRequest{
		ID:          c.nextID.Add(1),
		ServiceName: service,
		Method:      method,
		Payload:     req,
	}

	rpcResp := &element.RPCResponse{ID: rpcReq.ID}

	// Process request through RPC elements. A rejected call never reaches the
	// wire, but the elements that already saw it still see the outcome.
	processed, ctx, err := c.rpcElementChain.ProcessRequest(ctx, rpcReq)
	if err != nil {
		rpcResp.Error = toElementError(err)
	} else if callErr := c.conn.Invoke(ctx, fullMethod, processed.Payload, resp, opts...); callErr != nil {
		logging.Debug("Call failed", zap.Uint64("rpcID", rpcReq.ID), zap.String("method", fullMethod), zap.Error(callErr))
		rpcResp.Error = toRPCError(callErr)
	} else {
		rpcResp.Result = resp
	}

	// Process response through RPC elements
	rpcResp, _, err = c.rpcElementChain.ProcessResponse(ctx, rpcResp)
	if err != nil {
		return toElementError(err)
	}
	return rpcResp.Error
}

// NewStream is required by grpc.ClientConnInterface. Elements do not run on streams.
func (c *Client) NewStream(ctx context.Context, desc *grpc.StreamDesc, method string, opts ...grpc.CallOption) (grpc.ClientStream, error) {
	return c.conn.NewStream(ctx, desc, method, opts...)
}

// Serializer returns the codec the client puts on the wire.
func (c *Client) Serializer() serializer.Serializer {
	return c.serializer
}

// Close closes the underlying connection
func (c *Client) Close() error {
	return c.conn.Close()
}
