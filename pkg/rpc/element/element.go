package element

import (
	"context"
)

// RPCRequest represents an RPC request
type RPCRequest struct {
	ID          uint64 // Unique identifier for the request
	ServiceName string // Name of the service being called
	Method      string // Name of the method being called
	Payload     any    // Decoded request message
}

// RPCResponse represents an RPC response
type RPCResponse struct {
	ID     uint64
	Result any
	Error  error
}

// RPCElement defines the interface for RPC elements. Elements run on the client
// before a call is sent and after its response arrives, and on the server around
// the handler.
type RPCElement interface {
	// ProcessRequest processes the request before it reaches the handler (or the wire)
	ProcessRequest(ctx context.Context, req *RPCRequest) (*RPCRequest, context.Context, error)

	// ProcessResponse processes the response after the handler returns (or it arrives)
	ProcessResponse(ctx context.Context, resp *RPCResponse) (*RPCResponse, context.Context, error)

	// Name returns the name of the RPC element
	Name() string
}

// RPCElementChain represents a chain of RPC elements
type RPCElementChain struct {
	elements []RPCElement
}

// NewRPCElementChain creates a new chain of RPC elements
func NewRPCElementChain(elements ...RPCElement) *RPCElementChain {
	return &RPCElementChain{
		elements: elements,
	}
}

// Len returns the number of elements in the chain
func (c *RPCElementChain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.elements)
}

// ProcessRequest processes the request through all RPC elements in the chain
func (c *RPCElementChain) ProcessRequest(ctx context.Context, req *RPCRequest) (*RPCRequest, context.Context, error) {
	if c == nil {
		return req, ctx, nil
	}
	var err error
	for _, element := range c.elements {
		req, ctx, err = element.ProcessRequest(ctx, req)
		if err != nil {
			return nil, ctx, err
		}
	}
	return req, ctx, nil
}

// ProcessResponse processes the response through all RPC elements in reverse order
func (c *RPCElementChain) ProcessResponse(ctx context.Context, resp *RPCResponse) (*RPCResponse, context.Context, error) {
	if c == nil {
		return resp, ctx, nil
	}
	var err error
	for i := len(c.elements) - 1; i >= 0; i-- {
		resp, ctx, err = c.elements[i].ProcessResponse(ctx, resp)
		if err != nil {
			return nil, ctx, err
		}
	}
	return resp, ctx, nil
}
