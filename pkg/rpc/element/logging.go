package element

import (
	"context"
	"fmt"

	"github.com/appnet-org/hellotime/pkg/logging"
	"go.uber.org/zap"
)

type callInfoKey struct{}

type callInfo struct {
	service string
	method  string
}

// LoggingElement implements RPCElement to provide logging functionality
type LoggingElement struct {
	verbose bool
}

// NewLoggingElement creates a new logging element. Verbose mode also logs payloads at debug level.
func NewLoggingElement(verbose bool) *LoggingElement {
	return &LoggingElement{
		verbose: verbose,
	}
}

// ProcessRequest logs the request and returns it unchanged
func (l *LoggingElement) ProcessRequest(ctx context.Context, req *RPCRequest) (*RPCRequest, context.Context, error) {
	logging.Info("REQUEST",
		zap.Uint64("rpc_id", req.ID),
		zap.String("service", req.ServiceName),
		zap.String("method", req.Method),
	)

	if l.verbose {
		logging.Debug("Request payload", zap.Uint64("rpc_id", req.ID), zap.String("payload", fmt.Sprintf("%+v", req.Payload)))
	}

	ctx = context.WithValue(ctx, callInfoKey{}, callInfo{service: req.ServiceName, method: req.Method})
	return req, ctx, nil
}

// ProcessResponse logs the response and returns it unchanged
func (l *LoggingElement) ProcessResponse(ctx context.Context, resp *RPCResponse) (*RPCResponse, context.Context, error) {
	info, _ := ctx.Value(callInfoKey{}).(callInfo)

	if resp.Error != nil {
		logging.Warn("RESPONSE",
			zap.Uint64("rpc_id", resp.ID),
			zap.String("service", info.service),
			zap.String("method", info.method),
			zap.Error(resp.Error),
		)
		return resp, ctx, nil
	}

	logging.Info("RESPONSE",
		zap.Uint64("rpc_id", resp.ID),
		zap.String("service", info.service),
		zap.String("method", info.method),
	)

	if l.verbose {
		logging.Debug("Response payload", zap.Uint64("rpc_id", resp.ID), zap.String("payload", fmt.Sprintf("%+v", resp.Result)))
	}

	return resp, ctx, nil
}

// Name returns the name of this element
func (l *LoggingElement) Name() string {
	return "LoggingElement"
}
