package rpc

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/appnet-org/hellotime/pkg/logging"
	"github.com/appnet-org/hellotime/pkg/rpc/element"
	"github.com/appnet-org/hellotime/pkg/serializer"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// DefaultMaxConcurrentHandlers bounds handler executions when no option overrides it.
const DefaultMaxConcurrentHandlers = 10

// State is a server lifecycle state. Transitions only move forward:
// Created -> Listening -> Draining -> Stopped.
type State int32

const (
	StateCreated State = iota
	StateListening
	StateDraining
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateListening:
		return "listening"
	case StateDraining:
		return "draining"
	case StateStopped:
		return "stopped"
	default:
		return "invalid"
	}
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithMaxConcurrentHandlers bounds how many handlers may run at once. Calls beyond
// the bound wait for a free slot or for their own deadline.
func WithMaxConcurrentHandlers(n int) ServerOption {
	return func(s *Server) {
		if n > 0 {
			s.maxHandlers = n
		}
	}
}

// Server is an insecure gRPC endpoint with a bounded handler pool and an RPC
// element chain. It is constructed explicitly; several can run in one process.
type Server struct {
	addr            string
	serializer      serializer.Serializer
	rpcElementChain *element.RPCElementChain
	maxHandlers     int
	limiter         *semaphore.Weighted
	grpcServer      *grpc.Server

	state    atomic.Int32
	nextID   atomic.Uint64
	mu       sync.Mutex
	listener net.Listener
	serveErr chan error
	stopOnce sync.Once
	stopped  chan struct{}
	stopErr  error
}

// NewServer initializes a new server bound (on Start) to addr.
func NewServer(addr string, codec serializer.Serializer, rpcElements []element.RPCElement, opts ...ServerOption) *Server {
	if codec == nil {
		codec = serializer.ProtoSerializer{}
	}
	s := &Server{
		addr:            addr,
		serializer:      codec,
		rpcElementChain: element.NewRPCElementChain(rpcElements...),
		maxHandlers:     DefaultMaxConcurrentHandlers,
		serveErr:        make(chan error, 1),
		stopped:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.limiter = semaphore.NewWeighted(int64(s.maxHandlers))

	s.grpcServer = grpc.NewServer(
		grpc.Creds(insecure.NewCredentials()),
		grpc.ForceServerCodec(codec),
		grpc.UnaryInterceptor(s.intercept),
	)
	return s
}

// RegisterService registers a service and its methods with the server. Like
// grpc.Server it panics when called after Start, since the service would
// otherwise be silently missing.
func (s *Server) RegisterService(desc *grpc.ServiceDesc, impl any) {
	switch s.State() {
	case StateCreated:
	case StateStopped:
		panic(fmt.Errorf("%w: cannot register %s", ErrServerStopped, desc.ServiceName))
	default:
		panic(fmt.Errorf("%w: cannot register %s", ErrServerStarted, desc.ServiceName))
	}
	s.grpcServer.RegisterService(desc, impl)
	logging.Info("Registered service", zap.String("service", desc.ServiceName))
}

// State returns the current lifecycle state.
func (s *Server) State() State {
	return State(s.state.Load())
}

// Addr returns the bound listener address, or nil before Start.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Start binds the listener and begins serving in the background.
func (s *Server) Start() error {
	switch s.State() {
	case StateCreated:
	case StateListening:
		return ErrServerStarted
	default:
		return ErrServerStopped
	}

	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	if !s.state.CompareAndSwap(int32(StateCreated), int32(StateListening)) {
		lis.Close()
		return ErrServerStarted
	}

	s.mu.Lock()
	s.listener = lis
	s.mu.Unlock()

	logging.Info("Server started",
		zap.String("addr", lis.Addr().String()),
		zap.String("serializer", s.serializer.Name()),
		zap.Int("maxConcurrentHandlers", s.maxHandlers),
		zap.Int("elements", s.rpcElementChain.Len()))

	go func() {
		s.serveErr <- s.grpcServer.Serve(lis)
	}()
	return nil
}

// Run blocks until ctx is done or serving fails, then stops the server allowing
// in-flight calls up to gracePeriod to finish.
func (s *Server) Run(ctx context.Context, gracePeriod time.Duration) error {
	if s.State() == StateCreated {
		if err := s.Start(); err != nil {
			return err
		}
	}

	select {
	case <-ctx.Done():
		logging.Info("Shutdown requested", zap.Duration("gracePeriod", gracePeriod))
		return s.Stop(gracePeriod)
	case err := <-s.serveErr:
		if err == nil {
			// Serve returns nil once Stop has begun; report how the stop went.
			<-s.stopped
			return s.stopErr
		}
		// Serving failed on its own; make sure the state machine still completes.
		_ = s.Stop(0)
		return err
	case <-s.stopped:
		return s.stopErr
	}
}

// Stop stops accepting new calls and waits up to gracePeriod for in-flight calls
// before closing every connection. A non-positive gracePeriod stops immediately.
// Calling Stop more than once waits for the first call and returns its result.
func (s *Server) Stop(gracePeriod time.Duration) error {
	s.stopOnce.Do(func() {
		defer close(s.stopped)

		if s.state.CompareAndSwap(int32(StateCreated), int32(StateStopped)) {
			return
		}
		s.state.Store(int32(StateDraining))
		logging.Info("Server draining", zap.Duration("gracePeriod", gracePeriod))

		if gracePeriod <= 0 {
			s.grpcServer.Stop()
			s.state.Store(int32(StateStopped))
			logging.Info("Server stopped")
			return
		}

		drained := make(chan struct{})
		go func() {
			s.grpcServer.GracefulStop()
			close(drained)
		}()

		timer := time.NewTimer(gracePeriod)
		defer timer.Stop()

		select {
		case <-drained:
		case <-timer.C:
			logging.Warn("Grace period elapsed, closing remaining calls", zap.Duration("gracePeriod", gracePeriod))
			s.grpcServer.Stop()
			<-drained
			s.stopErr = ErrDrainTimeout
		}

		s.state.Store(int32(StateStopped))
		logging.Info("Server stopped")
	})

	<-s.stopped
	return s.stopErr
}

// Done is closed once the server reaches StateStopped.
func (s *Server) Done() <-chan struct{} {
	return s.stopped
}

// splitMethod turns "/pkg.Service/Method" into ("pkg.Service", "Method").
func splitMethod(fullMethod string) (string, string) {
	name := strings.TrimPrefix(fullMethod, "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}

// intercept runs every unary call: it takes a handler slot, then passes the call
// through the element chain around the service handler.
func (s *Server) intercept(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if err := s.limiter.Acquire(ctx, 1); err != nil {
		return nil, status.FromContextError(err).Err()
	}
	defer s.limiter.Release(1)

	service, method := splitMethod(info.FullMethod)
	rpcReq := &element.RPCRequest{
		ID:          s.nextID.Add(1),
		ServiceName: service,
		Method:      method,
		Payload:     req,
	}

	rpcResp := &element.RPCResponse{ID: rpcReq.ID}
	processed, ctx, err := s.rpcElementChain.ProcessRequest(ctx, rpcReq)
	if err != nil {
		rpcResp.Error = err
	} else {
		rpcResp.Result, rpcResp.Error = handler(ctx, processed.Payload)
	}

	rpcResp, _, err = s.rpcElementChain.ProcessResponse(ctx, rpcResp)
	if err != nil {
		return nil, toStatusError(err)
	}
	if rpcResp.Error != nil {
		logging.Debug("Handler error", zap.Uint64("rpcID", rpcReq.ID), zap.Error(rpcResp.Error))
		return nil, toStatusError(rpcResp.Error)
	}
	return rpcResp.Result, nil
}
