// Package greeter implements HelloService: a greeting and a server clock report.
package greeter

import (
	"context"
	"time"

	"github.com/appnet-org/hellotime/pkg/logging"
	pb "github.com/appnet-org/hellotime/proto/hellotime"
	"go.uber.org/zap"
)

const (
	greetingPrefix = "Greetings you, "
	greetingSuffix = "!"

	// DefaultLocation is the region label reported by ServerTime.
	DefaultLocation = "Europe/Moscow"
)

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service is stateless apart from its fixed configuration and is safe for
// concurrent use.
type Service struct {
	pb.UnimplementedHelloServiceServer

	location string
	now      func() time.Time
}

var _ pb.HelloServiceServer = (*Service)(nil)

// NewService returns a Service reporting location from ServerTime.
func NewService(location string, opts ...Option) *Service {
	s := &Service{
		location: location,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Greeting builds the Hello reply for name. Any name is accepted, including "".
func Greeting(name string) string {
	return greetingPrefix + name + greetingSuffix
}

func (s *Service) Hello(ctx context.Context, req *pb.HelloRequest) (*pb.HelloResponse, error) {
	now := s.now().UTC()
	logging.Info("Hello request received",
		zap.String("name", req.GetName()),
		zap.String("time", now.Format(time.TimeOnly)))

	return &pb.HelloResponse{Message: Greeting(req.GetName())}, nil
}

// ServerTime reports the local wall clock. Every field comes from a single reading.
func (s *Service) ServerTime(ctx context.Context, req *pb.ServerTimeRequest) (*pb.ServerTimeResponse, error) {
	logging.Info("Server time requested")

	now := s.now()
	return &pb.ServerTimeResponse{
		Hours:    int32(now.Hour()),
		Minutes:  int32(now.Minute()),
		Seconds:  int32(now.Second()),
		Timezone: now.Format("-0700"),
		Location: s.location,
	}, nil
}
